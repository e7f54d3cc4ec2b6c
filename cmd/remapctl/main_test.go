package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	flags "github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyremap/internal/keys"
	"keyremap/internal/remap"
	"keyremap/internal/testutil/testlog"
)

const settingsJSON = `{
  "remapKeys": {"inProcess": []},
  "remapShortcuts": {
    "global": [
      {"originalKeys": "91;69", "newRemapKeys": "91;82"}
    ],
    "appSpecific": [],
    "runProgram": [
      {"originalKeys": "162;164;84", "targetApp": "C:\\Tools\\wt.exe<|||>-p \"Power Shell\"<|||>C:\\Work"},
      {"originalKeys": "162;164;84", "targetApp": "C:\\Tools\\wt.exe<|||>-p \"Power Shell\"<|||>C:\\Work"},
      {"originalKeys": "91;162;82", "targetApp": "RefreshConfig"}
    ]
  }
}`

// runCLI runs remapctl against a settings file in a temp dir with no tool config.
func runCLI(t *testing.T, settings string, args ...string) (string, string, error) {
	t.Helper()
	testlog.Start(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")

	if settings != "" {
		require.NoError(t, os.WriteFile(path, []byte(settings), 0644))
	}

	full := append([]string{
		"-c", filepath.Join(dir, "missing.toml"),
		"--env-file", filepath.Join(dir, "missing.env"),
		"-s", path,
	}, args...)

	var out bytes.Buffer
	err := run(full, &out)

	return out.String(), path, err
}

func TestRun_Decode(t *testing.T) {
	out, _, err := runCLI(t, "", "decode", `C:\Apps\tool.exe<|||>--fast<|||>D:\work<|||>extra`)
	require.NoError(t, err)

	assert.Contains(t, out, `program: "C:\\Apps\\tool.exe"`)
	assert.Contains(t, out, `name: "tool.exe"`)
	assert.Contains(t, out, `args: "--fast"`)
	assert.Contains(t, out, `dir: "D:\\work"`)
	assert.Contains(t, out, "1 extra part(s) ignored")
}

func TestRun_Encode(t *testing.T) {
	out, _, err := runCLI(t, "", "encode", "-p", "app.exe", "-d", `C:\dir`)
	require.NoError(t, err)
	assert.Equal(t, "app.exe<|||><|||>C:\\dir\n", out)

	_, _, err = runCLI(t, "", "encode", "-p", "a<|||>b")
	assert.Error(t, err)
}

func TestRun_Show(t *testing.T) {
	out, _, err := runCLI(t, settingsJSON, "show")
	require.NoError(t, err)

	assert.Contains(t, out, remap.SectionGlobal)
	assert.Contains(t, out, "runProgram[0]")
	assert.Contains(t, out, "wt.exe")
	assert.Contains(t, out, `args:    -p "Power Shell"`)
	assert.Contains(t, out, `dir:     C:\Work`)
}

func TestRun_Check(t *testing.T) {
	out, _, err := runCLI(t, settingsJSON, "check")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errFindings))
	assert.Contains(t, err.Error(), "runProgram[1]: [duplicate_rule]")
	assert.Contains(t, out, remap.CodeDuplicateRule)
	assert.Contains(t, out, remap.CodeRefreshConfig)

	out, _, err = runCLI(t, `{}`, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "0 error(s), 0 warning(s)")
}

func TestRun_Dedupe(t *testing.T) {
	out, path, err := runCLI(t, settingsJSON, "dedupe")
	require.NoError(t, err)
	assert.Contains(t, out, "1 duplicate rule(s) removed")

	s, err := remap.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.RemapShortcuts.RunProgram, 2)
}

func TestRun_Dedupe_DryRun(t *testing.T) {
	_, path, err := runCLI(t, settingsJSON, "dedupe", "-n")
	require.NoError(t, err)

	s, err := remap.LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, s.RemapShortcuts.RunProgram, 3)
}

func TestRun_Export(t *testing.T) {
	out, _, err := runCLI(t, settingsJSON, "export")
	require.NoError(t, err)

	s, err := remap.ParseYAML([]byte(out))
	require.NoError(t, err)
	assert.Len(t, s.RemapShortcuts.RunProgram, 3)
	assert.Equal(t, "wt.exe", s.RemapShortcuts.RunProgram[0].TargetAppShortName())
}

func TestRun_Launch(t *testing.T) {
	out, _, err := runCLI(t, settingsJSON, "launch", "-i", "0")
	require.NoError(t, err)
	assert.Equal(t, "C:\\Tools\\wt.exe -p \"Power Shell\" (in C:\\Work)\n", out)

	out, _, err = runCLI(t, settingsJSON, "launch", "-i", "2")
	require.NoError(t, err)
	assert.Equal(t, "reload settings\n", out)

	_, _, err = runCLI(t, settingsJSON, "launch", "-i", "7")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "runProgram[7]")
}

func TestRun_UnknownCommand(t *testing.T) {
	_, _, err := runCLI(t, "", "frobnicate")

	var ferr *flags.Error
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, flags.ErrUnknownCommand, ferr.Type)
}

func TestRun_BadLogLevel(t *testing.T) {
	_, _, err := runCLI(t, "", "-l", "loud", "decode", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loud")
}

func TestRun_Keys(t *testing.T) {
	out, _, err := runCLI(t, "", "keys", "Ctrl (Left)+Alt+T")
	require.NoError(t, err)
	assert.Contains(t, out, `codes: "162;18;84"`)
	assert.Contains(t, out, `names: "Ctrl (Left) + Alt + T"`)

	out, _, err = runCLI(t, "", "keys", "--codes", "--shortcut", "84;91")
	require.ErrorIs(t, err, keys.ErrMustStartWithMod)
	assert.Contains(t, out, `names: "T + Win (Left)"`)

	out, _, err = runCLI(t, "", "keys", "--codes", "--shortcut", "160;162;82")
	require.NoError(t, err)
	assert.Contains(t, out, `shortcut: "Ctrl (Left) + Shift (Left) + R"`)
}

func TestRun_Keys_UnknownName(t *testing.T) {
	_, _, err := runCLI(t, "", "keys", "Ctrl (Lft)+T")
	require.ErrorIs(t, err, keys.ErrUnknownKeyName)
	assert.Contains(t, err.Error(), "did you mean")
	assert.Contains(t, err.Error(), "Ctrl (Left)")
}

func TestRun_Import(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "settings.yaml")
	dst := filepath.Join(dir, "imported.json")

	require.NoError(t, os.WriteFile(src, []byte(`remapShortcuts:
  runProgram:
    - originalKeys: "162;164;84"
      targetApp: "notepad.exe<|||><|||>C:\\Work"
`), 0644))

	out, _, err := runCLI(t, "", "import", "-o", dst, src)
	require.NoError(t, err)
	assert.Contains(t, out, "1 rule(s) written")

	s, err := remap.LoadFile(dst)
	require.NoError(t, err)
	require.Len(t, s.RemapShortcuts.RunProgram, 1)
	assert.Equal(t, `C:\Work`, s.RemapShortcuts.RunProgram[0].TargetAppDir())
}

func TestRun_Import_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "settings.yaml")
	dst := filepath.Join(dir, "imported.json")

	require.NoError(t, os.WriteFile(src, []byte(`remapShortcuts:
  runProgram:
    - originalKeys: "162;84"
      targetApp: ""
`), 0644))

	out, _, err := runCLI(t, "", "import", "-o", dst, src)
	require.ErrorIs(t, err, errFindings)
	assert.Contains(t, out, remap.CodeMissingTargetApp)
	assert.NoFileExists(t, dst)

	require.NoError(t, os.WriteFile(src, []byte("remapShortcuts: [oops"), 0644))
	_, _, err = runCLI(t, "", "import", "-o", dst, src)
	assert.Error(t, err)
}
