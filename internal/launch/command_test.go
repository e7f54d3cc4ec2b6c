package launch

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyremap/internal/targetspec"
)

func TestFromField(t *testing.T) {
	cmd, err := FromField(targetspec.Field(`C:\t\a.exe<|||>-x "a b"<|||>C:\w`))
	require.NoError(t, err)

	assert.Equal(t, `C:\t\a.exe`, cmd.Path)
	assert.Equal(t, []string{"-x", "a b"}, cmd.Args)
	assert.Equal(t, `C:\w`, cmd.Dir)
}

func TestFromField_LegacyBarePath(t *testing.T) {
	cmd, err := FromField(targetspec.Field(`C:\Windows\notepad.exe`))
	require.NoError(t, err)

	assert.Equal(t, `C:\Windows\notepad.exe`, cmd.Path)
	assert.Empty(t, cmd.Args)
	assert.Empty(t, cmd.Dir)
}

func TestFromField_Errors(t *testing.T) {
	_, err := FromField("")
	require.ErrorIs(t, err, ErrNoProgram)

	_, err = FromField("<|||>-x")
	require.ErrorIs(t, err, ErrNoProgram)

	_, err = FromField(`app.exe<|||>"unterminated`)
	require.ErrorIs(t, err, ErrBadArgs)
}

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		in       string
		expected []string
	}{
		{"", nil},
		{"   ", nil},
		{"-v", []string{"-v"}},
		{"--profile work", []string{"--profile", "work"}},
		{`"C:\Program Files\x" /s`, []string{`C:\Program Files\x`, "/s"}},
		{`'single quoted' next`, []string{"single quoted", "next"}},
		{`C:\dir\file.txt`, []string{`C:\dir\file.txt`}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := SplitArgs(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCommand_IsRefresh(t *testing.T) {
	cmd, err := FromField(RefreshConfig)
	require.NoError(t, err)
	assert.True(t, cmd.IsRefresh())

	cmd, err = FromField("refreshconfig")
	require.NoError(t, err)
	assert.False(t, cmd.IsRefresh())
}

func TestCommand_Cmd(t *testing.T) {
	c := Command{Path: "tool", Args: []string{"a", "b"}, Dir: "/tmp/work"}
	ec := c.Cmd(context.Background())

	assert.Equal(t, []string{"tool", "a", "b"}, ec.Args)
	assert.Equal(t, "/tmp/work", ec.Dir)
	assert.Nil(t, ec.Process, "not started")
}

func TestCommand_String(t *testing.T) {
	c := Command{Path: `C:\Program Files\app.exe`, Args: []string{"-x", "a b", ""}, Dir: `C:\w`}
	assert.Equal(t, `"C:\Program Files\app.exe" -x "a b" "" (in C:\w)`, c.String())
	assert.Equal(t, "app", Command{Path: "app"}.String())
}
