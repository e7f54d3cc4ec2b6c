// Package main provides the remapctl CLI.
//
// remapctl inspects keyboard remap settings documents:
//   - decode / encode the composite target field of run-program rules
//   - show the rules of a settings file with their decoded targets
//   - check a settings file and report every problem found
//   - dedupe rules in place, export a YAML rendering and import one back
//   - translate key names to the stored code sequence and back
//   - launch (or dry-run) the program bound to a rule
//   - watch a settings file and re-check it on every save
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"

	"keyremap/internal/config"
	"keyremap/internal/logging"
	"keyremap/internal/remap"
)

// errFindings is returned by commands whose only failure is a non-clean report.
var errFindings = errors.New("settings have problems")

// Options are the flags shared by every command.
type Options struct {
	Config   string `short:"c" long:"config" default:"remapctl.toml" description:"Path to the remapctl TOML config"`
	EnvFile  string `long:"env-file" default:".env" description:"Optional .env file loaded before the config"`
	Settings string `short:"s" long:"settings" description:"Settings JSON document (overrides settings_path)"`
	LogLevel string `short:"l" long:"log-level" description:"trace, debug, info, warn, error or off"`
}

type app struct {
	out  io.Writer
	opts Options
	cfg  config.Config
	ui   styles
}

func main() {
	logging.ConfigureRuntime()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, ferr.Message)
			os.Exit(0)
		}

		if !errors.Is(err, errFindings) {
			log.Error().Err(err).Msg("remapctl failed")
		}

		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	a := &app{out: out, ui: newStyles(out)}

	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "remapctl"
	parser.CommandHandler = func(cmd flags.Commander, cmdArgs []string) error {
		if cmd == nil {
			return nil
		}

		if err := a.setup(); err != nil {
			return err
		}

		return cmd.Execute(cmdArgs)
	}

	commands := []struct {
		name, short, long string
		data              any
	}{
		{"decode", "Decode a target field", "Split a composite target field into program, arguments and working directory.", &decodeCmd{app: a}},
		{"encode", "Encode a target field", "Join program, arguments and working directory into a composite target field.", &encodeCmd{app: a}},
		{"show", "List rules", "List every rule of the settings document with its decoded target.", &showCmd{app: a}},
		{"check", "Validate settings", "Validate the settings document and print all findings.", &checkCmd{app: a}},
		{"dedupe", "Remove duplicate rules", "Remove rules equal to an earlier rule and rewrite the document.", &dedupeCmd{app: a}},
		{"export", "Render settings as YAML", "Render the settings document as YAML.", &exportCmd{app: a}},
		{"import", "Read settings from YAML", "Validate a YAML rendering and write it as the settings document.", &importCmd{app: a}},
		{"keys", "Translate key names and codes", "Translate key names joined by + into the stored code sequence, or codes into names.", &keysCmd{app: a}},
		{"launch", "Start a run-program rule", "Build the process of a run-program rule and print or start it.", &launchCmd{app: a}},
		{"watch", "Re-check settings on change", "Watch the settings document and validate it after every save.", &watchCmd{app: a}},
	}

	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return err
		}
	}

	_, err := parser.ParseArgs(args)

	return err
}

// setup loads the tool config and applies flag overrides.
func (a *app) setup() error {
	cfg, err := config.Load(a.opts.Config, a.opts.EnvFile)
	if err != nil {
		return err
	}

	if a.opts.Settings != "" {
		cfg.SettingsPath = a.opts.Settings
	}

	if a.opts.LogLevel != "" {
		cfg.LogLevel = a.opts.LogLevel
	}

	if !logging.SetLevel(cfg.LogLevel) {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	a.cfg = cfg
	log.Debug().Str("settings", cfg.SettingsPath).Bool("strict", cfg.Strict).Msg("config loaded")

	return nil
}

func (a *app) loadSettings() (*remap.Settings, error) {
	s, err := remap.LoadFile(a.cfg.SettingsPath)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("rules", s.Count()).Str("path", a.cfg.SettingsPath).Msg("settings loaded")

	return s, nil
}
