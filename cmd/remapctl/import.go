package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"keyremap/internal/remap"
)

type importCmd struct {
	*app `no-flag:"true"`

	Output string `short:"o" long:"output" description:"Write JSON to this file instead of the settings file"`

	Args struct {
		File string `positional-arg-name:"yaml" required:"yes"`
	} `positional-args:"yes"`
}

func (c *importCmd) Execute([]string) error {
	data, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", c.Args.File, err)
	}

	s, err := remap.ParseYAML(data)
	if err != nil {
		return err
	}

	if d := remap.Validate(s); d.HasErrors() {
		c.printDiagnostics(d)
		return fmt.Errorf("%w: %s not imported", errFindings, c.Args.File)
	}

	target := c.cfg.SettingsPath
	if c.Output != "" {
		target = c.Output
	}

	if err := remap.WriteFile(s, target); err != nil {
		return err
	}

	fmt.Fprintf(c.out, "%d rule(s) written to %s\n", s.Count(), target)
	log.Info().Str("from", c.Args.File).Str("path", target).Msg("settings imported")

	return nil
}
