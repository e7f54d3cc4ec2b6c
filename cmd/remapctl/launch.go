package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"keyremap/internal/launch"
	"keyremap/internal/remap"
)

type launchCmd struct {
	*app `no-flag:"true"`

	Index int  `short:"i" long:"index" required:"yes" description:"Index of the run-program rule"`
	Start bool `long:"start" description:"Start the program instead of printing it"`
}

func (c *launchCmd) Execute([]string) error {
	s, err := c.loadSettings()
	if err != nil {
		return err
	}

	rules := s.RemapShortcuts.RunProgram
	if c.Index < 0 || c.Index >= len(rules) {
		return fmt.Errorf("no rule %s (document has %d run-program rules)",
			remap.RuleLabel(remap.SectionRunProgram, c.Index), len(rules))
	}

	cmd, err := launch.FromField(rules[c.Index].Target())
	if err != nil {
		return fmt.Errorf("%s: %w", remap.RuleLabel(remap.SectionRunProgram, c.Index), err)
	}

	if cmd.IsRefresh() {
		fmt.Fprintln(c.out, "reload settings")
		return nil
	}

	if !c.Start {
		fmt.Fprintln(c.out, cmd.String())
		return nil
	}

	proc := cmd.Cmd(context.Background())
	if err := proc.Start(); err != nil {
		return fmt.Errorf("start %s: %w", cmd.Path, err)
	}

	log.Info().Str("program", cmd.Path).Int("pid", proc.Process.Pid).Msg("started")

	return proc.Process.Release()
}
