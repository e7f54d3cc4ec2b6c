package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"keyremap/internal/diagnostic"
	"keyremap/internal/remap"
	"keyremap/internal/targetspec"
)

type decodeCmd struct {
	*app `no-flag:"true"`

	Args struct {
		Target string `positional-arg-name:"target" required:"yes"`
	} `positional-args:"yes"`
}

func (c *decodeCmd) Execute([]string) error {
	f := targetspec.Field(c.Args.Target)

	c.field("program", f.Primary())
	c.field("name", f.PrimaryBaseName())
	c.field("args", f.Secondary())
	c.field("dir", f.Tertiary())

	if extra := targetspec.Overflow(c.Args.Target); len(extra) > 0 {
		fmt.Fprintf(c.out, "%s %d extra part(s) ignored\n", c.ui.severity(diagnostic.DiagnosticWarning), len(extra))
	}

	return nil
}

type encodeCmd struct {
	*app `no-flag:"true"`

	Program string `short:"p" long:"program" required:"yes" description:"Program path"`
	Args    string `short:"a" long:"args" description:"Launch arguments"`
	Dir     string `short:"d" long:"dir" description:"Working directory"`
}

func (c *encodeCmd) Execute([]string) error {
	out, err := targetspec.EncodeStrict(targetspec.Spec{Primary: c.Program, Secondary: c.Args, Tertiary: c.Dir})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, out)

	return nil
}

type showCmd struct {
	*app `no-flag:"true"`
}

func (c *showCmd) Execute([]string) error {
	s, err := c.loadSettings()
	if err != nil {
		return err
	}

	c.showKeys(remap.SectionInProcess, s.RemapKeys.InProcess)
	c.showKeys(remap.SectionGlobal, s.RemapShortcuts.Global)
	c.showApps(remap.SectionAppSpecific, s.RemapShortcuts.AppSpecific, false)
	c.showApps(remap.SectionRunProgram, s.RemapShortcuts.RunProgram, true)

	return nil
}

func (c *showCmd) showKeys(section string, rules []remap.KeysRule) {
	if len(rules) == 0 {
		return
	}

	fmt.Fprintln(c.out, c.ui.header.Render(section))

	for i, r := range rules {
		fmt.Fprintf(c.out, "  %s %s -> %s\n", remap.RuleLabel(section, i),
			strings.Join(r.MappedOriginalKeys(), " + "), strings.Join(r.MappedNewRemapKeys(), " + "))
	}
}

func (c *showCmd) showApps(section string, rules []remap.AppRule, run bool) {
	if len(rules) == 0 {
		return
	}

	fmt.Fprintln(c.out, c.ui.header.Render(section))

	for i, r := range rules {
		orig := strings.Join(r.MappedOriginalKeys(), " + ")

		if !run {
			fmt.Fprintf(c.out, "  %s %s -> %s [%s]\n", remap.RuleLabel(section, i),
				orig, strings.Join(r.MappedNewRemapKeys(), " + "), r.TargetAppShortName())

			continue
		}

		fmt.Fprintf(c.out, "  %s %s -> %s\n", remap.RuleLabel(section, i), orig, r.TargetAppShortName())
		fmt.Fprintf(c.out, "    program: %s\n", r.TargetAppName())

		if args := r.TargetAppArgs(); args != "" {
			fmt.Fprintf(c.out, "    args:    %s\n", args)
		}

		if dir := r.TargetAppDir(); dir != "" {
			fmt.Fprintf(c.out, "    dir:     %s\n", dir)
		}
	}
}

type checkCmd struct {
	*app `no-flag:"true"`

	Strict bool `long:"strict" description:"Fail on warnings too"`
}

func (c *checkCmd) Execute([]string) error {
	s, err := c.loadSettings()
	if err != nil {
		return err
	}

	d := remap.Validate(s)
	c.printDiagnostics(d)

	if err := d.Error(); err != nil {
		return fmt.Errorf("%w: %w", errFindings, err)
	}

	if (c.Strict || c.cfg.Strict) && len(d.Warnings) > 0 {
		return errFindings
	}

	return nil
}

type dedupeCmd struct {
	*app `no-flag:"true"`

	DryRun bool   `short:"n" long:"dry-run" description:"Report without writing"`
	Output string `short:"o" long:"output" description:"Write to this file instead of the settings file"`
}

func (c *dedupeCmd) Execute([]string) error {
	s, err := c.loadSettings()
	if err != nil {
		return err
	}

	removed := remap.Normalize(s)
	fmt.Fprintf(c.out, "%d duplicate rule(s) removed\n", removed)

	if c.DryRun || (removed == 0 && c.Output == "") {
		return nil
	}

	target := c.cfg.SettingsPath
	if c.Output != "" {
		target = c.Output
	}

	if err := remap.WriteFile(s, target); err != nil {
		return err
	}

	log.Info().Str("path", target).Int("removed", removed).Msg("settings written")

	return nil
}

type exportCmd struct {
	*app `no-flag:"true"`

	Output string `short:"o" long:"output" description:"Write YAML to this file instead of stdout"`
}

func (c *exportCmd) Execute([]string) error {
	s, err := c.loadSettings()
	if err != nil {
		return err
	}

	data, err := remap.ToYAML(s, c.cfg.YAMLIndent)
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = c.out.Write(data)
		return err
	}

	if err := os.WriteFile(c.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}

	return nil
}
