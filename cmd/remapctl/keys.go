package main

import (
	"strings"

	"keyremap/internal/keys"
)

type keysCmd struct {
	*app `no-flag:"true"`

	Codes    bool `long:"codes" description:"Read the input as ;-separated key codes instead of names"`
	Shortcut bool `long:"shortcut" description:"Check the keys as a run-program shortcut"`

	Args struct {
		Keys string `positional-arg-name:"keys" required:"yes"`
	} `positional-args:"yes"`
}

// Execute translates between key names joined by "+" and the code sequence
// stored in settings, e.g. "Ctrl (Left)+Alt+T" and "162;18;84".
func (c *keysCmd) Execute([]string) error {
	codes, err := c.parse()
	if err != nil {
		return err
	}

	c.field("codes", keys.FormatCodes(codes))
	c.field("names", keys.JoinNames(codes))

	if !c.Shortcut {
		return nil
	}

	if err := keys.ValidateShortcut(codes); err != nil {
		return err
	}

	c.field("shortcut", keys.NewShortcut(codes).String())

	return nil
}

func (c *keysCmd) parse() ([]uint32, error) {
	if c.Codes {
		return keys.ParseCodes(c.Args.Keys)
	}

	return keys.ParseNames(strings.Split(c.Args.Keys, "+"))
}
