package launch

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/anmitsu/go-shlex"

	"keyremap/internal/targetspec"
)

// RefreshConfig is the reserved program name that triggers a settings reload.
const RefreshConfig = "RefreshConfig"

var (
	ErrNoProgram = errors.New("launch: target has no program")
	ErrBadArgs   = errors.New("launch: cannot split arguments")
)

// Command describes a process to start.
type Command struct {
	Path string
	Args []string
	Dir  string
}

// FromField builds a Command from a composite target field.
func FromField(f targetspec.Field) (Command, error) {
	spec := f.Spec()
	if strings.TrimSpace(spec.Primary) == "" {
		return Command{}, ErrNoProgram
	}

	args, err := SplitArgs(spec.Secondary)
	if err != nil {
		return Command{}, err
	}

	return Command{Path: spec.Primary, Args: args, Dir: spec.Tertiary}, nil
}

// SplitArgs tokenizes an arguments string.
func SplitArgs(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	tokens, err := shlex.Split(s, false)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrBadArgs, s, err)
	}

	for i, tok := range tokens {
		tokens[i] = unquote(tok)
	}

	return tokens, nil
}

func unquote(tok string) string {
	if len(tok) >= 2 {
		first, last := tok[0], tok[len(tok)-1]
		if (first == '"' || first == '\'') && first == last {
			return tok[1 : len(tok)-1]
		}
	}

	return tok
}

// IsRefresh reports whether c asks for a settings reload.
func (c Command) IsRefresh() bool {
	return c.Path == RefreshConfig
}

// Cmd returns an unstarted process for c.
func (c Command) Cmd(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir

	return cmd
}

// String renders c for logs and dry runs.
func (c Command) String() string {
	var b strings.Builder

	b.WriteString(quoteIfNeeded(c.Path))

	for _, a := range c.Args {
		b.WriteByte(' ')
		b.WriteString(quoteIfNeeded(a))
	}

	if c.Dir != "" {
		b.WriteString(" (in ")
		b.WriteString(c.Dir)
		b.WriteByte(')')
	}

	return b.String()
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t") {
		return `"` + s + `"`
	}

	return s
}
