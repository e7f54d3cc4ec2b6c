package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"keyremap/internal/diagnostic"
)

type styles struct {
	header  lipgloss.Style
	label   lipgloss.Style
	errorS  lipgloss.Style
	warning lipgloss.Style
	info    lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)

	return styles{
		header:  r.NewStyle().Bold(true).Underline(true),
		label:   r.NewStyle().Faint(true),
		errorS:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		warning: r.NewStyle().Foreground(lipgloss.Color("11")),
		info:    r.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

func (s styles) severity(sev diagnostic.DiagnosticSeverity) string {
	switch sev {
	case diagnostic.DiagnosticError:
		return s.errorS.Render(sev.String())
	case diagnostic.DiagnosticWarning:
		return s.warning.Render(sev.String())
	default:
		return s.info.Render(sev.String())
	}
}

func (a *app) printDiagnostics(d *diagnostic.Diagnostics) {
	for _, diag := range d.All() {
		fmt.Fprintf(a.out, "%s %s\n", a.ui.severity(diag.Severity), diag.String())
	}

	fmt.Fprintf(a.out, "%d error(s), %d warning(s)\n", len(d.Errors), len(d.Warnings))
}

func (a *app) field(name, value string) {
	fmt.Fprintf(a.out, "%s %q\n", a.ui.label.Render(name+":"), value)
}
