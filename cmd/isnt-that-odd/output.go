package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/isntthatodd/internal/model"
)

// printer writes user-facing lines. Styles only emit colour when the
// destination is a colour-capable terminal.
type printer struct {
	out    io.Writer
	errOut io.Writer

	even lipgloss.Style
	odd  lipgloss.Style
	err  lipgloss.Style
	warn lipgloss.Style
}

func newPrinter(stdout, stderr io.Writer) *printer {
	outRenderer := lipgloss.NewRenderer(stdout)
	errRenderer := lipgloss.NewRenderer(stderr)
	return &printer{
		out:    stdout,
		errOut: stderr,
		even:   outRenderer.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		odd:    outRenderer.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		err:    errRenderer.NewStyle().Foreground(lipgloss.Color("1")),
		warn:   outRenderer.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

func (p *printer) diagnostic(n model.Number, modelID string) {
	fmt.Fprintf(p.out, "🔍 Checking if %s is even...\n", n)
	fmt.Fprintf(p.out, "🤖 Using model: %s\n", modelID)
}

func (p *printer) result(n model.Number, even bool) {
	if even {
		fmt.Fprintf(p.out, "✅ %s is %s\n", n, p.even.Render("EVEN"))
		return
	}
	fmt.Fprintf(p.out, "❌ %s is %s\n", n, p.odd.Render("ODD"))
}

func (p *printer) cancelled() {
	fmt.Fprintf(p.out, "\n%s\n", p.warn.Render("⚠️  Operation cancelled by user"))
}

// failure prints the error line and, when verbose, every layer of the
// wrapped error chain.
func (p *printer) failure(err error, verbose bool) {
	fmt.Fprintf(p.errOut, "%s %v\n", p.err.Render("❌ Error:"), err)
	if !verbose {
		return
	}
	fmt.Fprintln(p.errOut, "Error chain:")
	for i, e := 0, err; e != nil; i, e = i+1, errors.Unwrap(e) {
		fmt.Fprintf(p.errOut, "  %d. %T: %v\n", i, e, e)
	}
}
