package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/licitaciones/licitaciones-app-sheets/spreadsheet"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func isTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func render(styled bool, style lipgloss.Style, s string) string {
	if !styled {
		return s
	}

	return style.Render(s)
}

func printKeywords(w io.Writer, keywords []string, styled bool) {
	if len(keywords) == 0 {
		fmt.Fprintln(w, render(styled, warnStyle, "No keywords"))
		return
	}

	fmt.Fprintln(w, render(styled, titleStyle, fmt.Sprintf("%v keywords", len(keywords))))
	for i, k := range keywords {
		fmt.Fprintf(w, "  %s %s\n", render(styled, dimStyle, fmt.Sprintf("%2d.", i+1)), k)
	}
}

func printSummary(w io.Writer, summary *spreadsheet.Summary, dryrun bool, styled bool) {
	switch {
	case summary.Received == 0:
		fmt.Fprintln(w, render(styled, warnStyle, "No results to save"))

	case summary.Received == summary.Duplicates:
		fmt.Fprintln(w, render(styled, warnStyle, fmt.Sprintf("No new records for '%v' (%v duplicates)", summary.Sheet, summary.Duplicates)))

	case dryrun:
		fmt.Fprintln(w, render(styled, warnStyle, fmt.Sprintf("DRY RUN: %v new records for '%v' (%v..%v), %v duplicates", summary.Last-summary.First+1, summary.Sheet, summary.First, summary.Last, summary.Duplicates)))

	default:
		fmt.Fprintln(w, render(styled, okStyle, fmt.Sprintf("%v new records saved to '%v' (%v..%v), %v duplicates", summary.Appended, summary.Sheet, summary.First, summary.Last, summary.Duplicates)))
	}
}
