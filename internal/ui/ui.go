package ui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// Brand colors
var (
	Brand  = color.New(color.FgHiCyan, color.Bold)
	Subtle = color.New(color.FgHiBlack)
	Warn   = color.New(color.FgYellow)
	Info   = color.New(color.FgCyan)
	Good   = color.New(color.FgGreen)
	Bad    = color.New(color.FgRed)
)

// Mark is the graphpad glyph.
const Mark = "◉"

// Out is where Banner, Table and Matrix write.
var Out io.Writer = os.Stdout

// SetColor turns coloured output on or off globally.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// Banner prints the graphpad banner.
func Banner(subtitle string) {
	fmt.Fprintf(Out, "%s %s — %s\n\n", Mark, Brand.Sprint("graphpad"), subtitle)
}

// Table prints a simple aligned table.
func Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	headerLine := "  "
	sepLine := "  "
	for i, h := range headers {
		headerLine += fmt.Sprintf("%-*s  ", widths[i], h)
		sepLine += strings.Repeat("─", widths[i]) + "  "
	}
	Subtle.Fprintln(Out, headerLine)
	Subtle.Fprintln(Out, sepLine)

	for _, row := range rows {
		line := "  "
		for i, cell := range row {
			if i < len(widths) {
				line += fmt.Sprintf("%-*s  ", widths[i], cell)
			}
		}
		fmt.Fprintln(Out, line)
	}
}

// Matrix prints a labelled 0/1 matrix; ones are highlighted.
func Matrix(labels []string, m [][]int) {
	if len(labels) == 0 {
		Subtle.Fprintln(Out, "  (no nodes)")
		return
	}
	w := 1
	for _, l := range labels {
		if len(l) > w {
			w = len(l)
		}
	}

	head := "  " + strings.Repeat(" ", w)
	for _, l := range labels {
		head += " " + fmt.Sprintf("%*s", w, l)
	}
	Subtle.Fprintln(Out, head)

	for i, row := range m {
		line := "  " + Subtle.Sprintf("%-*s", w, labels[i])
		for _, v := range row {
			cell := fmt.Sprintf("%*s", w, strconv.Itoa(v))
			if v != 0 {
				cell = Good.Sprint(cell)
			}
			line += " " + cell
		}
		fmt.Fprintln(Out, line)
	}
}

// StatusIcon returns a status icon string.
func StatusIcon(ok bool) string {
	if ok {
		return Good.Sprint("✓")
	}
	return Bad.Sprint("✗")
}

// WarnIcon returns a warning icon.
func WarnIcon() string {
	return Warn.Sprint("⚠")
}
