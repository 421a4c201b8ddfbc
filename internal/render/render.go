// Package render formats query results for the terminal: aligned tables,
// plain delimiter-separated lines, or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/mesh-intelligence/emptrack/pkg/types"
)

// plainSep separates fields in plain mode.
const plainSep = " | "

const (
	ansiReset   = "\x1b[0m"
	ansiBold    = "\x1b[1m"
	ansiCyan    = "\x1b[36m"
	ansiMagenta = "\x1b[35m"
)

// Renderer writes report output to a terminal.
type Renderer struct {
	w     io.Writer
	plain bool
	color bool
}

// New returns a Renderer writing to w. mode is types.OutputTable or
// types.OutputPlain; anything else renders tables.
func New(w io.Writer, mode string, color bool) *Renderer {
	return &Renderer{w: w, plain: mode == types.OutputPlain, color: color}
}

// Title prints a heading for the view about to be shown.
func (r *Renderer) Title(title string) {
	if r.color {
		fmt.Fprintf(r.w, "\n%s%s== %s ==%s\n\n", ansiBold, ansiCyan, title, ansiReset)
		return
	}
	fmt.Fprintf(r.w, "\n== %s ==\n\n", title)
}

// Message prints one line of user-facing text.
func (r *Renderer) Message(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Highlight prints a labelled value, colored when color is enabled.
func (r *Renderer) Highlight(label, value string) {
	if r.color {
		fmt.Fprintf(r.w, "\n%s%s%s:%s %s%s%s\n\n", ansiCyan, ansiBold, label, ansiReset, ansiMagenta, value, ansiReset)
		return
	}
	fmt.Fprintf(r.w, "\n%s: %s\n\n", label, value)
}

// Table prints rows under headers. Every row must have len(headers) cells.
func (r *Renderer) Table(headers []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(r.w, "No records found.")
		return
	}
	if r.plain {
		fmt.Fprintln(r.w, strings.Join(headers, plainSep))
		for _, row := range rows {
			fmt.Fprintln(r.w, strings.Join(row, plainSep))
		}
		return
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	dashes := make([]string, len(headers))
	for i, h := range headers {
		dashes[i] = strings.Repeat("-", len(h))
	}
	fmt.Fprintln(tw, strings.Join(dashes, "\t"))
	for _, row := range rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	// tabwriter pads the last column too; trim it.
	for _, line := range strings.Split(strings.TrimRight(sb.String(), "\n"), "\n") {
		fmt.Fprintln(r.w, strings.TrimRight(line, " "))
	}
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// Currency formats v as dollars with thousands separators and cents.
func Currency(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// Salary formats a salary for a table cell, without the currency sign.
func Salary(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}
