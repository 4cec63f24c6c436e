// Package report renders curve evaluations for the console.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/philipparndt/gocurves/pkg/curves"
	"github.com/philipparndt/gocurves/pkg/geometry"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown report format")

// Format selects the report layout.
type Format int

const (
	Plain    Format = iota // one line per curve
	Table                  // boxed terminal table
	Markdown               // GitHub-flavoured Markdown table
)

func (f Format) String() string {
	switch f {
	case Plain:
		return "plain"
	case Table:
		return "table"
	case Markdown:
		return "markdown"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses "plain", "table" or "markdown".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "plain", "":
		return Plain, nil
	case "table":
		return Table, nil
	case "markdown", "md":
		return Markdown, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Entry is one evaluated curve.
type Entry struct {
	Name       string
	Point      geometry.Vector3
	Derivative geometry.Vector3
}

// Evaluate computes point and first derivative of every curve at t.
func Evaluate[C curves.Curve](cs []C, t float64) []Entry {
	entries := make([]Entry, len(cs))
	for i, c := range cs {
		entries[i] = Entry{
			Name:       c.Name(),
			Point:      c.Point(t),
			Derivative: c.FirstDerivative(t),
		}
	}
	return entries
}

// Write renders a titled section of entries in the given format.
func Write(w io.Writer, f Format, title string, entries []Entry) error {
	switch f {
	case Plain:
		return WritePlain(w, title, entries)
	case Table, Markdown:
		return writeTable(w, f, title, entries)
	default:
		return fmt.Errorf("%v: %w", f, ErrUnknownFormat)
	}
}

// WritePlain writes the title, one line per entry and a blank line.
func WritePlain(w io.Writer, title string, entries []Entry) error {
	var b strings.Builder
	fmt.Fprintln(&b, title)
	for _, e := range entries {
		fmt.Fprintf(&b, "%-14s point = %s; derivative = %s\n", e.Name, e.Point, e.Derivative)
	}
	fmt.Fprintln(&b)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeTable(w io.Writer, f Format, title string, entries []Entry) error {
	tw := table.NewWriter()
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"#", "Curve", "Point", "Derivative"})
	for i, e := range entries {
		tw.AppendRow(table.Row{i + 1, e.Name, e.Point.String(), e.Derivative.String()})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignLeft},
	})

	var out string
	if f == Markdown {
		out = tw.RenderMarkdown()
	} else {
		tw.SetStyle(table.StyleLight)
		out = tw.Render()
	}

	_, err := fmt.Fprintf(w, "%s\n\n", out)
	return err
}

// WriteSum writes the final radius sum line.
func WriteSum(w io.Writer, sum float64) error {
	_, err := fmt.Fprintf(w, "Circles radius_sum: %.6f\n", sum)
	return err
}
