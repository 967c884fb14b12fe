package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"rgbctl/internal/color"
	"rgbctl/internal/workspace"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat validates a --output flag value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(s)); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (want table, json or yaml)", s)
	}
}

// PrinterOptions contains options for printing results
type PrinterOptions struct {
	Format OutputFormat
	Quiet  bool
}

// Printer writes command results in the selected format.
type Printer struct {
	out     io.Writer
	options PrinterOptions
}

// NewPrinter creates a printer writing to out.
func NewPrinter(out io.Writer, options PrinterOptions) *Printer {
	if options.Format == "" {
		options.Format = OutputFormatTable
	}
	return &Printer{out: out, options: options}
}

// ProfileRow is one tab of a workspace as printed by the CLI.
type ProfileRow struct {
	Name   string `json:"name" yaml:"name"`
	Active bool   `json:"active" yaml:"active"`
	Color  string `json:"color" yaml:"color"`
	Mode   string `json:"mode" yaml:"mode"`
	Wait   int    `json:"wait" yaml:"wait"`
	Pins   [3]int `json:"pins" yaml:"pins,flow"`
	Frame  string `json:"frame" yaml:"frame"`
}

// ColorReport describes one colour: its channels and slider gradients.
type ColorReport struct {
	Hex       string          `json:"hex" yaml:"hex"`
	RGB       [3]uint8        `json:"rgb" yaml:"rgb,flow"`
	Gradients GradientsReport `json:"gradients" yaml:"gradients"`
}

// GradientsReport lists the slider endpoints of every channel.
type GradientsReport struct {
	R [2]string `json:"r" yaml:"r,flow"`
	G [2]string `json:"g" yaml:"g,flow"`
	B [2]string `json:"b" yaml:"b,flow"`
}

// NewColorReport builds the report for c.
func NewColorReport(c color.RGB) ColorReport {
	g := color.DeriveGradients(c)
	return ColorReport{
		Hex: c.Hex(),
		RGB: [3]uint8(c),
		Gradients: GradientsReport{
			R: [2]string(g.R),
			G: [2]string(g.G),
			B: [2]string(g.B),
		},
	}
}

// ProfileRows flattens a workspace into printable rows.
func ProfileRows(ws workspace.Workspace) ([]ProfileRow, error) {
	rows := make([]ProfileRow, 0, ws.Len())
	for i, name := range ws.Names() {
		p, err := ws.Profile(i)
		if err != nil {
			return nil, err
		}
		frame, err := p.MarshalFrame()
		if err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
		rows = append(rows, ProfileRow{
			Name:   name,
			Active: i == ws.ActiveIndex(),
			Color:  p.Color.Hex(),
			Mode:   p.Mode.String(),
			Wait:   p.Wait,
			Pins:   p.Pins,
			Frame:  string(frame),
		})
	}
	return rows, nil
}

// PrintProfiles prints the profiles of a workspace.
func (p *Printer) PrintProfiles(rows []ProfileRow) error {
	if p.options.Format != OutputFormatTable {
		return p.encode(rows)
	}
	if len(rows) == 0 {
		if !p.options.Quiet {
			fmt.Fprintln(p.out, text.FgYellow.Sprint("No profiles found"))
		}
		return nil
	}

	t := p.newTable()
	t.AppendHeader(header("", "Name", "Color", "Mode", "Wait", "Pins", "Frame"))
	for _, r := range rows {
		marker := ""
		if r.Active {
			marker = text.FgHiGreen.Sprint("*")
		}
		t.AppendRow(table.Row{
			marker,
			r.Name,
			r.Color,
			text.FgCyan.Sprint(r.Mode),
			fmt.Sprintf("%dms", r.Wait),
			fmt.Sprintf("%d/%d/%d", r.Pins[0], r.Pins[1], r.Pins[2]),
			r.Frame,
		})
	}
	t.Render()
	return nil
}

// PrintColor prints a colour report.
func (p *Printer) PrintColor(r ColorReport) error {
	if p.options.Format != OutputFormatTable {
		return p.encode(r)
	}

	t := p.newTable()
	t.AppendHeader(header("Property", "Value"))
	t.AppendRow(table.Row{text.FgYellow.Sprint("hex"), r.Hex})
	t.AppendRow(table.Row{text.FgYellow.Sprint("rgb"), fmt.Sprintf("%d, %d, %d", r.RGB[0], r.RGB[1], r.RGB[2])})
	t.AppendSeparator()
	for _, g := range []struct {
		name string
		ends [2]string
	}{{"gradient R", r.Gradients.R}, {"gradient G", r.Gradients.G}, {"gradient B", r.Gradients.B}} {
		t.AppendRow(table.Row{text.FgYellow.Sprint(g.name), g.ends[0] + " → " + g.ends[1]})
	}
	t.Render()
	return nil
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	return t
}

func header(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for i, c := range cols {
		row[i] = text.FgHiCyan.Sprint(strings.ToUpper(c))
	}
	return row
}

func (p *Printer) encode(v interface{}) error {
	switch p.options.Format {
	case OutputFormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(v)
	case OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		_, err = p.out.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", p.options.Format)
	}
}
