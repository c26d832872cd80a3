// Package renderer renders fleet reports, either as the fixed-width text
// report of the interactive session, or as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/fleet"
)

//go:embed templates/*.md
var templates embed.FS

// Report writes the fixed-width fleet report to w: one line per boat, in
// fleet order, followed by the totals line.
func Report(w io.Writer, f *fleet.Fleet) error {
	for _, b := range f.All() {
		if _, err := fmt.Fprintln(w, b.FormatReportLine()); err != nil {
			return err
		}
	}
	paid, spent := f.Totals()
	_, err := fmt.Fprintln(w, fleet.FormatTotalsLine(paid, spent))
	return err
}

// fleetReport is the data of the markdown fleet report.
type fleetReport struct {
	Boats     []*fleet.Boat
	Paid      fleet.Money
	Spent     fleet.Money
	Remaining fleet.Money
}

// Markdown renders the fleet report as a markdown table, amounts formatted
// in the fleet currency.
func Markdown(f *fleet.Fleet) string {
	paid, spent := f.Totals()
	data := fleetReport{
		Boats:     f.Boats(),
		Paid:      paid,
		Spent:     spent,
		Remaining: paid.Sub(spent),
	}
	return renderTemplate("fleet", "templates/fleet.md", data)
}

var funcs = template.FuncMap{
	// cell escapes a value for a markdown table cell.
	"cell": func(s string) string { return strings.ReplaceAll(s, "|", `\|`) },
}

// renderTemplate is a generic utility to render a template file.
func renderTemplate(templateName, file string, data any) string {
	content, err := fs.ReadFile(templates, file)
	if err != nil {
		return fmt.Sprintf("error reading template %q: %v", file, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(content))
	if err != nil {
		return fmt.Sprintf("error parsing template %q: %v", file, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
