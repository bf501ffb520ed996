package chart

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/template"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
	"github.com/de-tools/lift-atlas/pkg/presentation/format"
)

const defaultBarWidth = 30

// Table prints one row per month with a bar sized against the scale.
type Table struct {
	Formatter format.Formatter
	BarWidth  int
}

func NewTable(f format.Formatter) *Table {
	return &Table{Formatter: f, BarWidth: defaultBarWidth}
}

const tableTmpl = `{{separator}}
{{row "Month" "Efficacy" "Projected" ""}}
{{separator}}
{{range .}}{{row (printf "%d" .MonthIndex) (percent .EfficacyPercent) (money .ProjectedValue) (bar .ProjectedValue)}}
{{end}}{{separator}}
`

func (t *Table) Render(w io.Writer, series domain.MonthlySeries, scale Scale) error {
	width := t.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}

	funcMap := template.FuncMap{
		"row": func(month, efficacy, value, bar string) string {
			return fmt.Sprintf("| %5s | %9s | %14s | %-*s |", month, efficacy, value, width, bar)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+",
				strings.Repeat("-", 7),
				strings.Repeat("-", 11),
				strings.Repeat("-", 16),
				strings.Repeat("-", width+2))
		},
		"percent": t.Formatter.Percent,
		"money":   t.Formatter.Currency,
		"bar": func(v float64) string {
			return strings.Repeat("#", int(math.Round(scale.ratio(v)*float64(width))))
		},
	}

	tmpl, err := template.New("series").Funcs(funcMap).Parse(tableTmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	return tmpl.Execute(w, series)
}
