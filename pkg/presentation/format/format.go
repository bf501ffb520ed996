// Package format renders projection figures for display.
package format

import (
	"math"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotApplicable is printed in place of values that cannot be shown, such as an
// undefined lift.
const NotApplicable = "n/a"

type Formatter interface {
	Currency(v float64) string
	Percent(v float64) string
}

type localized struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewFormatter prints whole currency amounts with the locale's digit grouping.
// Only the digits are localized: the symbol always precedes the number, so
// de-DE renders "€1.234.568" rather than "1.234.568 €".
func NewFormatter(tag language.Tag, unit currency.Unit) Formatter {
	return &localized{
		printer: message.NewPrinter(tag),
		unit:    unit,
	}
}

func (l *localized) Currency(v float64) string {
	if !finite(v) {
		return NotApplicable
	}

	rounded := math.Round(v)
	sign := ""
	if rounded < 0 {
		sign = "-"
	}
	symbol := l.printer.Sprint(currency.Symbol(l.unit))
	return sign + symbol + l.printer.Sprintf("%.0f", math.Abs(rounded))
}

func (l *localized) Percent(v float64) string {
	if !finite(v) {
		return NotApplicable
	}
	return l.printer.Sprintf("%.2f%%", v)
}

// Lift renders the relative lift of r, or NotApplicable when it is undefined.
func Lift(f Formatter, r domain.ProjectionResult) string {
	lift, err := r.Lift()
	if err != nil {
		return NotApplicable
	}
	return f.Percent(lift)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
