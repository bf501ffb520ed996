// Package chart draws the monthly novelty decay curve. Renderers only read the
// series they are given.
package chart

import (
	"io"
	"math"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
)

const monthsPerYear = 12

// Scale carries the annual figures used to size the value axis.
type Scale struct {
	RawAnnualValue       float64
	NoveltyAdjustedValue float64
}

func NewScale(r domain.ProjectionResult) Scale {
	return Scale{
		RawAnnualValue:       r.RawAnnualValue,
		NoveltyAdjustedValue: r.NoveltyAdjustedValue,
	}
}

// Top is the largest monthly magnitude a series can reach: the undecayed share.
func (s Scale) Top() float64 {
	return math.Abs(s.RawAnnualValue) / monthsPerYear
}

// Reference is the average monthly magnitude after the novelty adjustment.
func (s Scale) Reference() float64 {
	return math.Abs(s.NoveltyAdjustedValue) / monthsPerYear
}

// ratio maps v onto [0, 1] relative to Top.
func (s Scale) ratio(v float64) float64 {
	top := s.Top()
	if top == 0 {
		return 0
	}
	r := math.Abs(v) / top
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0
	}
	return math.Min(r, 1)
}

type SeriesRenderer interface {
	Render(w io.Writer, series domain.MonthlySeries, scale Scale) error
}

type ImageExporter interface {
	Export(w io.Writer, series domain.MonthlySeries, scale Scale) error
}
