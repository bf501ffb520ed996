package domain

import "errors"

// ErrUndefinedLift is returned when the relative lift cannot be computed
// because the control arm earned nothing.
var ErrUndefinedLift = errors.New("lift percentage is undefined for zero control revenue")

// ExperimentInputs are the aggregate figures of a two-arm experiment.
type ExperimentInputs struct {
	DurationDays   int     `validate:"gt=0"`
	ControlRevenue float64 `validate:"gte=0"`
	VariantRevenue float64 `validate:"gte=0"`
}

// ProjectionResult holds the annualized impact of an experiment.
type ProjectionResult struct {
	DailyLift            float64
	LiftPercentage       *float64 // nil when control revenue is zero
	RawAnnualValue       float64
	NoveltyAdjustedValue float64
	ConservativeValue    float64 // NoveltyAdjustedValue * 0.7
	LowerBound           float64
	// UpperBound equals NoveltyAdjustedValue unless the variant lost revenue,
	// in which case the bounds swap and it equals ConservativeValue.
	UpperBound float64
}

// Lift returns the relative lift in percent, or ErrUndefinedLift.
func (r ProjectionResult) Lift() (float64, error) {
	if r.LiftPercentage == nil {
		return 0, ErrUndefinedLift
	}
	return *r.LiftPercentage, nil
}

// MonthlySample is one point of the novelty decay curve.
type MonthlySample struct {
	MonthIndex      int
	EfficacyPercent float64 // 100 at month 0, 75 at month 12
	ProjectedValue  float64
}

// MonthlySeries is ordered by MonthIndex.
type MonthlySeries []MonthlySample

func (s MonthlySeries) Values() []float64 {
	values := make([]float64, len(s))
	for i, sample := range s {
		values[i] = sample.ProjectedValue
	}
	return values
}

func (s MonthlySeries) Efficacies() []float64 {
	values := make([]float64, len(s))
	for i, sample := range s {
		values[i] = sample.EfficacyPercent
	}
	return values
}

// Total sums the projected value of every sample.
func (s MonthlySeries) Total() float64 {
	var total float64
	for _, sample := range s {
		total += sample.ProjectedValue
	}
	return total
}
