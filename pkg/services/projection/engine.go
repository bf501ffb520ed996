package projection

import (
	"errors"
	"math"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
)

const (
	DaysPerYear = 365
	// NoveltyFactor is the share of the raw annual lift expected to survive novelty decay.
	NoveltyFactor = 0.75
	// ConservativeFactor discounts the adjusted value to the low end of the range.
	ConservativeFactor = 0.7
)

var (
	ErrInvalidDuration = errors.New("experiment duration must be a positive number of days")
	ErrNegativeInput   = errors.New("revenue must be a finite non-negative number")
	// ErrOutOfRange means the inputs are valid but the projection overflows float64.
	ErrOutOfRange = errors.New("projection exceeds the representable range")
)

// Compute derives the annualized impact of an experiment. It has no side effects.
func Compute(in domain.ExperimentInputs) (domain.ProjectionResult, error) {
	if in.DurationDays <= 0 {
		return domain.ProjectionResult{}, ErrInvalidDuration
	}
	if !validRevenue(in.ControlRevenue) || !validRevenue(in.VariantRevenue) {
		return domain.ProjectionResult{}, ErrNegativeInput
	}

	dailyLift := (in.VariantRevenue - in.ControlRevenue) / float64(in.DurationDays)
	rawAnnual := dailyLift * DaysPerYear
	adjusted := rawAnnual * NoveltyFactor
	conservative := adjusted * ConservativeFactor
	if !finite(dailyLift) || !finite(rawAnnual) || !finite(conservative) {
		return domain.ProjectionResult{}, ErrOutOfRange
	}

	return domain.ProjectionResult{
		DailyLift:            dailyLift,
		LiftPercentage:       liftPercentage(in.ControlRevenue, in.VariantRevenue),
		RawAnnualValue:       rawAnnual,
		NoveltyAdjustedValue: adjusted,
		ConservativeValue:    conservative,
		// a losing variant flips the factors, keep the range ordered
		LowerBound: math.Min(conservative, adjusted),
		UpperBound: math.Max(conservative, adjusted),
	}, nil
}

// liftPercentage is nil when control is zero or so small that the ratio overflows.
func liftPercentage(control, variant float64) *float64 {
	if control == 0 {
		return nil
	}
	lift := (variant/control - 1) * 100
	if !finite(lift) {
		return nil
	}
	return &lift
}

func validRevenue(v float64) bool {
	return v >= 0 && finite(v)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
