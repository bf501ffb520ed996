package projection

import (
	"errors"
	"fmt"
	"math"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks inputs against the same rules Compute enforces and reports
// the first violation as ErrInvalidDuration or ErrNegativeInput.
func Validate(in domain.ExperimentInputs) error {
	err := validate.Struct(in)

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		if fe.Field() == "DurationDays" {
			return fmt.Errorf("%w: got %v", ErrInvalidDuration, fe.Value())
		}
		return fmt.Errorf("%w: %s is %v", ErrNegativeInput, fe.Field(), fe.Value())
	}
	if err != nil {
		return fmt.Errorf("failed to validate experiment inputs: %w", err)
	}

	if !validRevenue(in.ControlRevenue) {
		return fmt.Errorf("%w: ControlRevenue is %v", ErrNegativeInput, in.ControlRevenue)
	}
	if !validRevenue(in.VariantRevenue) {
		return fmt.Errorf("%w: VariantRevenue is %v", ErrNegativeInput, in.VariantRevenue)
	}
	return nil
}

// Clamp pulls inputs into the accepted domain the way a form widget would:
// at least one day and no negative revenue. NaN revenue becomes zero.
func Clamp(in domain.ExperimentInputs) domain.ExperimentInputs {
	if in.DurationDays < 1 {
		in.DurationDays = 1
	}
	in.ControlRevenue = clampRevenue(in.ControlRevenue)
	in.VariantRevenue = clampRevenue(in.VariantRevenue)
	return in
}

func clampRevenue(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if math.IsInf(v, 1) {
		return math.MaxFloat64
	}
	return v
}
