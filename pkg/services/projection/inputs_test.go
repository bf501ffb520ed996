package projection

import (
	"math"
	"testing"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		in       domain.ExperimentInputs
		expected error
	}{
		{"valid", domain.ExperimentInputs{DurationDays: 14, ControlRevenue: 1000, VariantRevenue: 1200}, nil},
		{"zero revenue", domain.ExperimentInputs{DurationDays: 1}, nil},
		{"zero duration", domain.ExperimentInputs{DurationDays: 0, ControlRevenue: 1000}, ErrInvalidDuration},
		{"negative control", domain.ExperimentInputs{DurationDays: 14, ControlRevenue: -5}, ErrNegativeInput},
		{"negative variant", domain.ExperimentInputs{DurationDays: 14, VariantRevenue: -0.01}, ErrNegativeInput},
		{"infinite variant", domain.ExperimentInputs{DurationDays: 14, VariantRevenue: math.Inf(1)}, ErrNegativeInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.in)
			if tc.expected == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name     string
		in       domain.ExperimentInputs
		expected domain.ExperimentInputs
	}{
		{
			name:     "already valid",
			in:       domain.ExperimentInputs{DurationDays: 14, ControlRevenue: 1000, VariantRevenue: 1200},
			expected: domain.ExperimentInputs{DurationDays: 14, ControlRevenue: 1000, VariantRevenue: 1200},
		},
		{
			name:     "negative everything",
			in:       domain.ExperimentInputs{DurationDays: -2, ControlRevenue: -1, VariantRevenue: -3},
			expected: domain.ExperimentInputs{DurationDays: 1},
		},
		{
			name:     "nan revenue",
			in:       domain.ExperimentInputs{DurationDays: 3, ControlRevenue: math.NaN(), VariantRevenue: 10},
			expected: domain.ExperimentInputs{DurationDays: 3, VariantRevenue: 10},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Clamp(tc.in)
			assert.Equal(t, tc.expected, got)
			assert.NoError(t, Validate(got))
		})
	}
}
