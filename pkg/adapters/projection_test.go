package adapters

import (
	"encoding/json"
	"testing"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
	"github.com/de-tools/lift-atlas/pkg/presentation/format"
	"github.com/de-tools/lift-atlas/pkg/services/projection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

func TestMapProjectionDomainToApi_UndefinedLiftIsNull(t *testing.T) {
	in := domain.ExperimentInputs{DurationDays: 7, ControlRevenue: 0, VariantRevenue: 70}
	res, err := projection.Compute(in)
	require.NoError(t, err)

	out := MapProjectionDomainToApi(in, res, projection.GenerateMonthlySeries(res.RawAnnualValue), "USD")
	data, err := json.Marshal(out.Result)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "lift_percentage")
	assert.Nil(t, decoded["lift_percentage"])
	assert.Len(t, out.Series, 13)
	assert.Equal(t, 7, out.Inputs.DurationDays)
}

func TestMapResultDomainToApi_CopiesLift(t *testing.T) {
	lift := 20.0
	r := domain.ProjectionResult{LiftPercentage: &lift, RawAnnualValue: 10}

	out := MapResultDomainToApi(r)

	require.NotNil(t, out.LiftPercentage)
	assert.Equal(t, 20.0, *out.LiftPercentage)
	lift = 5
	assert.Equal(t, 20.0, *out.LiftPercentage)
}

func TestMapProjectionToReport(t *testing.T) {
	in := domain.ExperimentInputs{DurationDays: 14, ControlRevenue: 0, VariantRevenue: 1200}
	res, err := projection.Compute(in)
	require.NoError(t, err)
	f := format.NewFormatter(language.AmericanEnglish, currency.USD)

	report := MapProjectionToReport("Checkout", in, res, projection.GenerateMonthlySeries(res.RawAnnualValue), f, "USD")

	assert.Equal(t, "Checkout", report.Title)
	assert.Equal(t, 14, report.Period.Duration)
	assert.Equal(t, res.NoveltyAdjustedValue, report.TotalAmount)
	require.Len(t, report.Sections, 2)
	assert.Equal(t, format.NotApplicable, report.Sections[0].Details[2].Value)
	assert.Contains(t, report.Sections[1].Summary["Estimated range"], " to ")
}
