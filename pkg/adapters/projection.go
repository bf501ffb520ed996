package adapters

import (
	"fmt"

	"github.com/de-tools/lift-atlas/pkg/models/api"
	"github.com/de-tools/lift-atlas/pkg/models/domain"
	"github.com/de-tools/lift-atlas/pkg/presentation/format"
)

func MapInputsDomainToApi(in domain.ExperimentInputs) api.ExperimentInputs {
	return api.ExperimentInputs{
		DurationDays:   in.DurationDays,
		ControlRevenue: in.ControlRevenue,
		VariantRevenue: in.VariantRevenue,
	}
}

func MapResultDomainToApi(r domain.ProjectionResult) api.ProjectionResult {
	res := api.ProjectionResult{
		DailyLift:            r.DailyLift,
		RawAnnualValue:       r.RawAnnualValue,
		NoveltyAdjustedValue: r.NoveltyAdjustedValue,
		ConservativeValue:    r.ConservativeValue,
		LowerBound:           r.LowerBound,
		UpperBound:           r.UpperBound,
	}
	if lift, err := r.Lift(); err == nil {
		res.LiftPercentage = &lift
	}
	return res
}

func MapSeriesDomainToApi(s domain.MonthlySeries) []api.MonthlySample {
	samples := make([]api.MonthlySample, 0, len(s))
	for _, sample := range s {
		samples = append(samples, api.MonthlySample{
			MonthIndex:      sample.MonthIndex,
			EfficacyPercent: sample.EfficacyPercent,
			ProjectedValue:  sample.ProjectedValue,
		})
	}
	return samples
}

func MapProjectionDomainToApi(
	in domain.ExperimentInputs,
	r domain.ProjectionResult,
	s domain.MonthlySeries,
	currency string,
) api.Projection {
	return api.Projection{
		Inputs:   MapInputsDomainToApi(in),
		Result:   MapResultDomainToApi(r),
		Series:   MapSeriesDomainToApi(s),
		Currency: currency,
	}
}

// MapProjectionToReport lays a projection out as a text report. Values are
// pre-formatted so the report can be printed as is.
func MapProjectionToReport(
	title string,
	in domain.ExperimentInputs,
	r domain.ProjectionResult,
	s domain.MonthlySeries,
	f format.Formatter,
	currency string,
) *domain.Report {
	return &domain.Report{
		Title:       title,
		Period:      domain.TimePeriod{Duration: in.DurationDays},
		TotalAmount: r.NoveltyAdjustedValue,
		Currency:    currency,
		Sections: []domain.ReportSection{
			{
				Title: "Experiment",
				Details: []domain.ReportDetail{
					{Name: "Control revenue", Value: f.Currency(in.ControlRevenue), Unit: currency, Description: "Observed in the control arm"},
					{Name: "Variant revenue", Value: f.Currency(in.VariantRevenue), Unit: currency, Description: "Observed in the variant arm"},
					{Name: "Lift", Value: format.Lift(f, r), Description: "Variant over control"},
				},
			},
			{
				Title: "Annual impact",
				Summary: map[string]interface{}{
					"Estimated range": fmt.Sprintf("%s to %s", f.Currency(r.LowerBound), f.Currency(r.UpperBound)),
				},
				Details: []domain.ReportDetail{
					{Name: "Daily lift", Value: f.Currency(r.DailyLift), Unit: currency, Description: "Revenue difference per day"},
					{Name: "Raw annual value", Value: f.Currency(r.RawAnnualValue), Unit: currency, Description: "Daily lift over 365 days"},
					{Name: "Novelty adjusted value", Value: f.Currency(r.NoveltyAdjustedValue), Unit: currency, Description: "75% of the raw annual value"},
					{Name: "Conservative value", Value: f.Currency(r.ConservativeValue), Unit: currency, Description: "70% of the adjusted value"},
					{Name: "Decayed monthly total", Value: f.Currency(s.Total()), Unit: currency, Description: "Sum of the 13 monthly samples"},
				},
			},
		},
	}
}
