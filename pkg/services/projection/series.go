package projection

import "github.com/de-tools/lift-atlas/pkg/models/domain"

const (
	HorizonMonths = 12
	// DecayDepth is the efficacy lost, in percentage points, by the end of the horizon.
	DecayDepth = 25.0
)

// Efficacy returns the share of the raw lift, in percent, that still holds at
// the given month. The cubic term keeps the curve flat early on and steepens it
// towards the end of the year.
func Efficacy(month int) float64 {
	progress := float64(month) / HorizonMonths
	return 100 - DecayDepth*(progress*progress*progress+progress)/2
}

// GenerateMonthlySeries spreads rawAnnualValue evenly across the horizon and
// scales each month by its efficacy. Months 0 through 12 are always present.
func GenerateMonthlySeries(rawAnnualValue float64) domain.MonthlySeries {
	monthlyShare := rawAnnualValue / HorizonMonths

	series := make(domain.MonthlySeries, 0, HorizonMonths+1)
	for month := 0; month <= HorizonMonths; month++ {
		efficacy := Efficacy(month)
		series = append(series, domain.MonthlySample{
			MonthIndex:      month,
			EfficacyPercent: efficacy,
			ProjectedValue:  monthlyShare * (efficacy / 100),
		})
	}
	return series
}
