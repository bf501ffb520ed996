package api

type ExperimentInputs struct {
	DurationDays   int     `json:"duration_days"`
	ControlRevenue float64 `json:"control_revenue"`
	VariantRevenue float64 `json:"variant_revenue"`
}

type ProjectionResult struct {
	DailyLift            float64  `json:"daily_lift"`
	LiftPercentage       *float64 `json:"lift_percentage"`
	RawAnnualValue       float64  `json:"raw_annual_value"`
	NoveltyAdjustedValue float64  `json:"novelty_adjusted_value"`
	ConservativeValue    float64  `json:"conservative_value"`
	LowerBound           float64  `json:"lower_bound"`
	UpperBound           float64  `json:"upper_bound"`
}

type MonthlySample struct {
	MonthIndex      int     `json:"month_index"`
	EfficacyPercent float64 `json:"efficacy_percent"`
	ProjectedValue  float64 `json:"projected_value"`
}

type Projection struct {
	Inputs   ExperimentInputs `json:"inputs"`
	Result   ProjectionResult `json:"result"`
	Series   []MonthlySample  `json:"series"`
	Currency string           `json:"currency"`
}
