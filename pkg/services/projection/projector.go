package projection

import (
	"slices"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
)

type State int

const (
	StateNotComputed State = iota
	StateComputed
)

func (s State) String() string {
	if s == StateComputed {
		return "computed"
	}
	return "not_computed"
}

// Snapshot is a projection computed from one set of inputs.
type Snapshot struct {
	Inputs domain.ExperimentInputs
	Result domain.ProjectionResult
	Series domain.MonthlySeries
}

// Projector keeps the most recent valid projection so that a display stays
// stable while an input is transiently invalid. It is not safe for concurrent use.
type Projector struct {
	logger  zerolog.Logger
	current *Snapshot
}

func NewProjector(logger zerolog.Logger) *Projector {
	return &Projector{logger: logger}
}

// Update recomputes the projection from in. Invalid inputs leave the previous
// snapshot in place and report false.
func (p *Projector) Update(in domain.ExperimentInputs) bool {
	result, err := Compute(in)
	if err != nil {
		p.logger.Debug().
			Err(err).
			Int("duration_days", in.DurationDays).
			Float64("control_revenue", in.ControlRevenue).
			Float64("variant_revenue", in.VariantRevenue).
			Str("state", p.State().String()).
			Msg("skipping projection update")
		return false
	}

	p.current = &Snapshot{
		Inputs: in,
		Result: result,
		Series: GenerateMonthlySeries(result.RawAnnualValue),
	}
	return true
}

// Current returns the latest snapshot, or false while nothing has been computed.
func (p *Projector) Current() (Snapshot, bool) {
	if p.current == nil {
		return Snapshot{}, false
	}
	snap := *p.current
	snap.Series = slices.Clone(p.current.Series)
	return snap, true
}

func (p *Projector) State() State {
	if p.current == nil {
		return StateNotComputed
	}
	return StateComputed
}
