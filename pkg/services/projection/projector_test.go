package projection

import (
	"testing"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjector_StartsNotComputed(t *testing.T) {
	p := NewProjector(zerolog.New(zerolog.NewTestWriter(t)))

	_, ok := p.Current()
	assert.False(t, ok)
	assert.Equal(t, StateNotComputed, p.State())
}

func TestProjector_InvalidDurationBeforeFirstResult(t *testing.T) {
	p := NewProjector(zerolog.New(zerolog.NewTestWriter(t)))

	updated := p.Update(domain.ExperimentInputs{DurationDays: 0, ControlRevenue: 1000, VariantRevenue: 1200})

	assert.False(t, updated)
	assert.Equal(t, StateNotComputed, p.State())
}

func TestProjector_FreezesOnInvalidInput(t *testing.T) {
	p := NewProjector(zerolog.New(zerolog.NewTestWriter(t)))
	valid := domain.ExperimentInputs{DurationDays: 14, ControlRevenue: 1000, VariantRevenue: 1200}

	require.True(t, p.Update(valid))
	before, ok := p.Current()
	require.True(t, ok)

	for _, in := range []domain.ExperimentInputs{
		{DurationDays: 0, ControlRevenue: 1000, VariantRevenue: 5000},
		{DurationDays: -1, ControlRevenue: 1000, VariantRevenue: 5000},
		{DurationDays: 14, ControlRevenue: -1, VariantRevenue: 5000},
	} {
		assert.False(t, p.Update(in))
	}

	after, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, before, after)
	assert.Equal(t, valid, after.Inputs)
}

func TestProjector_ReplacesSnapshotOnValidUpdate(t *testing.T) {
	p := NewProjector(zerolog.New(zerolog.NewTestWriter(t)))

	require.True(t, p.Update(domain.ExperimentInputs{DurationDays: 14, ControlRevenue: 1000, VariantRevenue: 1200}))
	require.True(t, p.Update(domain.ExperimentInputs{DurationDays: 7, ControlRevenue: 1000, VariantRevenue: 1200}))

	snap, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, 7, snap.Inputs.DurationDays)

	expected, err := Compute(snap.Inputs)
	require.NoError(t, err)
	assert.Equal(t, expected, snap.Result)
	assert.Equal(t, GenerateMonthlySeries(expected.RawAnnualValue), snap.Series)
}

func TestProjector_CurrentReturnsCopyOfSeries(t *testing.T) {
	p := NewProjector(zerolog.New(zerolog.NewTestWriter(t)))
	require.True(t, p.Update(domain.ExperimentInputs{DurationDays: 14, ControlRevenue: 1000, VariantRevenue: 1200}))

	snap, _ := p.Current()
	snap.Series[0].ProjectedValue = -1

	again, _ := p.Current()
	assert.NotEqual(t, -1.0, again.Series[0].ProjectedValue)
}

func TestProjector_SkipsOverflowingInputs(t *testing.T) {
	p := NewProjector(zerolog.New(zerolog.NewTestWriter(t)))
	valid := domain.ExperimentInputs{DurationDays: 14, ControlRevenue: 1000, VariantRevenue: 1200}
	require.True(t, p.Update(valid))

	assert.False(t, p.Update(domain.ExperimentInputs{DurationDays: 1, ControlRevenue: 0, VariantRevenue: 1e308}))

	snap, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, valid, snap.Inputs)
}
