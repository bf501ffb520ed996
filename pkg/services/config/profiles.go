package config

import (
	"context"
	"fmt"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
	"gopkg.in/ini.v1"
)

// ProfileRegistry exposes named experiments stored in an ini file, one section
// per experiment:
//
//	[checkout-redesign]
//	duration_days   = 14
//	control_revenue = 1000
//	variant_revenue = 1200
type ProfileRegistry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (domain.ExperimentProfile, error)
}

type iniRegistry struct {
	cfg *ini.File
}

func NewProfileRegistry(path string) (ProfileRegistry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load experiment profiles: %w", err)
	}
	return &iniRegistry{cfg: cfg}, nil
}

func (r *iniRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range r.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (r *iniRegistry) GetProfile(_ context.Context, name string) (domain.ExperimentProfile, error) {
	section, err := r.cfg.GetSection(name)
	if err != nil {
		return domain.ExperimentProfile{}, fmt.Errorf("profile %s not found", name)
	}

	duration, err := section.Key("duration_days").Int()
	if err != nil {
		return domain.ExperimentProfile{}, fmt.Errorf("profile %s: invalid duration_days: %w", name, err)
	}
	control, err := section.Key("control_revenue").Float64()
	if err != nil {
		return domain.ExperimentProfile{}, fmt.Errorf("profile %s: invalid control_revenue: %w", name, err)
	}
	variant, err := section.Key("variant_revenue").Float64()
	if err != nil {
		return domain.ExperimentProfile{}, fmt.Errorf("profile %s: invalid variant_revenue: %w", name, err)
	}

	return domain.ExperimentProfile{
		Name: name,
		Inputs: domain.ExperimentInputs{
			DurationDays:   duration,
			ControlRevenue: control,
			VariantRevenue: variant,
		},
	}, nil
}
