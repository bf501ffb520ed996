package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
	"github.com/de-tools/lift-atlas/pkg/presentation/format"
	"github.com/de-tools/lift-atlas/pkg/runtime/terminal/export"
	"github.com/de-tools/lift-atlas/pkg/services/config"
	"github.com/de-tools/lift-atlas/pkg/services/projection"
	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// Env is filled in by the root command once settings are loaded, before any
// subcommand runs.
type Env struct {
	Settings  *config.Settings
	Formatter format.Formatter
	Reporter  *export.Reporter
	JSON      *export.JSONReporter
}

func DefaultExperimentsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "experiments.ini"
	}
	return filepath.Join(home, ".lift-atlas", "experiments.ini")
}

// inputFlags are the experiment flags shared by project and export.
type inputFlags struct {
	duration        int
	control         float64
	variant         float64
	profile         string
	experimentsPath string
	clamp           bool
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.duration, "duration", 14, "Days the experiment ran")
	cmd.Flags().Float64Var(&f.control, "control", 0, "Total revenue of the control arm")
	cmd.Flags().Float64Var(&f.variant, "variant", 0, "Total revenue of the variant arm")
	cmd.Flags().StringVar(&f.profile, "profile", "", "Experiment profile to load inputs from")
	cmd.Flags().StringVar(&f.experimentsPath, "experiments", DefaultExperimentsPath(), "Path to the experiment profiles file")
	cmd.Flags().BoolVar(&f.clamp, "clamp", false, "Clamp out-of-range inputs instead of rejecting them")
}

// resolve merges the profile, if any, with explicitly set flags and returns
// validated inputs along with a title for the report.
func (f *inputFlags) resolve(ctx context.Context, cmd *cobra.Command) (domain.ExperimentInputs, string, error) {
	in := domain.ExperimentInputs{
		DurationDays:   f.duration,
		ControlRevenue: f.control,
		VariantRevenue: f.variant,
	}
	title := "Experiment projection"

	if f.profile != "" {
		registry, err := config.NewProfileRegistry(f.experimentsPath)
		if err != nil {
			return domain.ExperimentInputs{}, "", err
		}
		profile, err := registry.GetProfile(ctx, f.profile)
		if err != nil {
			return domain.ExperimentInputs{}, "", err
		}
		title = profile.Name
		in = profile.Inputs

		flags := cmd.Flags()
		if flags.Changed("duration") {
			in.DurationDays = f.duration
		}
		if flags.Changed("control") {
			in.ControlRevenue = f.control
		}
		if flags.Changed("variant") {
			in.VariantRevenue = f.variant
		}
	}

	if f.clamp {
		in = projection.Clamp(in)
	}
	if err := projection.Validate(in); err != nil {
		return domain.ExperimentInputs{}, "", fmt.Errorf("invalid experiment inputs: %w", err)
	}
	return in, title, nil
}

func validateOutput(output string) error {
	if output != outputText && output != outputJSON {
		return fmt.Errorf("unsupported output %q, expected %q or %q", output, outputText, outputJSON)
	}
	return nil
}
