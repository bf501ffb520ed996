package commands

import (
	"fmt"

	"github.com/de-tools/lift-atlas/pkg/adapters"
	"github.com/de-tools/lift-atlas/pkg/presentation/chart"
	"github.com/de-tools/lift-atlas/pkg/services/projection"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ProjectCmd struct {
	env    *Env
	inputs inputFlags
	output string
}

func NewProjectCmd(env *Env) *cobra.Command {
	pc := &ProjectCmd{env: env}
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project the annual revenue impact of an experiment",
		RunE:  pc.run,
	}

	pc.inputs.register(cmd)
	cmd.Flags().StringVarP(&pc.output, "output", "o", outputText, "Output format: text or json")

	return cmd
}

func (pc *ProjectCmd) run(cmd *cobra.Command, _ []string) error {
	if err := validateOutput(pc.output); err != nil {
		return err
	}
	ctx := cmd.Context()
	logger := zerolog.Ctx(ctx)

	in, title, err := pc.inputs.resolve(ctx, cmd)
	if err != nil {
		return err
	}

	result, err := projection.Compute(in)
	if err != nil {
		return fmt.Errorf("failed to compute projection: %w", err)
	}
	series := projection.GenerateMonthlySeries(result.RawAnnualValue)

	logger.Debug().
		Str("experiment", title).
		Float64("raw_annual_value", result.RawAnnualValue).
		Float64("novelty_adjusted_value", result.NoveltyAdjustedValue).
		Msg("projection computed")

	if pc.output == outputJSON {
		return pc.env.JSON.Handle(adapters.MapProjectionDomainToApi(in, result, series, pc.env.Settings.Currency))
	}

	report := adapters.MapProjectionToReport(title, in, result, series, pc.env.Formatter, pc.env.Settings.Currency)
	if err := pc.env.Reporter.Handle(report); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	out := cmd.OutOrStdout()
	scale := chart.NewScale(result)
	fmt.Fprintln(out, "=== Monthly decay ===")
	if err := chart.NewTable(pc.env.Formatter).Render(out, series, scale); err != nil {
		return fmt.Errorf("failed to render series: %w", err)
	}
	return chart.Sparkline{}.Render(out, series, scale)
}
