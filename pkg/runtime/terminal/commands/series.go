package commands

import (
	"fmt"

	"github.com/de-tools/lift-atlas/pkg/adapters"
	"github.com/de-tools/lift-atlas/pkg/presentation/chart"
	"github.com/de-tools/lift-atlas/pkg/services/projection"
	"github.com/spf13/cobra"
)

type SeriesCmd struct {
	env         *Env
	annualValue float64
	output      string
}

func NewSeriesCmd(env *Env) *cobra.Command {
	sc := &SeriesCmd{env: env}
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Print the monthly novelty decay curve for a raw annual value",
		RunE:  sc.run,
	}

	cmd.Flags().Float64Var(&sc.annualValue, "annual-value", 0, "Raw annual value to spread over the year")
	cmd.Flags().StringVarP(&sc.output, "output", "o", outputText, "Output format: text or json")
	_ = cmd.MarkFlagRequired("annual-value")

	return cmd
}

func (sc *SeriesCmd) run(cmd *cobra.Command, _ []string) error {
	if err := validateOutput(sc.output); err != nil {
		return err
	}

	series := projection.GenerateMonthlySeries(sc.annualValue)
	if sc.output == outputJSON {
		return sc.env.JSON.Handle(adapters.MapSeriesDomainToApi(series))
	}

	scale := chart.Scale{
		RawAnnualValue:       sc.annualValue,
		NoveltyAdjustedValue: sc.annualValue * projection.NoveltyFactor,
	}
	out := cmd.OutOrStdout()
	if err := chart.NewTable(sc.env.Formatter).Render(out, series, scale); err != nil {
		return fmt.Errorf("failed to render series: %w", err)
	}
	return chart.Sparkline{}.Render(out, series, scale)
}
