package commands

import (
	"fmt"
	"os"

	"github.com/de-tools/lift-atlas/pkg/presentation/chart"
	"github.com/de-tools/lift-atlas/pkg/services/projection"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type ExportCmd struct {
	env     *Env
	inputs  inputFlags
	outPath string
}

func NewExportCmd(env *Env) *cobra.Command {
	ec := &ExportCmd{env: env}
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the monthly decay chart as a PNG image",
		RunE:  ec.run,
	}

	ec.inputs.register(cmd)
	cmd.Flags().StringVar(&ec.outPath, "out", "projection.png", "Destination image file")

	return cmd
}

func (ec *ExportCmd) run(cmd *cobra.Command, _ []string) (err error) {
	ctx := cmd.Context()

	in, _, err := ec.inputs.resolve(ctx, cmd)
	if err != nil {
		return err
	}
	result, err := projection.Compute(in)
	if err != nil {
		return fmt.Errorf("failed to compute projection: %w", err)
	}

	f, err := os.Create(ec.outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", ec.outPath, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", ec.outPath, cerr)
		}
	}()

	exporter := chart.PNGExporter{
		Width:  ec.env.Settings.Chart.Width,
		Height: ec.env.Settings.Chart.Height,
	}
	series := projection.GenerateMonthlySeries(result.RawAnnualValue)
	if err := exporter.Export(f, series, chart.NewScale(result)); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Str("path", ec.outPath).Msg("chart exported")
	fmt.Fprintf(cmd.OutOrStdout(), "Chart written to %s\n", ec.outPath)
	return nil
}
