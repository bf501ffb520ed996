package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/de-tools/lift-atlas/pkg/models/domain"
	"github.com/de-tools/lift-atlas/pkg/presentation/chart"
	"github.com/de-tools/lift-atlas/pkg/presentation/format"
	"github.com/de-tools/lift-atlas/pkg/services/projection"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type WatchCmd struct {
	env *Env
}

func NewWatchCmd(env *Env) *cobra.Command {
	wc := &WatchCmd{env: env}
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-project on every input line read from stdin",
		Long: `Reads lines of the form "<duration_days> <control_revenue> <variant_revenue>"
and prints the projection after each one. Lines that cannot be projected keep
the last valid projection on screen.`,
		RunE: wc.run,
	}
}

func (wc *WatchCmd) run(cmd *cobra.Command, _ []string) error {
	logger := zerolog.Ctx(cmd.Context())
	projector := projection.NewProjector(*logger)
	out := cmd.OutOrStdout()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		in, err := parseInputLine(line)
		if err != nil {
			logger.Warn().Err(err).Str("line", line).Msg("ignoring unparsable input")
			if err := wc.print(out, projector, false); err != nil {
				return err
			}
			continue
		}
		if err := wc.print(out, projector, projector.Update(in)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (wc *WatchCmd) print(out io.Writer, projector *projection.Projector, updated bool) error {
	snap, ok := projector.Current()
	if !ok {
		if _, err := fmt.Fprintln(out, "no projection yet"); err != nil {
			return fmt.Errorf("failed to write projection: %w", err)
		}
		return nil
	}

	marker := ""
	if !updated {
		marker = " (unchanged)"
	}
	f := wc.env.Formatter
	_, err := fmt.Fprintf(out, "%dd: range %s to %s, lift %s%s\n",
		snap.Inputs.DurationDays,
		f.Currency(snap.Result.LowerBound),
		f.Currency(snap.Result.UpperBound),
		format.Lift(f, snap.Result),
		marker)
	if err != nil {
		return fmt.Errorf("failed to write projection: %w", err)
	}
	if err := (chart.Sparkline{}).Render(out, snap.Series, chart.NewScale(snap.Result)); err != nil {
		return fmt.Errorf("failed to render sparkline: %w", err)
	}
	return nil
}

func parseInputLine(line string) (domain.ExperimentInputs, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return domain.ExperimentInputs{}, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}

	duration, err := strconv.Atoi(fields[0])
	if err != nil {
		return domain.ExperimentInputs{}, fmt.Errorf("invalid duration: %w", err)
	}
	control, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return domain.ExperimentInputs{}, fmt.Errorf("invalid control revenue: %w", err)
	}
	variant, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return domain.ExperimentInputs{}, fmt.Errorf("invalid variant revenue: %w", err)
	}

	return domain.ExperimentInputs{
		DurationDays:   duration,
		ControlRevenue: control,
		VariantRevenue: variant,
	}, nil
}
