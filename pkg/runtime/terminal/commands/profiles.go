package commands

import (
	"fmt"

	"github.com/de-tools/lift-atlas/pkg/services/config"
	"github.com/spf13/cobra"
)

type ProfilesCmd struct {
	experimentsPath string
}

func NewProfilesCmd() *cobra.Command {
	pc := &ProfilesCmd{}
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List experiment profiles",
		RunE:  pc.run,
	}

	cmd.Flags().StringVar(&pc.experimentsPath, "experiments", DefaultExperimentsPath(), "Path to the experiment profiles file")

	return cmd
}

func (pc *ProfilesCmd) run(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	registry, err := config.NewProfileRegistry(pc.experimentsPath)
	if err != nil {
		return err
	}

	names, err := registry.GetProfiles(ctx)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintf(out, "No experiment profiles found in %s\n", pc.experimentsPath)
		return nil
	}

	for _, name := range names {
		profile, err := registry.GetProfile(ctx, name)
		if err != nil {
			fmt.Fprintf(out, "%s\t(invalid: %v)\n", name, err)
			continue
		}
		fmt.Fprintf(out, "%s\t%d days\tcontrol=%g\tvariant=%g\n",
			name,
			profile.Inputs.DurationDays,
			profile.Inputs.ControlRevenue,
			profile.Inputs.VariantRevenue)
	}
	return nil
}
