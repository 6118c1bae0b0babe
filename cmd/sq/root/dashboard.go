package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/tui"
)

func newDashboardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Open the TUI dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := startDay(ctx, svc, cmd.OutOrStdout()); err != nil {
				return err
			}
			return tui.RunDashboard(ctx, svc, cmd.OutOrStdout())
		},
	}
	return cmd
}
