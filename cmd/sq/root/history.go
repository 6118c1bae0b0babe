package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent day records",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, _, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if err := startDay(ctx, svc, out); err != nil {
				return err
			}

			recs, err := svc.History(ctx, limit)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No history yet. Come back tomorrow."))
				return nil
			}

			total := svc.Catalog().DailyCount()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Recent History"))
			for _, rec := range recs {
				fmt.Fprintf(out, "%s  quests %2d/%d  lvl %d  xp %d  %s\n",
					ui.Key.Render(rec.Day),
					len(rec.CompletedQuests), total,
					rec.Level, rec.XP,
					ui.Gold.Render(fmt.Sprintf("%d G", rec.Gold)),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 30, "Number of days to show")
	return cmd
}
