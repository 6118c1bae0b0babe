package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/ui"
)

func newQuestsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quests",
		Short: "List today's quests",
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

			completed, err := svc.CompletedToday(ctx)
			if err != nil {
				return err
			}
			done := make(map[string]bool, len(completed))
			for _, k := range completed {
				done[k] = true
			}

			fmt.Fprintln(out, ui.Heading(ui.IconQuest, "Daily Quests"))
			for _, q := range svc.Catalog().Daily() {
				mark := "[ ]"
				if done[q.Key] {
					mark = "[x]"
				}
				mandatory := ""
				if q.Mandatory {
					mandatory = " " + ui.Warn.Render("(mandatory)")
				}
				fmt.Fprintf(out, "%s %s — %s%s %s\n",
					mark,
					ui.Key.Render(q.Key),
					q.Name,
					mandatory,
					ui.Muted.Render(fmt.Sprintf("+%d XP, +%d G, +%d %s", q.XP, q.Gold, q.BonusAmount, q.BonusStat)),
				)
			}
			return nil
		},
	}
	return cmd
}
