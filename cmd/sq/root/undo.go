package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/ui"
)

func newUndoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undo <quest>",
		Short: "Revert a quest completed today",
		Long: `Revert today's completion of a quest.

This subtracts exactly the xp, gold and stat bonus that were awarded and
removes the quest from today's completed set. A completion whose xp has
already been consumed by a level-up can no longer be undone.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest key is required")
			}
			return nil
		},
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

			res, err := svc.UndoQuest(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Warn.Render("↩ Undone"),
				res.QuestKey,
				ui.Muted.Render(fmt.Sprintf("(-%d XP, -%d G)", res.XPDeducted, res.GoldDeducted)),
			)
			return nil
		},
	}
	return cmd
}
