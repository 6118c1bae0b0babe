package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/ui"
)

func newDoCmd() *cobra.Command {
	var percent int

	cmd := &cobra.Command{
		Use:   "do <quest>",
		Short: "Complete a quest (optionally partially)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("quest key is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if percent < 1 || percent > 100 {
				return errors.New("--percent must be 1-100")
			}

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

			res, err := svc.CompleteQuest(ctx, args[0], float64(percent)/100)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Logged"),
				res.QuestKey,
				ui.Muted.Render(fmt.Sprintf("at %d%% (+%d XP, +%d G)", percent, res.XPGained, res.GoldGained)),
			)
			if res.StatGained > 0 {
				fmt.Fprintf(out, "%s\n", ui.LabelValue("Stat", fmt.Sprintf("+%d %s", res.StatGained, res.Stat)))
			}
			if res.LevelUp {
				fmt.Fprintf(out, "%s You are now Level %d! (+%d Skill Points)\n",
					ui.BadgeLevelUp, res.LevelAfter, res.SkillPointsGained)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&percent, "percent", "p", 100, "Completion percentage (1-100)")
	return cmd
}
