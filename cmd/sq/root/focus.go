package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/engine"
	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/ui"
)

func newFocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Weekly deep-focus quest (Forest app hours)",
	}
	cmd.AddCommand(newFocusLogCmd(), newFocusClaimCmd())
	return cmd
}

func newFocusLogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "log <hours>",
		Short: "Record this week's total focused hours",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("hours is required")
			}
			if _, err := strconv.ParseFloat(args[0], 64); err != nil {
				return errors.New("hours must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, _ := strconv.ParseFloat(args[0], 64)

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

			h, err := svc.LogFocusHours(ctx, hours)
			if err != nil {
				return err
			}
			if h.WeeklyFocusHours >= engine.FocusHoursTarget {
				fmt.Fprintf(out, "%s %.1fh logged — goal reached, run %s\n",
					ui.Good.Render(ui.IconFocus+" Goal reached!"),
					h.WeeklyFocusHours,
					ui.Key.Render("sq focus claim"))
			} else {
				remaining := engine.FocusHoursTarget - h.WeeklyFocusHours
				fmt.Fprintf(out, "%s %.1fh logged, %.1fh to go\n",
					ui.Warn.Render(ui.IconFocus+" Keep growing!"), h.WeeklyFocusHours, remaining)
			}
			return nil
		},
	}
}

func newFocusClaimCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "claim",
		Short: "Claim the weekly focus reward once the target is met",
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

			res, err := svc.ClaimFocusReward(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s +%d XP, +%d G, +%d %s\n",
				ui.Good.Render(ui.IconFocus+" Weekly Deep Focus completed!"),
				res.XPGained, res.GoldGained, res.StatGained, res.Stat)
			if res.LevelUp {
				fmt.Fprintf(out, "%s You are now Level %d! (+%d Skill Points)\n",
					ui.BadgeLevelUp, res.LevelAfter, res.SkillPointsGained)
			}
			return nil
		},
	}
}
