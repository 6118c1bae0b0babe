package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the hunter profile",
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

			h, err := svc.Hunter(ctx)
			if err != nil {
				return err
			}
			completed, err := svc.CompletedToday(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Heading(ui.IconCrown, h.Name+" — "+h.Rank))
			fmt.Fprintln(out, ui.LabelValue("Level", h.Level))
			fmt.Fprintln(out, ui.LabelValue("XP", ui.XPBar(h.XP, h.XPToNext, 30)))
			fmt.Fprintln(out, ui.LabelValue("Gold", fmt.Sprintf("%d G", h.Gold)))
			fmt.Fprintln(out, ui.LabelValue("Skill Points", h.SkillPoints))
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("📊 Stats"))
			fmt.Fprintf(out, "- 💪 STR: %d\n", h.StatStr)
			fmt.Fprintf(out, "- 🧠 INT: %d\n", h.StatInt)
			fmt.Fprintf(out, "- 🔥 WIL: %d\n", h.StatWil)
			fmt.Fprintf(out, "- 💳 FIN: %d\n", h.StatFin)
			fmt.Fprintf(out, "- 🗣️ CHA: %d\n", h.StatCha)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.LabelValue("Quests today", fmt.Sprintf("%d/%d", len(completed), svc.Catalog().DailyCount())))
			fmt.Fprintln(out, ui.LabelValue("Weekly focus", fmt.Sprintf("%.1fh logged", h.WeeklyFocusHours)))
			return nil
		},
	}
	return cmd
}
