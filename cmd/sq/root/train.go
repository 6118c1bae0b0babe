package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/engine"
	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/ui"
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train <stat>",
		Short: "Spend a skill point on a stat (str|intel|wil|fin|cha)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("stat is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			stat, err := engine.ParseStatKey(args[0])
			if err != nil {
				return err
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

			h, err := svc.AllocateSkillPoint(ctx, stat)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s +1 %s %s\n",
				ui.Good.Render(ui.IconSparkle+" Trained"),
				stat,
				ui.Muted.Render(fmt.Sprintf("(%d skill points left)", h.SkillPoints)),
			)
			return nil
		},
	}
	return cmd
}
