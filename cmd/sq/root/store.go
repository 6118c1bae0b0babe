package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/ui"
)

func newStoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "List the store catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cfg, cleanup, err := openService(ctx)
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

			fmt.Fprintln(out, ui.Heading(ui.IconStore, "System Store"))
			fmt.Fprintln(out, ui.LabelValue("Gold", fmt.Sprintf("%d G", h.Gold)))
			if cfg.StoreWilPenalty {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" Purchasing items reduces your Willpower (WIL) stat by 1."))
			}
			fmt.Fprintln(out, "")
			for _, item := range svc.StoreItems() {
				afford := ui.Good.Render("affordable")
				if h.Gold < item.Cost {
					afford = ui.Bad.Render("too expensive")
				}
				fmt.Fprintf(out, "- %s — %s %s %s\n",
					ui.Key.Render(item.Key), item.Name,
					ui.Gold.Render(fmt.Sprintf("%d G", item.Cost)), ui.Muted.Render("("+afford+")"))
			}
			return nil
		},
	}
	return cmd
}

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item>",
		Short: "Buy a store item with gold",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item key is required")
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

			res, err := svc.Purchase(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s %s\n",
				ui.Good.Render(ui.IconStore+" Purchased"),
				res.Item.Name,
				ui.Muted.Render(fmt.Sprintf("(-%d G, %d G left)", res.Item.Cost, res.GoldAfter)),
			)
			if res.WilReduced {
				fmt.Fprintln(out, ui.Warn.Render("Your Willpower (WIL) stat decreased by 1."))
			}
			return nil
		},
	}
	return cmd
}
