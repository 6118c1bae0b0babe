package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "sq",
	Short:         "Solo Quest — a gamified daily quest tracker",
	Long:          "Solo Quest is a local-first CLI/TUI habit tracker with RPG progression mechanics: daily quests, xp, gold, stats and a scheduled notifier.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newQuestsCmd(),
		newDoCmd(),
		newUndoCmd(),
		newStoreCmd(),
		newBuyCmd(),
		newTrainCmd(),
		newFocusCmd(),
		newHistoryCmd(),
		newDashboardCmd(),
		newNotifyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
