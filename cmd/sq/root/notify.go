package root

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/config"
	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/engine"
	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/notify"
	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/storage"
)

func newNotifyCmd() *cobra.Command {
	var once bool

	cmd := &cobra.Command{
		Use:   "notify",
		Short: "Run the scheduled notifier (motivation + EOD report)",
		Long: `Run the notifier, which reads profile and history state and dispatches
motivational messages and the end-of-day report through the configured
channels (NTFY_TOPIC and/or TELEGRAM_BOT_TOKEN + TELEGRAM_CHAT_ID).

With --once it evaluates the current hour and exits, which suits an
external cron. Without it, an hourly scheduler runs until interrupted.
The notifier never mutates the profile.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			loc, err := cfg.Location()
			if err != nil {
				return err
			}

			path, err := storage.ResolveDBPath(cfg.DBPath)
			if err != nil {
				return err
			}
			db, err := storage.Open(ctx, path)
			if err != nil {
				return err
			}
			defer db.Close()

			var senders []notify.Sender
			if cfg.NtfyTopic != "" {
				senders = append(senders, notify.NewNtfySender(cfg.NtfyTopic))
			}
			if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
				tg, err := notify.NewTelegramSender(cfg.TelegramToken, cfg.TelegramChatID)
				if err != nil {
					return err
				}
				senders = append(senders, tg)
			}

			catalog := engine.DefaultCatalog()
			if cfg.CatalogPath != "" {
				if catalog, err = engine.LoadCatalog(cfg.CatalogPath); err != nil {
					return err
				}
			}

			reporter := notify.NewReporter(db, cfg.HunterName, catalog.DailyCount(),
				cfg.ReportHour, notify.NewFanout(senders...))

			if once {
				return reporter.Tick(ctx, time.Now().In(loc))
			}

			sched := notify.NewScheduler(loc, reporter)
			if err := sched.Start(ctx); err != nil {
				return err
			}
			defer sched.Stop()
			log.Println("Notifier started. Press Ctrl+C to stop.")

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			sig := <-sigChan
			log.Printf("Received signal: %v, shutting down", sig)
			return nil
		},
	}

	cmd.Flags().BoolVar(&once, "once", false, "Evaluate the current hour once and exit")
	return cmd
}
