package root

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/config"
	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/engine"
	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/storage"
	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/ui"
)

func openService(ctx context.Context) (*engine.Service, config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	path, err := storage.ResolveDBPath(cfg.DBPath)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, config.Config{}, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	catalog := engine.DefaultCatalog()
	if cfg.CatalogPath != "" {
		catalog, err = engine.LoadCatalog(cfg.CatalogPath)
		if err != nil {
			cleanup()
			return nil, config.Config{}, nil, err
		}
	}

	svc := engine.NewService(db, catalog, engine.Options{
		HunterName:      cfg.HunterName,
		StoreWilPenalty: cfg.StoreWilPenalty,
	})
	return svc, cfg, cleanup, nil
}

// startDay runs the day-boundary transition and prints its notices, the way
// every page of the dashboard did on load.
func startDay(ctx context.Context, svc *engine.Service, out io.Writer) error {
	res, err := svc.StartDay(ctx, time.Now())
	if err != nil {
		return err
	}
	if res.PenaltyApplied {
		fmt.Fprintf(out, "%s Mandatory quest missed on %s. -%d Gold.\n",
			ui.BadgePenalty, res.EndedDay, res.PenaltyGold)
	}
	if res.NewDay {
		fmt.Fprintln(out, ui.Muted.Render("A new day has begun. Daily Quests have been reset!"))
	}
	return nil
}
