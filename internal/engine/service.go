package engine

import (
	"context"
	"database/sql"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/storage"
)

// Options tune behavior that varied across revisions of the system.
type Options struct {
	HunterName string
	// StoreWilPenalty applies the -1 willpower penalty on store purchases
	// (floored at 1).
	StoreWilPenalty bool
}

func DefaultOptions() Options {
	return Options{HunterName: "Hunter", StoreWilPenalty: true}
}

// Service owns the progression engine: day boundary, quest completion and
// undo, store purchases and skill-point allocation. One profile, owned for
// the duration of a session, no shared mutable state.
type Service struct {
	db          *sql.DB
	hunters     *storage.HunterRepo
	completions *storage.CompletionRepo
	history     *storage.HistoryRepo
	catalog     *Catalog
	items       []StoreItem
	opts        Options
}

func NewService(db *sql.DB, catalog *Catalog, opts Options) *Service {
	if opts.HunterName == "" {
		opts.HunterName = DefaultOptions().HunterName
	}
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Service{
		db:          db,
		hunters:     storage.NewHunterRepo(db),
		completions: storage.NewCompletionRepo(db),
		history:     storage.NewHistoryRepo(db),
		catalog:     catalog,
		items:       DefaultStoreItems(),
		opts:        opts,
	}
}

func (s *Service) Catalog() *Catalog               { return s.catalog }
func (s *Service) StoreItems() []StoreItem         { return s.items }
func (s *Service) HunterRepo() *storage.HunterRepo { return s.hunters }

func (s *Service) Hunter(ctx context.Context) (*storage.Hunter, error) {
	return s.hunters.GetOrCreate(ctx, s.opts.HunterName)
}

// CompletedToday returns the quest keys completed in the current day window
// (the completions logged on the hunter's last_login date).
func (s *Service) CompletedToday(ctx context.Context) ([]string, error) {
	h, err := s.Hunter(ctx)
	if err != nil {
		return nil, err
	}
	return s.completions.KeysOn(ctx, h.Name, h.LastLogin)
}

func (s *Service) History(ctx context.Context, limit int) ([]storage.HistoryRecord, error) {
	return s.history.ListRecent(ctx, s.opts.HunterName, limit)
}
