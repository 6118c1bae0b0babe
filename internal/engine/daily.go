package engine

import (
	"context"
	"database/sql"
	"time"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/storage"
)

// DayBoundaryResult reports what the day-boundary transition did.
type DayBoundaryResult struct {
	Day    string
	NewDay bool

	// EndedDay is the date that just closed ("" on the very first session).
	EndedDay        string
	PenaltyApplied  bool
	PenaltyGold     int
	MissedMandatory []string
}

// StartDay runs the day-boundary transition: snapshot the ended day into
// history, assess the mandatory-miss penalty, and advance last_login. It is
// idempotent within a calendar day; callers run it once per session entry.
func (s *Service) StartDay(ctx context.Context, now time.Time) (*DayBoundaryResult, error) {
	h, err := s.Hunter(ctx)
	if err != nil {
		return nil, err
	}

	// Fixed-width ISO dates compare correctly as strings.
	today := now.Format(time.DateOnly)
	if h.LastLogin >= today {
		return &DayBoundaryResult{Day: today}, nil
	}

	res := &DayBoundaryResult{Day: today, NewDay: true}
	endedDay := h.LastLogin

	var snapshot *storage.HistoryRecord
	if endedDay != storage.NeverLoggedIn {
		res.EndedDay = endedDay

		completed, err := s.completions.KeysOn(ctx, h.Name, endedDay)
		if err != nil {
			return nil, err
		}
		snapshot = &storage.HistoryRecord{
			Hunter:          h.Name,
			Day:             endedDay,
			CompletedQuests: completed,
			Level:           h.Level,
			XP:              h.XP,
			Gold:            h.Gold,
		}

		done := make(map[string]bool, len(completed))
		for _, k := range completed {
			done[k] = true
		}
		for _, k := range s.catalog.MandatoryKeys() {
			if !done[k] {
				res.MissedMandatory = append(res.MissedMandatory, k)
			}
		}
		// Never a penalty on the first-ever session; the sentinel day is
		// skipped above.
		if len(res.MissedMandatory) > 0 {
			h.Gold -= PenaltyGold
			if h.Gold < 0 {
				h.Gold = 0
			}
			res.PenaltyApplied = true
			res.PenaltyGold = PenaltyGold
		}
	}

	// Advancing last_login is the reset: the daily set is the completions
	// of the last_login day, and the new day has none.
	h.LastLogin = today

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if snapshot != nil {
			if err := storage.NewHistoryRepo(tx).Upsert(ctx, *snapshot); err != nil {
				return err
			}
		}
		return storage.NewHunterRepo(tx).Update(ctx, h)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
