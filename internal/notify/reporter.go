package notify

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/storage"
)

// Reporter selects and dispatches notifications for the current hour. It
// reads profile and completion state only; it never mutates the profile.
type Reporter struct {
	hunters     *storage.HunterRepo
	completions *storage.CompletionRepo

	hunterName  string
	totalQuests int
	reportHour  int

	fanout *Fanout
	rng    *rand.Rand
}

func NewReporter(db storage.DBTX, hunterName string, totalQuests, reportHour int, fanout *Fanout) *Reporter {
	return &Reporter{
		hunters:     storage.NewHunterRepo(db),
		completions: storage.NewCompletionRepo(db),
		hunterName:  hunterName,
		totalQuests: totalQuests,
		reportHour:  reportHour,
		fanout:      fanout,
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Tick evaluates one clock hour: the end-of-day report at the report hour,
// a motivational message when the pool has one, nothing otherwise.
func (r *Reporter) Tick(ctx context.Context, now time.Time) error {
	hour := now.Hour()

	if hour == r.reportHour {
		h, err := r.hunters.Get(ctx, r.hunterName)
		if err != nil {
			return err
		}
		if h == nil {
			log.Printf("no profile for %q yet, skipping EOD report", r.hunterName)
			return nil
		}
		day := now.Format(time.DateOnly)
		count, err := r.completions.CountOn(ctx, h.Name, day)
		if err != nil {
			return err
		}
		r.fanout.Deliver(ctx, EODReport(day, h, count, r.totalQuests))
		return nil
	}

	if c, ok := ForHour(hour, r.rng); ok {
		r.fanout.Deliver(ctx, c)
		return nil
	}

	log.Printf("no notification scheduled for hour %d", hour)
	return nil
}
