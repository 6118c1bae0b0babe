package engine

import (
	"context"
	"database/sql"
	"fmt"
	"math"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/storage"
)

// CompleteResult reports one applied quest reward.
type CompleteResult struct {
	QuestKey string
	Fraction float64

	XPGained   int
	GoldGained int
	Stat       StatKey
	StatGained int

	LevelBefore       int
	LevelAfter        int
	LevelUp           bool
	SkillPointsGained int
}

// CompleteQuest applies the reward of one quest at the given completion
// fraction and marks it done for the current day. Rewards scale by floor:
// floor(xp*p), floor(gold*p), floor(bonus*p); a stat is only touched when
// its scaled amount is positive. The level-up cascade runs immediately.
func (s *Service) CompleteQuest(ctx context.Context, questKey string, fraction float64) (*CompleteResult, error) {
	if fraction <= 0 || fraction > 1 {
		return nil, FractionError{Fraction: fraction}
	}

	quest, ok := s.catalog.Get(questKey)
	if !ok {
		return nil, UnknownQuestError{Key: questKey}
	}
	if quest.Weekly {
		return nil, fmt.Errorf("quest %q is weekly; log focus hours and claim it instead", questKey)
	}

	h, err := s.Hunter(ctx)
	if err != nil {
		return nil, err
	}
	day := h.LastLogin

	// The UI disables completed quests, but the engine guards regardless.
	existing, err := s.completions.GetOn(ctx, h.Name, questKey, day)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, AlreadyCompletedError{QuestKey: questKey, Day: day}
	}

	res := &CompleteResult{
		QuestKey:    questKey,
		Fraction:    fraction,
		XPGained:    int(math.Floor(float64(quest.XP) * fraction)),
		GoldGained:  int(math.Floor(float64(quest.Gold) * fraction)),
		Stat:        quest.BonusStat,
		StatGained:  int(math.Floor(float64(quest.BonusAmount) * fraction)),
		LevelBefore: h.Level,
	}

	h.XP += res.XPGained
	h.Gold += res.GoldGained
	if res.StatGained > 0 {
		addStat(h, quest.BonusStat, res.StatGained)
	}

	lvl := ApplyLevelUps(h)
	res.LevelAfter = lvl.LevelAfter
	res.LevelUp = lvl.Levels > 0
	res.SkillPointsGained = lvl.SkillPointsGained

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := storage.NewHunterRepo(tx).Update(ctx, h); err != nil {
			return err
		}
		_, err := storage.NewCompletionRepo(tx).Insert(ctx, storage.QuestCompletion{
			Hunter:      h.Name,
			QuestKey:    questKey,
			Day:         day,
			Fraction:    fraction,
			XPAwarded:   res.XPGained,
			GoldAwarded: res.GoldGained,
			StatKey:     string(quest.BonusStat),
			StatAwarded: res.StatGained,
			Level:       res.LevelBefore,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// UndoResult reports a reverted completion.
type UndoResult struct {
	QuestKey     string
	XPDeducted   int
	GoldDeducted int
	Stat         StatKey
	StatDeducted int
	Level        int
}

// UndoQuest is the strict inverse of CompleteQuest for a same-day
// completion: it subtracts exactly the recorded awarded amounts and removes
// the quest from the day's set. Once a level-up intervened, whether through
// this completion or a later one, the completion can no longer be reversed
// and ErrUndoAfterLevelUp is returned; the engine does not reconstruct
// pre-level-up state.
func (s *Service) UndoQuest(ctx context.Context, questKey string) (*UndoResult, error) {
	h, err := s.Hunter(ctx)
	if err != nil {
		return nil, err
	}
	day := h.LastLogin

	completion, err := s.completions.GetOn(ctx, h.Name, questKey, day)
	if err != nil {
		return nil, err
	}
	if completion == nil {
		return nil, NotCompletedError{QuestKey: questKey, Day: day}
	}
	// The audit row freezes the level at completion time; rows from before
	// the column existed carry 0 and fall back to the xp-cover check.
	if completion.XPAwarded > h.XP || (completion.Level > 0 && completion.Level != h.Level) {
		return nil, ErrUndoAfterLevelUp
	}

	h.XP -= completion.XPAwarded
	h.Gold -= completion.GoldAwarded
	if completion.StatAwarded > 0 {
		addStat(h, StatKey(completion.StatKey), -completion.StatAwarded)
	}

	err = storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := storage.NewHunterRepo(tx).Update(ctx, h); err != nil {
			return err
		}
		return storage.NewCompletionRepo(tx).Delete(ctx, completion.ID)
	})
	if err != nil {
		return nil, err
	}

	return &UndoResult{
		QuestKey:     questKey,
		XPDeducted:   completion.XPAwarded,
		GoldDeducted: completion.GoldAwarded,
		Stat:         StatKey(completion.StatKey),
		StatDeducted: completion.StatAwarded,
		Level:        h.Level,
	}, nil
}
