package engine

import (
	"context"
	"fmt"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/storage"
)

const (
	// FocusQuestKey is the weekly deep-focus quest fed by Forest app hours.
	FocusQuestKey = "deep_focus_weekly"

	// FocusHoursTarget is the weekly hour total required to claim it.
	FocusHoursTarget = 8.0
)

// LogFocusHours records the running weekly focus total (an absolute value,
// re-entered from the Forest app export).
func (s *Service) LogFocusHours(ctx context.Context, hours float64) (*storage.Hunter, error) {
	if hours < 0 {
		return nil, fmt.Errorf("focus hours must be non-negative, got %g", hours)
	}
	h, err := s.Hunter(ctx)
	if err != nil {
		return nil, err
	}
	h.WeeklyFocusHours = hours
	if err := s.hunters.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// ClaimFocusReward grants the weekly quest's full reward once the hour
// target is met and resets the weekly tracker. Weekly completions never
// enter the daily set, so they are exempt from the day-boundary checks.
func (s *Service) ClaimFocusReward(ctx context.Context) (*CompleteResult, error) {
	quest, ok := s.catalog.Get(FocusQuestKey)
	if !ok {
		return nil, UnknownQuestError{Key: FocusQuestKey}
	}

	h, err := s.Hunter(ctx)
	if err != nil {
		return nil, err
	}
	if h.WeeklyFocusHours < FocusHoursTarget {
		return nil, ErrFocusTargetNotReached
	}

	res := &CompleteResult{
		QuestKey:    quest.Key,
		Fraction:    1,
		XPGained:    quest.XP,
		GoldGained:  quest.Gold,
		Stat:        quest.BonusStat,
		StatGained:  quest.BonusAmount,
		LevelBefore: h.Level,
	}

	h.XP += quest.XP
	h.Gold += quest.Gold
	if quest.BonusAmount > 0 {
		addStat(h, quest.BonusStat, quest.BonusAmount)
	}
	h.WeeklyFocusHours = 0

	lvl := ApplyLevelUps(h)
	res.LevelAfter = lvl.LevelAfter
	res.LevelUp = lvl.Levels > 0
	res.SkillPointsGained = lvl.SkillPointsGained

	if err := s.hunters.Update(ctx, h); err != nil {
		return nil, err
	}
	return res, nil
}
