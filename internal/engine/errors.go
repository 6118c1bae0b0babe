package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientGold = errors.New("insufficient gold")
	ErrNoSkillPoints    = errors.New("no skill points to allocate")

	// ErrUndoAfterLevelUp is returned when a completion can no longer be
	// reversed because the level-up cascade already consumed its xp.
	ErrUndoAfterLevelUp = errors.New("cannot undo: a level-up has consumed the awarded xp")

	// ErrFocusTargetNotReached is returned when the weekly focus reward is
	// claimed before the hour target is met.
	ErrFocusTargetNotReached = errors.New("weekly focus target not reached")
)

// UnknownQuestError indicates a key with no catalog entry.
type UnknownQuestError struct {
	Key string
}

func (e UnknownQuestError) Error() string {
	return fmt.Sprintf("unknown quest %q", e.Key)
}

// UnknownItemError indicates a store key with no catalog entry.
type UnknownItemError struct {
	Key string
}

func (e UnknownItemError) Error() string {
	return fmt.Sprintf("unknown store item %q", e.Key)
}

// AlreadyCompletedError indicates a quest completed twice in one day.
type AlreadyCompletedError struct {
	QuestKey string
	Day      string
}

func (e AlreadyCompletedError) Error() string {
	return fmt.Sprintf("quest %q already completed on %s", e.QuestKey, e.Day)
}

// NotCompletedError indicates an undo for a quest with no completion today.
type NotCompletedError struct {
	QuestKey string
	Day      string
}

func (e NotCompletedError) Error() string {
	return fmt.Sprintf("quest %q has no completion on %s to undo", e.QuestKey, e.Day)
}

// FractionError indicates a completion fraction outside (0, 1].
type FractionError struct {
	Fraction float64
}

func (e FractionError) Error() string {
	return fmt.Sprintf("completion fraction must be in (0, 1], got %g", e.Fraction)
}
