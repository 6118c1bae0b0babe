package engine

import (
	"math"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/storage"
)

const (
	// BaseXP and XPMultiplier define the threshold curve:
	// xp_to_next = floor(BaseXP * level^XPMultiplier).
	BaseXP       = 1000
	XPMultiplier = 1.5

	// SkillPointsPerLevel is granted on every level gained.
	SkillPointsPerLevel = 5

	// PenaltyGold is deducted when a mandatory quest was missed the
	// previous day. Gold is clamped at 0 after the deduction.
	PenaltyGold = 20
)

// XPToNextLevel returns the xp threshold to advance past the given level.
func XPToNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(BaseXP * math.Pow(float64(level), XPMultiplier)))
}

// LevelUpResult summarizes one run of the level-up cascade.
type LevelUpResult struct {
	Levels            int
	LevelAfter        int
	SkillPointsGained int
}

// ApplyLevelUps converts surplus xp into level gains. It loops so a single
// large reward can cross several thresholds; remainder xp carries forward.
// Terminates because thresholds are strictly positive and grow with level.
func ApplyLevelUps(h *storage.Hunter) LevelUpResult {
	var res LevelUpResult
	for h.XP >= h.XPToNext {
		h.XP -= h.XPToNext
		h.Level++
		h.XPToNext = XPToNextLevel(h.Level)
		h.SkillPoints += SkillPointsPerLevel
		res.Levels++
	}
	res.LevelAfter = h.Level
	res.SkillPointsGained = res.Levels * SkillPointsPerLevel
	return res
}

// addStat maps a stat key onto the hunter's stat columns.
func addStat(h *storage.Hunter, k StatKey, delta int) {
	switch k {
	case StatSTR:
		h.StatStr += delta
	case StatINT:
		h.StatInt += delta
	case StatWIL:
		h.StatWil += delta
	case StatFIN:
		h.StatFin += delta
	case StatCHA:
		h.StatCha += delta
	}
}
