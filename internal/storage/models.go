package storage

// Hunter is the persisted profile. One row per hunter; in practice there is
// exactly one, keyed by name.
type Hunter struct {
	Name        string
	Rank        string
	Level       int
	XP          int
	XPToNext    int
	Gold        int
	SkillPoints int

	StatStr int
	StatInt int
	StatWil int
	StatFin int
	StatCha int

	// LastLogin is the ISO date (YYYY-MM-DD) of the last session in which
	// the day boundary ran. "2000-01-01" means never.
	LastLogin string

	WeeklyFocusHours float64
}

// QuestCompletion is one logged completion. The set of completions whose Day
// equals the hunter's LastLogin is the current daily completed set.
type QuestCompletion struct {
	ID       int64
	Hunter   string
	QuestKey string
	Day      string
	Fraction float64

	XPAwarded   int
	GoldAwarded int
	StatKey     string
	StatAwarded int

	// Level is the hunter's level when the reward was applied. Zero in rows
	// written before the column existed.
	Level int
}

// HistoryRecord is the end-of-day snapshot written once per day boundary.
type HistoryRecord struct {
	Hunter          string
	Day             string
	CompletedQuests []string
	Level           int
	XP              int
	Gold            int
}
