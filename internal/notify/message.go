package notify

import (
	"fmt"
	"math/rand"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/storage"
)

// Content is one human-readable notification.
type Content struct {
	Title   string
	Message string
	Tags    string
}

// messagePool holds the motivational lines keyed by hour of day.
var messagePool = map[int][]string{
	6: {
		"Creator, your system is active. Arise.",
		"The sun is up, Hunter. The weak are still asleep. This is your chance to get ahead. Gym awaits.",
		"Another day to prove your worth. Don't just build the system, become the system. Let's start with STR.",
	},
	14: {
		"Creator, do not let progress stagnate. Log your quests.",
		"Data is everything. Without logs, progress is just a feeling. I need data. Update your status now.",
		"Don't break the chain. Every quest you log today strengthens the habit for tomorrow. Submit your progress.",
	},
}

// ForHour picks a motivational message for the given hour, if any is
// scheduled then.
func ForHour(hour int, rng *rand.Rand) (Content, bool) {
	pool, ok := messagePool[hour]
	if !ok {
		return Content{}, false
	}
	var title string
	switch hour {
	case 6:
		title = "⏰ The Grind Begins"
	case 14:
		title = "📝 Afternoon Status Report"
	default:
		title = "System Notification"
	}
	return Content{
		Title:   title,
		Message: pool[rng.Intn(len(pool))],
		Tags:    "tada",
	}, true
}

// EODReport composes the end-of-day summary from the profile and the count
// of quests completed in the current day window.
func EODReport(day string, h *storage.Hunter, completedCount, totalQuests int) Content {
	body := fmt.Sprintf(
		"Quests Completed Today: %d/%d\n"+
			"Current Level: %d\n"+
			"XP Progress: %d/%d\n"+
			"Final Gold: %d G\n\n"+
			"Report generated automatically. Your efforts have been recorded. Rest and prepare for tomorrow's ascent.",
		completedCount, totalQuests, h.Level, h.XP, h.XPToNext, h.Gold,
	)
	return Content{
		Title:   fmt.Sprintf("👑 MONARCH'S EOD REPORT: %s 👑", day),
		Message: body,
		Tags:    "crown",
	}
}
