package engine

// DefaultCatalog is the built-in daily quest list plus the weekly deep-focus
// quest. A TOML catalog file replaces it wholesale when configured.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]Quest{
		// Morning rituals
		{Key: "wake_early", Name: "Wake Up by 6:00 AM (Rise & Shine)", XP: 40, Gold: 4, BonusStat: StatWIL, BonusAmount: 1, Mandatory: true},
		{Key: "gym_morning", Name: "Gym Workout (6:30-8:00 AM)", XP: 150, Gold: 15, BonusStat: StatSTR, BonusAmount: 2},
		{Key: "meditation", Name: "Meditate for 5-10 Minutes", XP: 30, Gold: 3, BonusStat: StatINT, BonusAmount: 1},
		{Key: "breakfast_1", Name: "Eat Proper Breakfast (Protein + Fiber)", XP: 35, Gold: 3, BonusStat: StatSTR, BonusAmount: 1},

		// Work quests
		{Key: "server_check", Name: "Daily System Check (Servers @ 9 AM)", XP: 20, Gold: 2, BonusStat: StatWIL, BonusAmount: 1},
		{Key: "ai_course_1", Name: "AI Course Study (10-11 AM)", XP: 200, Gold: 20, BonusStat: StatINT, BonusAmount: 2, Mandatory: true},
		{Key: "tickets", Name: "Resolve Assigned Tickets (11-12 PM)", XP: 100, Gold: 10, BonusStat: StatINT, BonusAmount: 1},
		{Key: "breakfast_2", Name: "Eat Healthy Lunch", XP: 35, Gold: 3, BonusStat: StatSTR, BonusAmount: 1},
		{Key: "hydration", Name: "Drink 3-4 Liters of Water", XP: 25, Gold: 2, BonusStat: StatSTR, BonusAmount: 1},
		{Key: "ai_course_2", Name: "AI Course Study (4-5 PM)", XP: 200, Gold: 20, BonusStat: StatINT, BonusAmount: 2},

		// Evening rituals
		{Key: "walk_night", Name: "Night Walk (9-10 PM)", XP: 50, Gold: 5, BonusStat: StatWIL, BonusAmount: 1},
		{Key: "standup", Name: "Daily Progress Report (Stand-up @ 8:30 PM)", XP: 30, Gold: 3, BonusStat: StatCHA, BonusAmount: 1, Mandatory: true},

		// Bonus quests
		{Key: "gratitude_journal", Name: "Write 3 Gratitude Points", XP: 20, Gold: 2, BonusStat: StatWIL, BonusAmount: 1},
		{Key: "binaural_beats", Name: "Listen to 40Hz Gamma Beats (30 mins)", XP: 30, Gold: 3, BonusStat: StatINT, BonusAmount: 1},
		{Key: "posture_check", Name: "Correct Sitting Posture (Ergo Boost)", XP: 15, Gold: 1, BonusStat: StatSTR, BonusAmount: 1},
		{Key: "no_doomscrolling", Name: "Avoid Doomscrolling (Digital Discipline)", XP: 25, Gold: 2, BonusStat: StatWIL, BonusAmount: 1},
		{Key: "send_meme", Name: "Send a Dank Meme to a Friend", XP: 10, Gold: 1, BonusStat: StatCHA, BonusAmount: 1},

		// Weekly
		{Key: FocusQuestKey, Name: "Weekly Deep Focus (Forest, 8h)", XP: 250, Gold: 25, BonusStat: StatINT, BonusAmount: 2, Weekly: true},
	})
	if err != nil {
		panic("default catalog: " + err.Error())
	}
	return c
}

// StoreItem is a flavor reward purchasable with gold.
type StoreItem struct {
	Key  string
	Name string
	Cost int
}

// DefaultStoreItems lists the built-in store catalog in display order.
func DefaultStoreItems() []StoreItem {
	return []StoreItem{
		{Key: "insta", Name: "15 Min of Instagram", Cost: 15},
		{Key: "yt", Name: "30 Mins YouTube", Cost: 25},
		{Key: "tv", Name: "1 Episode of a TV Show", Cost: 30},
		{Key: "junk", Name: "Order Junk Food", Cost: 100},
	}
}
