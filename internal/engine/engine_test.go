package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/storage"
)

func newTestService(t *testing.T, opts Options) (*Service, func()) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")
	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	if opts.HunterName == "" {
		opts.HunterName = "Hunter"
	}
	svc := NewService(db, DefaultCatalog(), opts)
	cleanup := func() {
		_ = db.Close()
	}
	return svc, cleanup
}

func mustHunter(t *testing.T, svc *Service) *storage.Hunter {
	t.Helper()
	h, err := svc.Hunter(context.Background())
	if err != nil {
		t.Fatalf("get hunter: %v", err)
	}
	return h
}

func updateHunter(t *testing.T, svc *Service, mutate func(h *storage.Hunter)) {
	t.Helper()
	h := mustHunter(t, svc)
	mutate(h)
	if err := svc.HunterRepo().Update(context.Background(), h); err != nil {
		t.Fatalf("update hunter: %v", err)
	}
}

func day(t *testing.T, iso string) time.Time {
	t.Helper()
	d, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		t.Fatalf("parse day %q: %v", iso, err)
	}
	return d
}

func TestXPToNextLevelCurve(t *testing.T) {
	cases := []struct {
		level int
		want  int
	}{
		{1, 1000},
		{2, 2828},
		{3, 5196},
		{4, 8000},
	}
	for _, c := range cases {
		if got := XPToNextLevel(c.level); got != c.want {
			t.Errorf("XPToNextLevel(%d)=%d, want %d", c.level, got, c.want)
		}
	}
}

func TestLevelUpCascadeConservation(t *testing.T) {
	h := &storage.Hunter{Level: 1, XP: 0, XPToNext: XPToNextLevel(1)}
	h.XP = 12_345

	before := h.XP
	var spent int
	level := h.Level
	// Replay the thresholds the cascade will cross.
	for rem := before; rem >= XPToNextLevel(level); level++ {
		spent += XPToNextLevel(level)
		rem -= XPToNextLevel(level)
	}

	res := ApplyLevelUps(h)

	if h.XP >= h.XPToNext {
		t.Fatalf("xp %d not below threshold %d after cascade", h.XP, h.XPToNext)
	}
	if spent+h.XP != before {
		t.Fatalf("xp not conserved: spent %d + remainder %d != %d", spent, h.XP, before)
	}
	if res.Levels != h.Level-1 {
		t.Fatalf("levels gained %d, want %d", res.Levels, h.Level-1)
	}
	if h.SkillPoints != res.Levels*SkillPointsPerLevel {
		t.Fatalf("skill points %d, want %d", h.SkillPoints, res.Levels*SkillPointsPerLevel)
	}
}

func TestCompleteQuestLevelUpScenario(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.StartDay(ctx, day(t, "2024-01-03")); err != nil {
		t.Fatalf("start day: %v", err)
	}
	updateHunter(t, svc, func(h *storage.Hunter) {
		h.XP = 950
	})

	// ai_course_1 is worth 200 xp.
	res, err := svc.CompleteQuest(ctx, "ai_course_1", 1.0)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !res.LevelUp || res.LevelAfter != 2 {
		t.Fatalf("expected level up to 2, got %+v", res)
	}
	if res.SkillPointsGained != 5 {
		t.Fatalf("skill points gained %d, want 5", res.SkillPointsGained)
	}

	h := mustHunter(t, svc)
	if h.Level != 2 || h.XP != 150 || h.XPToNext != 2828 || h.SkillPoints != 5 {
		t.Fatalf("hunter after level up: level=%d xp=%d next=%d sp=%d", h.Level, h.XP, h.XPToNext, h.SkillPoints)
	}
}

func TestCompleteQuestFractions(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.StartDay(ctx, day(t, "2024-01-03")); err != nil {
		t.Fatalf("start day: %v", err)
	}

	// Full completion pays the listed reward exactly.
	res, err := svc.CompleteQuest(ctx, "gym_morning", 1.0)
	if err != nil {
		t.Fatalf("complete full: %v", err)
	}
	if res.XPGained != 150 || res.GoldGained != 15 || res.StatGained != 2 {
		t.Fatalf("full reward: %+v", res)
	}
	h := mustHunter(t, svc)
	if h.StatStr != 5+2 {
		t.Fatalf("str=%d, want 7", h.StatStr)
	}

	// Partial completion floors each component.
	res, err = svc.CompleteQuest(ctx, "tickets", 0.5)
	if err != nil {
		t.Fatalf("complete partial: %v", err)
	}
	if res.XPGained != 50 || res.GoldGained != 5 {
		t.Fatalf("partial reward: %+v", res)
	}

	// A fraction too small to round a 1-point bonus up leaves the stat alone.
	intBefore := mustHunter(t, svc).StatInt
	res, err = svc.CompleteQuest(ctx, "meditation", 0.5)
	if err != nil {
		t.Fatalf("complete small: %v", err)
	}
	if res.StatGained != 0 {
		t.Fatalf("stat gained %d, want 0", res.StatGained)
	}
	if got := mustHunter(t, svc).StatInt; got != intBefore {
		t.Fatalf("intel mutated on zero gain: %d -> %d", intBefore, got)
	}

	// Zero and out-of-range fractions are rejected outright.
	var fe FractionError
	if _, err := svc.CompleteQuest(ctx, "hydration", 0); !errors.As(err, &fe) {
		t.Fatalf("fraction 0: got %v, want FractionError", err)
	}
	if _, err := svc.CompleteQuest(ctx, "hydration", 1.5); !errors.As(err, &fe) {
		t.Fatalf("fraction 1.5: got %v, want FractionError", err)
	}
}

func TestDoubleCompletionRejected(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.StartDay(ctx, day(t, "2024-01-03")); err != nil {
		t.Fatalf("start day: %v", err)
	}
	if _, err := svc.CompleteQuest(ctx, "hydration", 1.0); err != nil {
		t.Fatalf("first completion: %v", err)
	}

	var ace AlreadyCompletedError
	_, err := svc.CompleteQuest(ctx, "hydration", 0.3)
	if !errors.As(err, &ace) {
		t.Fatalf("second completion: got %v, want AlreadyCompletedError", err)
	}

	keys, err := svc.CompletedToday(ctx)
	if err != nil {
		t.Fatalf("completed today: %v", err)
	}
	if len(keys) != 1 || keys[0] != "hydration" {
		t.Fatalf("completed set %v, want [hydration]", keys)
	}
}

func TestUndoRestoresExactly(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.StartDay(ctx, day(t, "2024-01-03")); err != nil {
		t.Fatalf("start day: %v", err)
	}
	before := mustHunter(t, svc)

	if _, err := svc.CompleteQuest(ctx, "gym_morning", 0.7); err != nil {
		t.Fatalf("complete: %v", err)
	}
	res, err := svc.UndoQuest(ctx, "gym_morning")
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if res.XPDeducted != 105 || res.GoldDeducted != 10 {
		t.Fatalf("undo amounts: %+v", res)
	}

	after := mustHunter(t, svc)
	if after.XP != before.XP || after.Gold != before.Gold || after.StatStr != before.StatStr {
		t.Fatalf("undo did not restore: before xp=%d gold=%d str=%d, after xp=%d gold=%d str=%d",
			before.XP, before.Gold, before.StatStr, after.XP, after.Gold, after.StatStr)
	}

	keys, err := svc.CompletedToday(ctx)
	if err != nil {
		t.Fatalf("completed today: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("completed set %v, want empty", keys)
	}

	// The quest can be completed again after the undo.
	if _, err := svc.CompleteQuest(ctx, "gym_morning", 1.0); err != nil {
		t.Fatalf("re-complete: %v", err)
	}

	var nce NotCompletedError
	if _, err := svc.UndoQuest(ctx, "meditation"); !errors.As(err, &nce) {
		t.Fatalf("undo of uncompleted quest: got %v, want NotCompletedError", err)
	}
}

func TestUndoRefusedAfterLevelUp(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.StartDay(ctx, day(t, "2024-01-03")); err != nil {
		t.Fatalf("start day: %v", err)
	}
	updateHunter(t, svc, func(h *storage.Hunter) {
		h.XP = 950
	})

	res, err := svc.CompleteQuest(ctx, "ai_course_1", 1.0)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !res.LevelUp {
		t.Fatalf("expected a level up")
	}

	if _, err := svc.UndoQuest(ctx, "ai_course_1"); !errors.Is(err, ErrUndoAfterLevelUp) {
		t.Fatalf("undo after level up: got %v, want ErrUndoAfterLevelUp", err)
	}
}

func TestUndoRefusedAfterLevelUpOnLaterQuest(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.StartDay(ctx, day(t, "2024-01-03")); err != nil {
		t.Fatalf("start day: %v", err)
	}
	if _, err := svc.CompleteQuest(ctx, "hydration", 1.0); err != nil {
		t.Fatalf("complete hydration: %v", err)
	}

	updateHunter(t, svc, func(h *storage.Hunter) {
		h.XP = 950
	})
	res, err := svc.CompleteQuest(ctx, "ai_course_1", 1.0)
	if err != nil {
		t.Fatalf("complete ai_course_1: %v", err)
	}
	if !res.LevelUp {
		t.Fatalf("expected a level up")
	}

	// The remainder xp (150) covers hydration's 25 again, but the gained
	// level would survive the subtraction, so the undo is refused.
	if _, err := svc.UndoQuest(ctx, "hydration"); !errors.Is(err, ErrUndoAfterLevelUp) {
		t.Fatalf("undo across level up: got %v, want ErrUndoAfterLevelUp", err)
	}
}

func TestDayBoundaryPenalty(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	// Simulate a prior session on 2024-01-01 with nothing completed and a
	// small gold balance.
	updateHunter(t, svc, func(h *storage.Hunter) {
		h.LastLogin = "2024-01-01"
		h.Gold = 5
	})

	res, err := svc.StartDay(ctx, day(t, "2024-01-03"))
	if err != nil {
		t.Fatalf("start day: %v", err)
	}
	if !res.NewDay || !res.PenaltyApplied {
		t.Fatalf("expected penalty on new day, got %+v", res)
	}
	if res.EndedDay != "2024-01-01" {
		t.Fatalf("ended day %q, want 2024-01-01", res.EndedDay)
	}

	h := mustHunter(t, svc)
	if h.Gold != 0 {
		t.Fatalf("gold=%d, want 0 (floored)", h.Gold)
	}
	if h.LastLogin != "2024-01-03" {
		t.Fatalf("last_login=%q, want 2024-01-03", h.LastLogin)
	}
	keys, err := svc.CompletedToday(ctx)
	if err != nil {
		t.Fatalf("completed today: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("daily set %v, want empty after reset", keys)
	}

	// The ended day was snapshotted into history.
	recs, err := svc.History(ctx, 5)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(recs) != 1 || recs[0].Day != "2024-01-01" {
		t.Fatalf("history %v, want one record for 2024-01-01", recs)
	}
	if recs[0].Gold != 5 {
		t.Fatalf("history gold=%d, want pre-penalty 5", recs[0].Gold)
	}
}

func TestDayBoundaryIdempotent(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	updateHunter(t, svc, func(h *storage.Hunter) {
		h.LastLogin = "2024-01-02"
		h.Gold = 100
	})

	first, err := svc.StartDay(ctx, day(t, "2024-01-03"))
	if err != nil {
		t.Fatalf("first start day: %v", err)
	}
	if !first.PenaltyApplied {
		t.Fatalf("expected penalty on first run")
	}
	goldAfter := mustHunter(t, svc).Gold
	if goldAfter != 80 {
		t.Fatalf("gold=%d, want 80", goldAfter)
	}

	second, err := svc.StartDay(ctx, day(t, "2024-01-03"))
	if err != nil {
		t.Fatalf("second start day: %v", err)
	}
	if second.NewDay || second.PenaltyApplied {
		t.Fatalf("second run mutated state: %+v", second)
	}
	if got := mustHunter(t, svc).Gold; got != goldAfter {
		t.Fatalf("gold changed on repeat run: %d -> %d", goldAfter, got)
	}
}

func TestDayBoundaryNoPenaltyOnFirstSession(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	res, err := svc.StartDay(ctx, day(t, "2024-01-03"))
	if err != nil {
		t.Fatalf("start day: %v", err)
	}
	if !res.NewDay {
		t.Fatalf("expected a new day on first session")
	}
	if res.PenaltyApplied {
		t.Fatalf("penalty applied on first-ever session")
	}
	if got := mustHunter(t, svc).Gold; got != 0 {
		t.Fatalf("gold=%d, want 0 untouched", got)
	}
}

func TestDayBoundaryNoPenaltyWhenMandatoryDone(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.StartDay(ctx, day(t, "2024-01-03")); err != nil {
		t.Fatalf("start day: %v", err)
	}
	for _, k := range svc.Catalog().MandatoryKeys() {
		if _, err := svc.CompleteQuest(ctx, k, 1.0); err != nil {
			t.Fatalf("complete %s: %v", k, err)
		}
	}
	goldBefore := mustHunter(t, svc).Gold

	res, err := svc.StartDay(ctx, day(t, "2024-01-04"))
	if err != nil {
		t.Fatalf("next start day: %v", err)
	}
	if res.PenaltyApplied {
		t.Fatalf("penalty applied although all mandatory quests were done: %+v", res)
	}
	if got := mustHunter(t, svc).Gold; got != goldBefore {
		t.Fatalf("gold changed: %d -> %d", goldBefore, got)
	}

	recs, err := svc.History(ctx, 5)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(recs) != 1 || len(recs[0].CompletedQuests) != len(svc.Catalog().MandatoryKeys()) {
		t.Fatalf("history snapshot %v, want the mandatory keys", recs)
	}
}

func TestPurchase(t *testing.T) {
	svc, cleanup := newTestService(t, Options{StoreWilPenalty: true})
	defer cleanup()
	ctx := context.Background()

	// Broke hunter: no mutation.
	if _, err := svc.Purchase(ctx, "insta"); !errors.Is(err, ErrInsufficientGold) {
		t.Fatalf("broke purchase: got %v, want ErrInsufficientGold", err)
	}
	if got := mustHunter(t, svc).Gold; got != 0 {
		t.Fatalf("gold mutated on failed purchase: %d", got)
	}

	updateHunter(t, svc, func(h *storage.Hunter) {
		h.Gold = 50
	})
	res, err := svc.Purchase(ctx, "insta")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if res.GoldAfter != 35 || !res.WilReduced {
		t.Fatalf("purchase result %+v, want gold 35 and wil reduced", res)
	}
	h := mustHunter(t, svc)
	if h.Gold != 35 || h.StatWil != 4 {
		t.Fatalf("after purchase gold=%d wil=%d, want 35/4", h.Gold, h.StatWil)
	}

	// Willpower never drops below 1.
	updateHunter(t, svc, func(h *storage.Hunter) {
		h.StatWil = 1
		h.Gold = 100
	})
	res, err = svc.Purchase(ctx, "yt")
	if err != nil {
		t.Fatalf("purchase at wil floor: %v", err)
	}
	if res.WilReduced {
		t.Fatalf("wil reduced below floor")
	}
	if got := mustHunter(t, svc).StatWil; got != 1 {
		t.Fatalf("wil=%d, want 1", got)
	}

	var uie UnknownItemError
	if _, err := svc.Purchase(ctx, "nope"); !errors.As(err, &uie) {
		t.Fatalf("unknown item: got %v, want UnknownItemError", err)
	}
}

func TestPurchaseWithoutWilPenalty(t *testing.T) {
	svc, cleanup := newTestService(t, Options{StoreWilPenalty: false})
	defer cleanup()
	ctx := context.Background()

	updateHunter(t, svc, func(h *storage.Hunter) {
		h.Gold = 30
	})
	res, err := svc.Purchase(ctx, "insta")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}
	if res.WilReduced {
		t.Fatalf("wil reduced with policy off")
	}
	if got := mustHunter(t, svc).StatWil; got != 5 {
		t.Fatalf("wil=%d, want untouched 5", got)
	}
}

func TestAllocateSkillPoint(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.AllocateSkillPoint(ctx, StatSTR); !errors.Is(err, ErrNoSkillPoints) {
		t.Fatalf("allocation with zero points: got %v, want ErrNoSkillPoints", err)
	}

	updateHunter(t, svc, func(h *storage.Hunter) {
		h.SkillPoints = 2
	})
	h, err := svc.AllocateSkillPoint(ctx, StatCHA)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if h.StatCha != 6 || h.SkillPoints != 1 {
		t.Fatalf("after allocation cha=%d sp=%d, want 6/1", h.StatCha, h.SkillPoints)
	}

	if _, err := svc.AllocateSkillPoint(ctx, "luck"); err == nil {
		t.Fatalf("expected error for invalid stat")
	}
}

func TestAllocateSkillPointNormalizesKey(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	updateHunter(t, svc, func(h *storage.Hunter) {
		h.SkillPoints = 2
	})

	// Case and whitespace variants resolve to the same stat.
	h, err := svc.AllocateSkillPoint(ctx, " STR ")
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if h.StatStr != 6 || h.SkillPoints != 1 {
		t.Fatalf("after allocation str=%d sp=%d, want 6/1", h.StatStr, h.SkillPoints)
	}

	// A rejected key must not cost a point.
	if _, err := svc.AllocateSkillPoint(ctx, "luck"); err == nil {
		t.Fatalf("expected error for invalid stat")
	}
	h = mustHunter(t, svc)
	if h.SkillPoints != 1 || h.StatStr != 6 {
		t.Fatalf("rejected allocation mutated state: str=%d sp=%d", h.StatStr, h.SkillPoints)
	}
}

func TestWeeklyFocus(t *testing.T) {
	svc, cleanup := newTestService(t, Options{})
	defer cleanup()
	ctx := context.Background()

	if _, err := svc.StartDay(ctx, day(t, "2024-01-03")); err != nil {
		t.Fatalf("start day: %v", err)
	}

	if _, err := svc.LogFocusHours(ctx, 5); err != nil {
		t.Fatalf("log: %v", err)
	}
	if _, err := svc.ClaimFocusReward(ctx); !errors.Is(err, ErrFocusTargetNotReached) {
		t.Fatalf("early claim: got %v, want ErrFocusTargetNotReached", err)
	}

	if _, err := svc.LogFocusHours(ctx, 8.5); err != nil {
		t.Fatalf("log: %v", err)
	}
	res, err := svc.ClaimFocusReward(ctx)
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	quest, _ := svc.Catalog().Get(FocusQuestKey)
	if res.XPGained != quest.XP || res.GoldGained != quest.Gold || res.StatGained != quest.BonusAmount {
		t.Fatalf("claim reward %+v, want full %+v", res, quest)
	}

	h := mustHunter(t, svc)
	if h.WeeklyFocusHours != 0 {
		t.Fatalf("weekly tracker=%g, want reset to 0", h.WeeklyFocusHours)
	}

	// Weekly completions never enter the daily set.
	keys, err := svc.CompletedToday(ctx)
	if err != nil {
		t.Fatalf("completed today: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("daily set %v, want empty", keys)
	}

	// And the weekly quest is not completable through the daily path.
	if _, err := svc.CompleteQuest(ctx, FocusQuestKey, 1.0); err == nil {
		t.Fatalf("expected error completing weekly quest directly")
	}
}
