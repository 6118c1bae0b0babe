package engine

import (
	"context"

	"github.com/jagadeshaidev-lab/solo-leveling-game/internal/storage"
)

// PurchaseResult reports a store purchase.
type PurchaseResult struct {
	Item       StoreItem
	GoldAfter  int
	WilReduced bool
}

// Purchase exchanges gold for a store item. Fails without mutation when the
// hunter cannot afford it. With the willpower-penalty policy on, each
// purchase costs 1 WIL, floored at 1.
func (s *Service) Purchase(ctx context.Context, itemKey string) (*PurchaseResult, error) {
	var item *StoreItem
	for i := range s.items {
		if s.items[i].Key == itemKey {
			item = &s.items[i]
			break
		}
	}
	if item == nil {
		return nil, UnknownItemError{Key: itemKey}
	}

	h, err := s.Hunter(ctx)
	if err != nil {
		return nil, err
	}
	if h.Gold < item.Cost {
		return nil, ErrInsufficientGold
	}

	h.Gold -= item.Cost
	res := &PurchaseResult{Item: *item}
	if s.opts.StoreWilPenalty && h.StatWil > 1 {
		h.StatWil--
		res.WilReduced = true
	}
	res.GoldAfter = h.Gold

	if err := s.hunters.Update(ctx, h); err != nil {
		return nil, err
	}
	return res, nil
}

// AllocateSkillPoint spends one skill point on the given stat. No upper
// bound on any stat.
func (s *Service) AllocateSkillPoint(ctx context.Context, stat StatKey) (*storage.Hunter, error) {
	stat, err := ParseStatKey(string(stat))
	if err != nil {
		return nil, err
	}

	h, err := s.Hunter(ctx)
	if err != nil {
		return nil, err
	}
	if h.SkillPoints <= 0 {
		return nil, ErrNoSkillPoints
	}

	addStat(h, stat, 1)
	h.SkillPoints--

	if err := s.hunters.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}
