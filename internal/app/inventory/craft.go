package inventory

import (
	"context"
	"sort"

	"github.com/HamletSargsyan/livebot/internal/app/ports"
	"github.com/HamletSargsyan/livebot/internal/domain/items"
	"github.com/HamletSargsyan/livebot/internal/domain/player"
)

type Resource struct {
	Item      string `json:"item"`
	Required  int64  `json:"required"`
	Available int64  `json:"available"`
}

type CraftOption struct {
	Item      string     `json:"item"`
	Resources []Resource `json:"resources"`
}

type CraftResult struct {
	Item     string  `json:"item"`
	Quantity int64   `json:"quantity"`
	XP       float64 `json:"xp"`
	Bonus    bool    `json:"bonus"`
}

func (s Service) holdings(ctx context.Context, owner int64) (map[string]int64, error) {
	all, err := s.Repo.GetAll(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(all))
	for _, e := range all {
		out[e.Name] += e.Units()
	}
	return out, nil
}

func sortedIngredients(recipe map[string]int64) []string {
	names := make([]string, 0, len(recipe))
	for name := range recipe {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableCrafts lists every recipe the owner can make at least once,
// largest held ingredient stack first.
func (s Service) AvailableCrafts(ctx context.Context, owner int64) ([]CraftOption, error) {
	held, err := s.holdings(ctx, owner)
	if err != nil {
		return nil, err
	}
	out := make([]CraftOption, 0)
	for _, it := range items.Filter(items.Item.Craftable) {
		opt := CraftOption{Item: it.Name}
		ok := true
		for _, name := range sortedIngredients(it.Craft) {
			need := it.Craft[name]
			if held[name] <= 0 || held[name] < need {
				ok = false
				break
			}
			opt.Resources = append(opt.Resources, Resource{Item: name, Required: need, Available: held[name]})
		}
		if ok {
			out = append(out, opt)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return maxAvailable(out[i]) > maxAvailable(out[j])
	})
	return out, nil
}

func maxAvailable(o CraftOption) int64 {
	var m int64
	for _, r := range o.Resources {
		if r.Available > m {
			m = r.Available
		}
	}
	return m
}

// Craft makes times units of name for p. Every ingredient is verified before
// any is consumed, so a rejected craft leaves the inventory untouched.
// The experience gain is applied to p; persisting p is the caller's job.
func (s Service) Craft(ctx context.Context, r ports.Rand, p *player.Player, name string, times int64) (CraftResult, error) {
	it, err := storable(name)
	if err != nil {
		return CraftResult{}, err
	}
	if !it.Craftable() {
		return CraftResult{}, &InvalidItemError{Item: it.Name, Reason: "cannot be crafted"}
	}
	if times < 1 {
		return CraftResult{}, &InvalidItemError{Item: it.Name, Reason: "craft count must be positive"}
	}

	held, err := s.holdings(ctx, p.ID)
	if err != nil {
		return CraftResult{}, err
	}
	ingredients := sortedIngredients(it.Craft)
	for _, ing := range ingredients {
		need := it.Craft[ing] * times
		if held[ing] < need {
			return CraftResult{}, &InsufficientItemError{Item: ing, Required: need, Available: held[ing]}
		}
	}

	for _, ing := range ingredients {
		if err := s.RemoveByName(ctx, p.ID, ing, it.Craft[ing]*times); err != nil {
			return CraftResult{}, err
		}
	}
	if err := s.AddByName(ctx, p.ID, it.Name, times); err != nil {
		return CraftResult{}, err
	}

	res := CraftResult{
		Item:     it.Name,
		Quantity: times,
		XP:       items.RandUniform(r, 1, 3) * float64(times),
	}
	if items.RandRange(r, 1, 100) < p.Luck {
		res.XP += items.RandUniform(r, 2, 5)
		res.Bonus = true
	}
	p.Progress.XP += res.XP
	return res, nil
}
