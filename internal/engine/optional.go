package engine

import (
	"sort"

	"github.com/piwi3910/panelcut/internal/model"
)

// wasteRatioThreshold gates the optional-item pass: filling is only
// attempted when leftover usable area exceeds this share of the total.
// Fixed policy, not a per-request parameter.
const wasteRatioThreshold = 0.08

// placeOptionalItems runs the filler pass once, after required placement has
// finished for every panel type. It reuses the placement scoring but is
// restricted to already-open instances: optional items never open a new
// panel, and an item that fits nowhere is silently skipped. Returns the ids
// placed, in attempt order.
func placeOptionalItems(req model.Request, packs []*typePack) []string {
	var totalUsable, totalUsed float64
	for _, p := range packs {
		for _, inst := range p.instances {
			totalUsable += p.pt.UsableArea()
			for _, pl := range inst.placements {
				totalUsed += pl.Area()
			}
		}
	}
	if totalUsable <= 0 {
		return nil
	}
	if (totalUsable-totalUsed)/totalUsable <= wasteRatioThreshold {
		return nil
	}

	var used []string
	for _, p := range packs {
		opts := append([]model.OptionalItem(nil), p.pt.OptionalItems...)
		sort.SliceStable(opts, func(i, j int) bool {
			if opts[i].Priority != opts[j].Priority {
				return opts[i].Priority > opts[j].Priority
			}
			return opts[i].ID < opts[j].ID
		})

		for _, opt := range opts {
			unit := model.Item{
				ID:        opt.ID,
				Width:     opt.Width,
				Height:    opt.Height,
				Quantity:  1,
				CanRotate: opt.CanRotate,
			}
			if seated := p.tryPlace(unit, p.instances); seated != nil {
				seated.optionalIDs = append(seated.optionalIDs, opt.ID)
				used = append(used, opt.ID)
			}
		}
	}
	return used
}
