package engine

import "github.com/piwi3910/panelcut/internal/model"

// buildResult converts the final packing state into the reported layouts and
// aggregate summary. Areas are expressed in usable (post-trim) terms.
func buildResult(packs []*typePack, optionalUsed []string) model.Result {
	result := model.Result{
		Summary: model.Summary{
			PanelsUsed:        make(map[string]int),
			OptionalItemsUsed: optionalUsed,
		},
	}

	for _, p := range packs {
		for _, inst := range p.instances {
			pi := model.PanelInstance{
				PanelTypeID:       p.pt.ID,
				PanelNumber:       inst.number,
				UsableWidth:       p.pt.UsableWidth(),
				UsableHeight:      p.pt.UsableHeight(),
				Placements:        inst.placements,
				UnusedAreas:       reportUnusedAreas(inst.tracker.regions),
				OptionalItemsUsed: inst.optionalIDs,
			}
			result.Panels = append(result.Panels, pi)
			result.Summary.TotalPanels++
			result.Summary.PanelsUsed[p.pt.ID]++
			result.Summary.TotalArea += pi.UsableArea()
			result.Summary.UsedArea += pi.UsedArea()
		}
	}

	result.Summary.WasteArea = result.Summary.TotalArea - result.Summary.UsedArea
	if result.Summary.TotalArea > 0 {
		result.Summary.WastePercentage = result.Summary.WasteArea / result.Summary.TotalArea * 100.0
	}
	return result
}

// reportUnusedAreas groups the final free regions into connected leftover
// islands and emits only the largest rectangle of each island. Where an
// island spans several adjacent regions (an L-shape and the like), the
// remainder is deliberately discarded, so reported waste can understate the
// true leftover area.
func reportUnusedAreas(regions []freeRegion) []model.UnusedArea {
	if len(regions) == 0 {
		return nil
	}

	parent := make([]int, len(regions))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		if parent[i] != i {
			parent[i] = find(parent[i])
		}
		return parent[i]
	}
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			if touches(regions[i], regions[j]) {
				parent[find(i)] = find(j)
			}
		}
	}

	// Largest region per island; earlier creation order wins ties.
	largest := make(map[int]int)
	for i, r := range regions {
		root := find(i)
		best, ok := largest[root]
		if !ok || r.area() > regions[best].area()+eps {
			largest[root] = i
		}
	}

	var areas []model.UnusedArea
	for i, r := range regions {
		if largest[find(i)] != i {
			continue
		}
		areas = append(areas, model.UnusedArea{X: r.x, Y: r.y, Width: r.w, Height: r.h})
	}
	return areas
}

// touches reports whether the closures of two regions intersect, i.e. the
// regions share at least an edge segment or a corner.
func touches(a, b freeRegion) bool {
	return a.x <= b.x+b.w+eps && b.x <= a.x+a.w+eps &&
		a.y <= b.y+b.h+eps && b.y <= a.y+a.h+eps
}
