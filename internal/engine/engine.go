// Package engine implements the panel packing core: a deterministic
// best-fit-decreasing heuristic with per-sheet free-region bookkeeping,
// a waste-gated optional-item pass, and leftover reporting.
package engine

import (
	"sync"

	"github.com/piwi3910/panelcut/internal/model"
)

// Optimizer runs the 2D bin-packing algorithm for one request. It holds no
// state across requests; independent requests may run concurrently.
type Optimizer struct {
	req model.Request
}

// New validates the request and builds an optimizer instance.
func New(req model.Request) (*Optimizer, error) {
	if err := validate(req); err != nil {
		return nil, err
	}
	return &Optimizer{req: req}, nil
}

// Optimize packs all required items, runs the optional-item filler, and
// returns the layouts with their summary. Panel types share no state, so
// they are packed concurrently; the tie-break rules keep the output
// identical to a sequential run.
func (o *Optimizer) Optimize() (model.Result, error) {
	packs := make([]*typePack, len(o.req.PanelTypes))
	errs := make([]error, len(o.req.PanelTypes))

	var wg sync.WaitGroup
	for i := range o.req.PanelTypes {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			packs[i], errs[i] = packPanelType(o.req.PanelTypes[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return model.Result{}, err
		}
	}

	optionalUsed := placeOptionalItems(o.req, packs)
	return buildResult(packs, optionalUsed), nil
}

// typePack is the in-flight packing state for one panel type.
type typePack struct {
	pt        model.PanelType
	instances []*instance
}

// instance is one opened sheet: its free regions plus everything seated on it.
type instance struct {
	number      int
	tracker     regionTracker
	placements  []model.Placement
	optionalIDs []string
}

// packPanelType consumes the demand sequence strictly in order. Each
// placement mutates the free-region state the next placement scores against,
// so units of one panel type are never reordered or parallelized.
func packPanelType(pt model.PanelType) (*typePack, error) {
	p := &typePack{pt: pt}
	for _, unit := range demandSequence(pt) {
		if p.tryPlace(unit, p.instances) != nil {
			continue
		}
		if err := p.openAndPlace(unit); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// candidate is one feasible (instance, region, orientation) choice.
type candidate struct {
	inst     *instance
	region   int
	width    float64
	height   float64
	rotated  bool
	leftover float64
	shape    float64
}

// better reports whether a beats b: smallest leftover area first, then the
// residual-shape rule. Instance and region order ties are resolved by scan
// order, so a candidate found later must be strictly better to win.
func better(a, b candidate) bool {
	if a.leftover < b.leftover-eps {
		return true
	}
	if a.leftover > b.leftover+eps {
		return false
	}
	return a.shape > b.shape+eps
}

// tryPlace scans the given instances in panel-number order and their regions
// in creation order, commits the best-scoring feasible placement, and
// returns the instance that received the unit, or nil.
func (p *typePack) tryPlace(unit model.Item, insts []*instance) *instance {
	var best candidate
	found := false

	consider := func(inst *instance, idx int, r freeRegion, w, h float64, rotated bool) {
		c := candidate{
			inst:     inst,
			region:   idx,
			width:    w,
			height:   h,
			rotated:  rotated,
			leftover: r.area() - w*h,
			shape:    shapeScore(r, w, h),
		}
		if !found || better(c, best) {
			best = c
			found = true
		}
	}

	for _, inst := range insts {
		for idx, r := range inst.tracker.regions {
			if fits(unit.Width, unit.Height, r) {
				consider(inst, idx, r, unit.Width, unit.Height, false)
			}
			if unit.CanRotate && unit.Width != unit.Height && fits(unit.Height, unit.Width, r) {
				consider(inst, idx, r, unit.Height, unit.Width, true)
			}
		}
	}

	if !found {
		return nil
	}

	r := best.inst.tracker.regions[best.region]
	best.inst.placements = append(best.inst.placements, model.Placement{
		ItemID:  unit.ID,
		X:       r.x,
		Y:       r.y,
		Width:   best.width,
		Height:  best.height,
		Rotated: best.rotated,
	})
	best.inst.tracker.place(best.region, best.width, best.height)
	return best.inst
}

// openAndPlace opens the next panel instance and seats the unit on it. A
// unit that cannot fit a fresh, empty usable rectangle in any allowed
// orientation fails the whole request.
func (p *typePack) openAndPlace(unit model.Item) error {
	uw, uh := p.pt.UsableWidth(), p.pt.UsableHeight()
	fitsNormal := unit.Width <= uw+eps && unit.Height <= uh+eps
	fitsRotated := unit.CanRotate && unit.Height <= uw+eps && unit.Width <= uh+eps
	if !fitsNormal && !fitsRotated {
		return &model.ItemExceedsPanelError{PanelTypeID: p.pt.ID, ItemID: unit.ID}
	}

	inst := &instance{
		number:  len(p.instances) + 1,
		tracker: newRegionTracker(uw, uh),
	}
	p.instances = append(p.instances, inst)
	p.tryPlace(unit, []*instance{inst})
	return nil
}
