package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/panelcut/internal/model"
)

// validate rejects malformed requests before any placement begins. Errors
// name the offending field.
func validate(req model.Request) error {
	if len(req.PanelTypes) == 0 {
		return &model.InvalidInputError{Field: "panel_types", Reason: "at least one panel type must be provided"}
	}

	typeIDs := make(map[string]bool)
	for _, pt := range req.PanelTypes {
		if pt.ID == "" {
			return &model.InvalidInputError{Field: "panel_types[].id", Reason: "must not be empty"}
		}
		if typeIDs[pt.ID] {
			return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].id", pt.ID), Reason: "duplicate panel type id"}
		}
		typeIDs[pt.ID] = true

		if pt.Width <= 0 {
			return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].width", pt.ID), Reason: "must be positive"}
		}
		if pt.Height <= 0 {
			return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].height", pt.ID), Reason: "must be positive"}
		}
		if pt.Trimming < 0 {
			return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].trimming", pt.ID), Reason: "must not be negative"}
		}
		minSide := pt.Width
		if pt.Height < minSide {
			minSide = pt.Height
		}
		if 2*pt.Trimming >= minSide {
			return &model.PanelTooSmallForTrimmingError{PanelTypeID: pt.ID, Trimming: pt.Trimming}
		}

		itemIDs := make(map[string]bool)
		for _, it := range pt.Items {
			if it.ID == "" {
				return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].items[].id", pt.ID), Reason: "must not be empty"}
			}
			if itemIDs[it.ID] {
				return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].items[%s].id", pt.ID, it.ID), Reason: "duplicate item id"}
			}
			itemIDs[it.ID] = true
			if it.Width <= 0 {
				return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].items[%s].width", pt.ID, it.ID), Reason: "must be positive"}
			}
			if it.Height <= 0 {
				return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].items[%s].height", pt.ID, it.ID), Reason: "must be positive"}
			}
			if it.Quantity < 1 {
				return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].items[%s].quantity", pt.ID, it.ID), Reason: "must be at least 1"}
			}
		}

		for _, opt := range pt.OptionalItems {
			if opt.ID == "" {
				return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].optional_items[].id", pt.ID), Reason: "must not be empty"}
			}
			if itemIDs[opt.ID] {
				return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].optional_items[%s].id", pt.ID, opt.ID), Reason: "duplicate item id"}
			}
			itemIDs[opt.ID] = true
			if opt.Width <= 0 {
				return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].optional_items[%s].width", pt.ID, opt.ID), Reason: "must be positive"}
			}
			if opt.Height <= 0 {
				return &model.InvalidInputError{Field: fmt.Sprintf("panel_types[%s].optional_items[%s].height", pt.ID, opt.ID), Reason: "must be positive"}
			}
		}
	}
	return nil
}

// demandSequence expands the required items of a panel type into one entry
// per unit, ordered by decreasing area, then decreasing max side, then item
// id. This ordering seeds the best-fit-decreasing pass and is part of the
// determinism contract.
func demandSequence(pt model.PanelType) []model.Item {
	var units []model.Item
	for _, it := range pt.Items {
		for n := 0; n < it.Quantity; n++ {
			u := it
			u.Quantity = 1
			units = append(units, u)
		}
	}

	sort.SliceStable(units, func(i, j int) bool {
		ai, aj := units[i].Area(), units[j].Area()
		if ai != aj {
			return ai > aj
		}
		mi, mj := units[i].MaxSide(), units[j].MaxSide()
		if mi != mj {
			return mi > mj
		}
		return units[i].ID < units[j].ID
	})
	return units
}
