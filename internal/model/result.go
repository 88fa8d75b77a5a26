package model

// Placement is a single piece seated on a panel instance. Coordinates are
// relative to the usable (post-trim) origin; Width and Height are the seated
// dimensions, already swapped when Rotated is true.
type Placement struct {
	ItemID  string  `json:"item_id" yaml:"item_id"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Width   float64 `json:"width" yaml:"width"`
	Height  float64 `json:"height" yaml:"height"`
	Rotated bool    `json:"rotated" yaml:"rotated"`
}

// Area returns the area consumed by the placement.
func (p Placement) Area() float64 {
	return p.Width * p.Height
}

// UnusedArea is a reported leftover rectangle on a panel instance, relative
// to the usable origin. Reported areas are pairwise non-overlapping but do
// not necessarily cover all true leftover space.
type UnusedArea struct {
	X      float64 `json:"x" yaml:"x"`
	Y      float64 `json:"y" yaml:"y"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// PanelInstance is one opened physical sheet of a panel type. Panel numbers
// are contiguous per panel type, starting at 1.
type PanelInstance struct {
	PanelTypeID       string       `json:"panel_type_id" yaml:"panel_type_id"`
	PanelNumber       int          `json:"panel_number" yaml:"panel_number"`
	UsableWidth       float64      `json:"usable_width" yaml:"usable_width"`
	UsableHeight      float64      `json:"usable_height" yaml:"usable_height"`
	Placements        []Placement  `json:"placements" yaml:"placements"`
	UnusedAreas       []UnusedArea `json:"unused_areas" yaml:"unused_areas"`
	OptionalItemsUsed []string     `json:"optional_items_used,omitempty" yaml:"optional_items_used,omitempty"`
}

// UsableArea returns the placeable area of this instance.
func (pi PanelInstance) UsableArea() float64 {
	return pi.UsableWidth * pi.UsableHeight
}

// UsedArea returns the total area covered by placements.
func (pi PanelInstance) UsedArea() float64 {
	var total float64
	for _, p := range pi.Placements {
		total += p.Area()
	}
	return total
}

// Summary aggregates utilization statistics over all opened instances.
// Areas are expressed in usable (post-trim) terms so that WastePercentage
// matches the ratio the optional-item gate is computed against.
type Summary struct {
	TotalPanels       int            `json:"total_panels" yaml:"total_panels"`
	PanelsUsed        map[string]int `json:"panels_used" yaml:"panels_used"` // per panel type id
	TotalArea         float64        `json:"total_area" yaml:"total_area"`
	UsedArea          float64        `json:"used_area" yaml:"used_area"`
	WasteArea         float64        `json:"waste_area" yaml:"waste_area"`
	WastePercentage   float64        `json:"waste_percentage" yaml:"waste_percentage"`
	OptionalItemsUsed []string       `json:"optional_items_used,omitempty" yaml:"optional_items_used,omitempty"`
}

// Result holds the full packing solution.
type Result struct {
	Panels  []PanelInstance `json:"panels" yaml:"panels"`
	Summary Summary         `json:"summary" yaml:"summary"`
}
