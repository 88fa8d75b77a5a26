package model

import "github.com/google/uuid"

// Item represents a required piece to be cut from a panel.
type Item struct {
	ID        string  `json:"id" yaml:"id"`
	Width     float64 `json:"width" yaml:"width"`   // mm
	Height    float64 `json:"height" yaml:"height"` // mm
	Quantity  int     `json:"quantity" yaml:"quantity"`
	CanRotate bool    `json:"can_rotate" yaml:"can_rotate"`
}

func NewItem(w, h float64, qty int) Item {
	return Item{
		ID:       uuid.New().String()[:8],
		Width:    w,
		Height:   h,
		Quantity: qty,
	}
}

// Area returns the area of a single unit of this item.
func (i Item) Area() float64 {
	return i.Width * i.Height
}

// MaxSide returns the larger of the item's two dimensions.
func (i Item) MaxSide() float64 {
	if i.Width > i.Height {
		return i.Width
	}
	return i.Height
}

// OptionalItem represents a filler piece that may be added to a panel when
// waste is high. Exactly one instance exists per definition; there is no
// quantity field.
type OptionalItem struct {
	ID        string  `json:"id" yaml:"id"`
	Width     float64 `json:"width" yaml:"width"`   // mm
	Height    float64 `json:"height" yaml:"height"` // mm
	CanRotate bool    `json:"can_rotate" yaml:"can_rotate"`
	Priority  int     `json:"priority" yaml:"priority"` // higher is attempted first
}

func NewOptionalItem(w, h float64, priority int) OptionalItem {
	return OptionalItem{
		ID:       uuid.New().String()[:8],
		Width:    w,
		Height:   h,
		Priority: priority,
	}
}

// PanelType describes a stock sheet definition together with the pieces
// that must (and may) be cut from sheets of this type. Trimming is removed
// symmetrically from all four edges before any placement.
type PanelType struct {
	ID            string         `json:"id" yaml:"id"`
	Width         float64        `json:"width" yaml:"width"`       // mm
	Height        float64        `json:"height" yaml:"height"`     // mm
	Trimming      float64        `json:"trimming" yaml:"trimming"` // mm per edge
	Items         []Item         `json:"items" yaml:"items"`
	OptionalItems []OptionalItem `json:"optional_items,omitempty" yaml:"optional_items,omitempty"`
}

func NewPanelType(w, h, trimming float64) PanelType {
	return PanelType{
		ID:       uuid.New().String()[:8],
		Width:    w,
		Height:   h,
		Trimming: trimming,
	}
}

// UsableWidth returns the panel width after edge trimming.
func (pt PanelType) UsableWidth() float64 {
	return pt.Width - 2*pt.Trimming
}

// UsableHeight returns the panel height after edge trimming.
func (pt PanelType) UsableHeight() float64 {
	return pt.Height - 2*pt.Trimming
}

// UsableArea returns the area available for placement on one sheet.
func (pt PanelType) UsableArea() float64 {
	return pt.UsableWidth() * pt.UsableHeight()
}

// Request is the input to the optimizer: one entry per panel type, each
// carrying its own required and optional pieces.
type Request struct {
	PanelTypes []PanelType `json:"panel_types" yaml:"panel_types"`
}
