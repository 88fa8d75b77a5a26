package model

import "fmt"

// InvalidInputError reports a request that was rejected before any placement
// began. Field identifies the offending value.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// PanelTooSmallForTrimmingError reports a panel type whose trimming consumes
// the whole sheet (2*trimming must stay below the smaller dimension).
type PanelTooSmallForTrimmingError struct {
	PanelTypeID string
	Trimming    float64
}

func (e *PanelTooSmallForTrimmingError) Error() string {
	return fmt.Sprintf("panel type %q too small for trimming %.2fmm", e.PanelTypeID, e.Trimming)
}

// ItemExceedsPanelError reports a required piece that cannot fit a fresh,
// empty usable rectangle in any allowed orientation. The whole request fails;
// no partial layout is returned.
type ItemExceedsPanelError struct {
	PanelTypeID string
	ItemID      string
}

func (e *ItemExceedsPanelError) Error() string {
	return fmt.Sprintf("item %q exceeds usable area of panel type %q", e.ItemID, e.PanelTypeID)
}
