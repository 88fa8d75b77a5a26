package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"

	"github.com/piwi3910/panelcut/internal/model"
)

// dxfPanelSpacing is the vertical gap between panel outlines in the drawing, in mm.
const dxfPanelSpacing = 40.0

// ExportDXF writes the packing result as a DXF drawing for CAD/CAM use.
// Panel outlines go on the PANEL layer, placements on the PARTS layer, and
// reported leftover rectangles on the LEFTOVER layer. Panels are stacked
// vertically with a fixed gap, all coordinates in mm.
func ExportDXF(path string, result model.Result) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("PANEL", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add PANEL layer: %w", err)
	}
	if _, err := d.AddLayer("PARTS", color.Green, table.LT_CONTINUOUS, false); err != nil {
		return fmt.Errorf("failed to add PARTS layer: %w", err)
	}
	if _, err := d.AddLayer("LEFTOVER", color.Red, table.LT_CONTINUOUS, false); err != nil {
		return fmt.Errorf("failed to add LEFTOVER layer: %w", err)
	}

	yOffset := 0.0
	for _, panel := range result.Panels {
		if err := d.ChangeLayer("PANEL"); err != nil {
			return fmt.Errorf("failed to switch layer: %w", err)
		}
		if err := drawRect(d, 0, yOffset, panel.UsableWidth, panel.UsableHeight); err != nil {
			return fmt.Errorf("failed to draw panel outline: %w", err)
		}

		if err := d.ChangeLayer("PARTS"); err != nil {
			return fmt.Errorf("failed to switch layer: %w", err)
		}
		for _, p := range panel.Placements {
			if err := drawRect(d, p.X, yOffset+p.Y, p.Width, p.Height); err != nil {
				return fmt.Errorf("failed to draw placement %q: %w", p.ItemID, err)
			}
		}

		if err := d.ChangeLayer("LEFTOVER"); err != nil {
			return fmt.Errorf("failed to switch layer: %w", err)
		}
		for _, u := range panel.UnusedAreas {
			if err := drawRect(d, u.X, yOffset+u.Y, u.Width, u.Height); err != nil {
				return fmt.Errorf("failed to draw leftover area: %w", err)
			}
		}

		yOffset += panel.UsableHeight + dxfPanelSpacing
	}

	return d.SaveAs(path)
}

// drawRect adds a closed LWPOLYLINE rectangle to the drawing.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	_, err := d.LwPolyline(true,
		[]float64{x, y},
		[]float64{x + w, y},
		[]float64{x + w, y + h},
		[]float64{x, y + h},
	)
	return err
}
