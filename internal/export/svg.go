// Package export provides functionality for exporting packing results
// to various file formats.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/piwi3910/panelcut/internal/model"
)

// SVG layout constants. Panels are stacked vertically, each drawn at half
// scale with a fixed margin around the page.
const (
	svgScale        = 2.0
	svgMargin       = 20.0
	svgPanelSpacing = 40.0
)

// GenerateSVG renders all panel instances of a result as a single SVG
// document. Panels are stacked top to bottom; placements are drawn as green
// rectangles with the item id centered, and reported unused areas as dashed
// outlines.
func GenerateSVG(result model.Result) string {
	var b strings.Builder

	maxWidth := 0.0
	totalHeight := 0.0
	for _, panel := range result.Panels {
		if panel.UsableWidth > maxWidth {
			maxWidth = panel.UsableWidth
		}
		totalHeight += panel.UsableHeight + svgPanelSpacing
	}

	svgWidth := maxWidth/svgScale + 2*svgMargin
	svgHeight := totalHeight/svgScale + 2*svgMargin

	fmt.Fprintln(&b, `<?xml version="1.0" encoding="UTF-8"?>`)
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%g" height="%g" viewBox="0 0 %g %g">`+"\n",
		svgWidth, svgHeight, svgWidth, svgHeight)
	fmt.Fprintln(&b, `  <rect width="100%" height="100%" fill="#f5f5f5"/>`)

	yOffset := svgMargin

	for _, panel := range result.Panels {
		x := svgMargin
		panelWidth := panel.UsableWidth / svgScale
		panelHeight := panel.UsableHeight / svgScale

		fmt.Fprintf(&b, `  <rect x="%g" y="%g" width="%g" height="%g" fill="#fff" stroke="#333" stroke-width="2"/>`+"\n",
			x, yOffset, panelWidth, panelHeight)

		fmt.Fprintf(&b, `  <text x="%g" y="%g" font-family="Arial" font-size="14" fill="#333">%s #%d</text>`+"\n",
			x, yOffset-5, panel.PanelTypeID, panel.PanelNumber)

		for _, p := range panel.Placements {
			px := x + p.X/svgScale
			py := yOffset + p.Y/svgScale
			pw := p.Width / svgScale
			ph := p.Height / svgScale

			fmt.Fprintf(&b, `  <rect x="%g" y="%g" width="%g" height="%g" fill="#4CAF50" stroke="#2E7D32" stroke-width="1" opacity="0.7"/>`+"\n",
				px, py, pw, ph)

			label := p.ItemID
			if p.Rotated {
				label = fmt.Sprintf("%s (R)", p.ItemID)
			}

			fmt.Fprintf(&b, `  <text x="%g" y="%g" font-family="Arial" font-size="10" fill="#fff" text-anchor="middle">%s</text>`+"\n",
				px+pw/2, py+ph/2+3, label)
		}

		for _, u := range panel.UnusedAreas {
			ux := x + u.X/svgScale
			uy := yOffset + u.Y/svgScale
			uw := u.Width / svgScale
			uh := u.Height / svgScale

			fmt.Fprintf(&b, `  <rect x="%g" y="%g" width="%g" height="%g" fill="none" stroke="#c62828" stroke-width="1" stroke-dasharray="4 2"/>`+"\n",
				ux, uy, uw, uh)
		}

		yOffset += panelHeight + svgPanelSpacing
	}

	fmt.Fprintln(&b, "</svg>")

	return b.String()
}

// ExportSVG writes the SVG rendering of a result to a file.
func ExportSVG(path string, result model.Result) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}
	return os.WriteFile(path, []byte(GenerateSVG(result)), 0644)
}
