package export

import (
	"fmt"
	"math"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/panelcut/internal/model"
)

// itemColor represents an RGB color for a placed item.
type itemColor struct {
	R, G, B int
}

// itemColors is the color cycle used for placed items in layout diagrams.
var itemColors = []itemColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF generates a PDF document containing the packing results.
// Each panel instance is rendered on its own page with a visual layout
// diagram, followed by a summary page with overall statistics.
func ExportPDF(path string, result model.Result) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	// Render each panel instance on its own page
	for i, panel := range result.Panels {
		pdf.AddPage()
		renderPanelPage(pdf, panel, i+1)
	}

	// Summary page
	pdf.AddPage()
	renderSummaryPage(pdf, result)

	return pdf.OutputFileAndClose(path)
}

// renderPanelPage draws a single panel instance on the current PDF page.
func renderPanelPage(pdf *fpdf.Fpdf, panel model.PanelInstance, pageNum int) {
	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Panel %d: %s #%d (%.0f x %.0f mm usable)",
		pageNum, panel.PanelTypeID, panel.PanelNumber, panel.UsableWidth, panel.UsableHeight)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	used := panel.UsedArea()
	total := panel.UsableArea()
	efficiency := 0.0
	if total > 0 {
		efficiency = used / total * 100
	}
	stats := fmt.Sprintf("Items: %d | Used area: %.0f mm² | Usable area: %.0f mm² | Efficiency: %.1f%%",
		len(panel.Placements), used, total, efficiency)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Calculate drawing area
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	// Calculate scale to fit the panel within the drawing area
	scaleX := drawWidth / panel.UsableWidth
	scaleY := drawHeight / panel.UsableHeight
	scale := math.Min(scaleX, scaleY)

	canvasW := panel.UsableWidth * scale
	canvasH := panel.UsableHeight * scale

	// Center the drawing horizontally
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Draw panel background (wood color)
	pdf.SetFillColor(210, 180, 140)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Draw placed items
	for i, p := range panel.Placements {
		col := itemColors[i%len(itemColors)]
		pw := p.Width * scale
		ph := p.Height * scale
		px := offsetX + p.X*scale
		py := offsetY + p.Y*scale

		// Item fill
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(px, py, pw, ph, "FD")

		// Item label (only if rectangle is large enough)
		if pw > 15 && ph > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(pw, ph))
			pdf.SetTextColor(0, 0, 0)

			label := p.ItemID
			if p.Rotated {
				label += " (R)"
			}
			dims := fmt.Sprintf("%.0fx%.0f", p.Width, p.Height)

			labelW := pdf.GetStringWidth(label)
			dimsW := pdf.GetStringWidth(dims)

			// First line: item id
			if labelW < pw-2 {
				pdf.SetXY(px+(pw-labelW)/2, py+ph/2-4)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}

			// Second line: dimensions
			if ph > 14 && dimsW < pw-2 {
				pdf.SetXY(px+(pw-dimsW)/2, py+ph/2)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
		}
	}

	// Draw reported unused areas with hatching
	drawUnusedAreas(pdf, panel.UnusedAreas, scale, offsetX, offsetY)

	// Dimension annotations along the edges
	drawDimensionAnnotations(pdf, panel, scale, offsetX, offsetY, canvasW, canvasH)

	// Items legend at bottom of page
	drawItemsLegend(pdf, panel, offsetY+canvasH+5)
}

// drawUnusedAreas renders the reported leftover rectangles as hatched zones.
func drawUnusedAreas(pdf *fpdf.Fpdf, areas []model.UnusedArea, scale, offsetX, offsetY float64) {
	for _, area := range areas {
		zx := offsetX + area.X*scale
		zy := offsetY + area.Y*scale
		zw := area.Width * scale
		zh := area.Height * scale

		pdf.SetDrawColor(200, 0, 0)
		pdf.SetLineWidth(0.3)
		pdf.Rect(zx, zy, zw, zh, "D")

		drawHatchPattern(pdf, zx, zy, zw, zh)

		// Label for larger zones
		if zw > 25 && zh > 8 {
			pdf.SetFont("Helvetica", "B", 6)
			pdf.SetTextColor(180, 0, 0)
			label := fmt.Sprintf("LEFTOVER %.0fx%.0f", area.Width, area.Height)
			labelW := pdf.GetStringWidth(label)
			pdf.SetXY(zx+(zw-labelW)/2, zy+zh/2-2)
			pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
		}
	}

	// Reset text color
	pdf.SetTextColor(0, 0, 0)
}

// drawHatchPattern draws diagonal lines inside a rectangle to mark leftover zones.
func drawHatchPattern(pdf *fpdf.Fpdf, x, y, w, h float64) {
	pdf.SetDrawColor(200, 0, 0)
	pdf.SetLineWidth(0.15)

	spacing := 4.0
	maxDist := w + h

	for d := spacing; d < maxDist; d += spacing {
		// Line from bottom-left to top-right diagonal
		x1 := x + math.Max(0, d-h)
		y1 := y + math.Min(h, d)
		x2 := x + math.Min(w, d)
		y2 := y + math.Max(0, d-w)

		pdf.Line(x1, y1, x2, y2)
	}
}

// drawDimensionAnnotations adds width and height dimension labels outside the panel rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, panel model.PanelInstance, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	// Width annotation (below the panel)
	widthLabel := fmt.Sprintf("%.0f mm", panel.UsableWidth)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	// Height annotation (to the left of the panel, rotated)
	heightLabel := fmt.Sprintf("%.0f mm", panel.UsableHeight)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	// Reset text color
	pdf.SetTextColor(0, 0, 0)
}

// drawItemsLegend renders a compact legend of placed items at the bottom of the panel page.
func drawItemsLegend(pdf *fpdf.Fpdf, panel model.PanelInstance, startY float64) {
	if len(panel.Placements) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Items placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, p := range panel.Placements {
		col := itemColors[i%len(itemColors)]
		label := fmt.Sprintf("%s (%.0fx%.0f)", p.ItemID, p.Width, p.Height)
		if p.Rotated {
			label += " R"
		}
		labelW := pdf.GetStringWidth(label) + 6

		// Wrap to next line if needed
		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		// Color swatch
		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		// Label text
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws the final summary page with overall statistics.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.Result) {
	// Title
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Panel Packing Summary", "", 0, "L", false, 0, "")

	// Separator line
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18

	// Overall statistics
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Overall Statistics", "", 0, "L", false, 0, "")
	y += 9

	summaryItems := []struct {
		label string
		value string
	}{
		{"Total Panels Used", fmt.Sprintf("%d", result.Summary.TotalPanels)},
		{"Total Items Placed", fmt.Sprintf("%d", countItems(result))},
		{"Used Area", fmt.Sprintf("%.0f mm²", result.Summary.UsedArea)},
		{"Waste Area", fmt.Sprintf("%.0f mm²", result.Summary.WasteArea)},
		{"Waste Percentage", fmt.Sprintf("%.1f%%", result.Summary.WastePercentage)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range summaryItems {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}

	y += 5

	// Per-panel breakdown table
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, "Panel Breakdown", "", 0, "L", false, 0, "")
	y += 9

	// Table header
	colWidths := []float64{20, 60, 50, 35, 35, 55}
	headers := []string{"Page", "Panel Type", "Usable Size", "Items", "Efficiency", "Used / Usable Area"}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	xPos := marginLeft
	for i, header := range headers {
		pdf.SetXY(xPos, y)
		pdf.CellFormat(colWidths[i], 6, header, "1", 0, "C", true, 0, "")
		xPos += colWidths[i]
	}
	y += 6

	// Table rows
	pdf.SetFont("Helvetica", "", 9)
	for i, panel := range result.Panels {
		used := panel.UsedArea()
		total := panel.UsableArea()
		efficiency := 0.0
		if total > 0 {
			efficiency = used / total * 100
		}

		xPos = marginLeft
		rowData := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%s #%d", panel.PanelTypeID, panel.PanelNumber),
			fmt.Sprintf("%.0f x %.0f mm", panel.UsableWidth, panel.UsableHeight),
			fmt.Sprintf("%d", len(panel.Placements)),
			fmt.Sprintf("%.1f%%", efficiency),
			fmt.Sprintf("%.0f / %.0f mm²", used, total),
		}

		// Alternate row background
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}

		for j, cell := range rowData {
			pdf.SetXY(xPos, y)
			pdf.CellFormat(colWidths[j], 6, cell, "1", 0, "C", true, 0, "")
			xPos += colWidths[j]
		}
		y += 6
	}

	// Panels used per type
	if len(result.Summary.PanelsUsed) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(100, 7, "Panels Used Per Type", "", 0, "L", false, 0, "")
		y += 9

		typeIDs := make([]string, 0, len(result.Summary.PanelsUsed))
		for id := range result.Summary.PanelsUsed {
			typeIDs = append(typeIDs, id)
		}
		sort.Strings(typeIDs)

		pdf.SetFont("Helvetica", "", 9)
		for _, id := range typeIDs {
			pdf.SetXY(marginLeft+5, y)
			text := fmt.Sprintf("- %s: %d", id, result.Summary.PanelsUsed[id])
			pdf.CellFormat(200, 5, text, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Optional items placed into leftover space
	if len(result.Summary.OptionalItemsUsed) > 0 {
		y += 8
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(0, 120, 0)
		pdf.SetXY(marginLeft, y)
		pdf.CellFormat(200, 7, "Optional Items Added", "", 0, "L", false, 0, "")
		y += 8

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(0, 0, 0)

		for _, id := range result.Summary.OptionalItemsUsed {
			pdf.SetXY(marginLeft+5, y)
			pdf.CellFormat(200, 5, "- "+id, "", 0, "L", false, 0, "")
			y += 5
		}
	}

	// Footer
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by PanelCut - Panel Packing Optimizer", "", 0, "C", false, 0, "")
}

// labelFontSize returns an appropriate font size based on the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}

// countItems returns the total number of placed items across all panels.
func countItems(result model.Result) int {
	total := 0
	for _, p := range result.Panels {
		total += len(p.Placements)
	}
	return total
}
