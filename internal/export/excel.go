package export

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/panelcut/internal/model"
)

// ExportExcel writes the packing result as an Excel workbook with two
// sheets: "Cut List" holds one row per placement and "Summary" holds the
// aggregate statistics.
func ExportExcel(path string, result model.Result) error {
	if len(result.Panels) == 0 {
		return fmt.Errorf("no panels to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	cutList := "Cut List"
	f.SetSheetName(f.GetSheetName(0), cutList)

	headers := []string{"Panel Type", "Panel #", "Item ID", "X (mm)", "Y (mm)", "Width (mm)", "Height (mm)", "Rotated"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build cell reference: %w", err)
		}
		if err := f.SetCellValue(cutList, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	row := 2
	for _, panel := range result.Panels {
		for _, p := range panel.Placements {
			rotated := "no"
			if p.Rotated {
				rotated = "yes"
			}
			values := []interface{}{
				panel.PanelTypeID, panel.PanelNumber, p.ItemID,
				p.X, p.Y, p.Width, p.Height, rotated,
			}
			for i, v := range values {
				cell, err := excelize.CoordinatesToCellName(i+1, row)
				if err != nil {
					return fmt.Errorf("failed to build cell reference: %w", err)
				}
				if err := f.SetCellValue(cutList, cell, v); err != nil {
					return fmt.Errorf("failed to write placement row: %w", err)
				}
			}
			row++
		}
	}

	if err := f.SetColWidth(cutList, "A", "C", 18); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	if err := writeSummarySheet(f, result); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// writeSummarySheet adds the "Summary" sheet with aggregate statistics and
// the per-type panel counts.
func writeSummarySheet(f *excelize.File, result model.Result) error {
	summary := "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return fmt.Errorf("failed to create summary sheet: %w", err)
	}

	s := result.Summary
	rows := []struct {
		label string
		value interface{}
	}{
		{"Total Panels", s.TotalPanels},
		{"Total Area (mm²)", s.TotalArea},
		{"Used Area (mm²)", s.UsedArea},
		{"Waste Area (mm²)", s.WasteArea},
		{"Waste Percentage", fmt.Sprintf("%.1f%%", s.WastePercentage)},
		{"Items Placed", countItems(result)},
	}

	rowNum := 1
	for _, r := range rows {
		if err := f.SetCellValue(summary, fmt.Sprintf("A%d", rowNum), r.label); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		if err := f.SetCellValue(summary, fmt.Sprintf("B%d", rowNum), r.value); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		rowNum++
	}

	// Per-type panel counts, sorted for stable output
	rowNum++
	if err := f.SetCellValue(summary, fmt.Sprintf("A%d", rowNum), "Panels Used Per Type"); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	rowNum++

	typeIDs := make([]string, 0, len(s.PanelsUsed))
	for id := range s.PanelsUsed {
		typeIDs = append(typeIDs, id)
	}
	sort.Strings(typeIDs)

	for _, id := range typeIDs {
		if err := f.SetCellValue(summary, fmt.Sprintf("A%d", rowNum), id); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		if err := f.SetCellValue(summary, fmt.Sprintf("B%d", rowNum), s.PanelsUsed[id]); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		rowNum++
	}

	// Optional items placed into leftover space
	if len(s.OptionalItemsUsed) > 0 {
		rowNum++
		if err := f.SetCellValue(summary, fmt.Sprintf("A%d", rowNum), "Optional Items Used"); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		rowNum++
		for _, id := range s.OptionalItemsUsed {
			if err := f.SetCellValue(summary, fmt.Sprintf("A%d", rowNum), id); err != nil {
				return fmt.Errorf("failed to write summary: %w", err)
			}
			rowNum++
		}
	}

	if err := f.SetColWidth(summary, "A", "A", 24); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}

	return nil
}
