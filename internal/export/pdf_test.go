package export

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/panelcut/internal/model"
)

// buildTestResult creates a realistic packing result for testing.
func buildTestResult() model.Result {
	return model.Result{
		Panels: []model.PanelInstance{
			{
				PanelTypeID:  "plywood_18mm",
				PanelNumber:  1,
				UsableWidth:  2440,
				UsableHeight: 1220,
				Placements: []model.Placement{
					{ItemID: "side_panel", X: 0, Y: 0, Width: 600, Height: 400},
					{ItemID: "top", X: 600, Y: 0, Width: 500, Height: 300},
					{ItemID: "shelf", X: 0, Y: 400, Width: 300, Height: 400, Rotated: true},
				},
				UnusedAreas: []model.UnusedArea{
					{X: 1100, Y: 0, Width: 1340, Height: 1220},
				},
			},
			{
				PanelTypeID:  "mdf_12mm",
				PanelNumber:  1,
				UsableWidth:  1200,
				UsableHeight: 600,
				Placements: []model.Placement{
					{ItemID: "back_panel", X: 0, Y: 0, Width: 800, Height: 500},
				},
				UnusedAreas: []model.UnusedArea{
					{X: 800, Y: 0, Width: 400, Height: 600},
				},
			},
		},
		Summary: model.Summary{
			TotalPanels:     2,
			PanelsUsed:      map[string]int{"plywood_18mm": 1, "mdf_12mm": 1},
			TotalArea:       2440*1220 + 1200*600,
			UsedArea:        600*400 + 500*300 + 300*400 + 800*500,
			WasteArea:       2440*1220 + 1200*600 - (600*400 + 500*300 + 300*400 + 800*500),
			WastePercentage: 74.5,
		},
	}
}

func TestExportPDF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_output.pdf")

	err := ExportPDF(path, buildTestResult())
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
	// A valid PDF with 3 pages (2 panels + summary) should be a reasonable size
	if info.Size() < 500 {
		t.Errorf("PDF file seems too small: %d bytes", info.Size())
	}
}

func TestExportPDF_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")

	err := ExportPDF(path, model.Result{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}

func TestExportPDF_WithOptionalItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "optional.pdf")

	result := buildTestResult()
	result.Summary.OptionalItemsUsed = []string{"filler_a", "filler_b"}
	result.Panels[0].OptionalItemsUsed = []string{"filler_a"}

	err := ExportPDF(path, result)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportPDF_SinglePanel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.pdf")

	result := model.Result{
		Panels: []model.PanelInstance{
			{
				PanelTypeID:  "board",
				PanelNumber:  1,
				UsableWidth:  1000,
				UsableHeight: 500,
				Placements: []model.Placement{
					{ItemID: "a", X: 0, Y: 0, Width: 200, Height: 200},
				},
			},
		},
		Summary: model.Summary{
			TotalPanels: 1,
			PanelsUsed:  map[string]int{"board": 1},
			TotalArea:   500000,
			UsedArea:    40000,
			WasteArea:   460000,
		},
	}

	err := ExportPDF(path, result)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestExportPDF_ManyItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "many_items.pdf")

	// Generate more items than colors to test color cycling
	placements := make([]model.Placement, 20)
	for i := range placements {
		placements[i] = model.Placement{
			ItemID:  fmt.Sprintf("item_%d", i+1),
			X:       float64((i % 5) * 110),
			Y:       float64((i / 5) * 90),
			Width:   100,
			Height:  80,
			Rotated: i%3 == 0,
		}
	}

	result := model.Result{
		Panels: []model.PanelInstance{
			{
				PanelTypeID:  "large_board",
				PanelNumber:  1,
				UsableWidth:  600,
				UsableHeight: 400,
				Placements:   placements,
			},
		},
		Summary: model.Summary{
			TotalPanels: 1,
			PanelsUsed:  map[string]int{"large_board": 1},
		},
	}

	err := ExportPDF(path, result)
	if err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("PDF file was not created: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("PDF file is empty")
	}
}

func TestCountItems(t *testing.T) {
	result := buildTestResult()
	got := countItems(result)
	if got != 4 {
		t.Errorf("countItems() = %d, want 4", got)
	}
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 50, 8},
		{30, 25, 7},
		{10, 15, 6},
	}
	for _, tt := range tests {
		got := labelFontSize(tt.w, tt.h)
		if got != tt.want {
			t.Errorf("labelFontSize(%v, %v) = %v, want %v", tt.w, tt.h, got, tt.want)
		}
	}
}
