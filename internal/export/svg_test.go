package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/panelcut/internal/model"
)

func TestGenerateSVG_Structure(t *testing.T) {
	svg := GenerateSVG(buildTestResult())

	if !strings.HasPrefix(svg, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("expected XML declaration at start")
	}
	if !strings.Contains(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Error("expected svg root element")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("expected closing svg tag")
	}
}

func TestGenerateSVG_PanelTitles(t *testing.T) {
	svg := GenerateSVG(buildTestResult())

	if !strings.Contains(svg, "plywood_18mm #1") {
		t.Error("expected first panel title in SVG")
	}
	if !strings.Contains(svg, "mdf_12mm #1") {
		t.Error("expected second panel title in SVG")
	}
}

func TestGenerateSVG_Placements(t *testing.T) {
	svg := GenerateSVG(buildTestResult())

	// One green rect per placement
	if got := strings.Count(svg, `fill="#4CAF50"`); got != 4 {
		t.Errorf("expected 4 placement rects, got %d", got)
	}
	if !strings.Contains(svg, ">side_panel</text>") {
		t.Error("expected side_panel label in SVG")
	}
	// Rotated placements carry an (R) marker
	if !strings.Contains(svg, ">shelf (R)</text>") {
		t.Error("expected rotation marker for shelf")
	}
}

func TestGenerateSVG_UnusedAreas(t *testing.T) {
	svg := GenerateSVG(buildTestResult())

	if got := strings.Count(svg, `stroke-dasharray`); got != 2 {
		t.Errorf("expected 2 dashed leftover rects, got %d", got)
	}
}

func TestExportSVG_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.svg")

	err := ExportSVG(path, buildTestResult())
	if err != nil {
		t.Fatalf("ExportSVG returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("SVG file was not created: %v", err)
	}
	if !strings.Contains(string(data), "</svg>") {
		t.Error("written file does not contain closing svg tag")
	}
}

func TestExportSVG_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.svg")

	err := ExportSVG(path, model.Result{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}
