package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piwi3910/panelcut/internal/model"
)

func TestExportDXF_CreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.dxf")

	err := ExportDXF(path, buildTestResult())
	if err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("DXF file was not created: %v", err)
	}
	content := string(data)

	for _, want := range []string{"PANEL", "PARTS", "LEFTOVER", "LWPOLYLINE"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in DXF output", want)
		}
	}
}

func TestExportDXF_PolylineCount(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layout.dxf")

	if err := ExportDXF(path, buildTestResult()); err != nil {
		t.Fatalf("ExportDXF returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("cannot read DXF file: %v", err)
	}

	// 2 panel outlines + 4 placements + 2 leftover areas
	got := strings.Count(string(data), "LWPOLYLINE")
	if got != 8 {
		t.Errorf("expected 8 LWPOLYLINE entities, got %d", got)
	}
}

func TestExportDXF_EmptyResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.dxf")

	err := ExportDXF(path, model.Result{})
	if err == nil {
		t.Fatal("expected error for empty result, got nil")
	}
}
