package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/panelcut/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() model.Request {
	return model.Request{
		PanelTypes: []model.PanelType{{
			ID:       "mdf",
			Width:    2440,
			Height:   1220,
			Trimming: 6,
			Items: []model.Item{
				{ID: "shelf", Width: 1000, Height: 500, Quantity: 4, CanRotate: true},
			},
			OptionalItems: []model.OptionalItem{
				{ID: "off", Width: 200, Height: 100, Priority: 2},
			},
		}},
	}
}

func TestLoadRequest_JSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.json")
	require.NoError(t, SaveRequest(path, sampleRequest()))

	loaded, err := LoadRequest(path)
	require.NoError(t, err)
	assert.Equal(t, sampleRequest(), loaded)
}

func TestLoadRequest_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.yaml")
	content := `panel_types:
  - id: mdf
    width: 2440
    height: 1220
    trimming: 6
    items:
      - id: shelf
        width: 1000
        height: 500
        quantity: 4
        can_rotate: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	req, err := LoadRequest(path)
	require.NoError(t, err)
	require.Len(t, req.PanelTypes, 1)
	assert.Equal(t, "mdf", req.PanelTypes[0].ID)
	assert.Equal(t, 6.0, req.PanelTypes[0].Trimming)
	require.Len(t, req.PanelTypes[0].Items, 1)
	assert.True(t, req.PanelTypes[0].Items[0].CanRotate)
}

func TestLoadRequest_BadJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "request.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadRequest(path)
	assert.Error(t, err)
}

func TestLoadRequest_MissingFile(t *testing.T) {
	_, err := LoadRequest(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestSaveAndLoadResult(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "result.json")

	result := model.Result{
		Panels: []model.PanelInstance{{
			PanelTypeID:  "mdf",
			PanelNumber:  1,
			UsableWidth:  2428,
			UsableHeight: 1208,
			Placements: []model.Placement{
				{ItemID: "shelf", X: 0, Y: 0, Width: 1000, Height: 500},
			},
			UnusedAreas: []model.UnusedArea{{X: 0, Y: 500, Width: 2428, Height: 708}},
		}},
		Summary: model.Summary{
			TotalPanels: 1,
			PanelsUsed:  map[string]int{"mdf": 1},
			TotalArea:   2428 * 1208,
		},
	}
	require.NoError(t, SaveResult(path, result))

	loaded, err := LoadResult(path)
	require.NoError(t, err)
	assert.Equal(t, result, loaded)
}
