package httpapi

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/piwi3910/panelcut/internal/engine"
	"github.com/piwi3910/panelcut/internal/export"
	"github.com/piwi3910/panelcut/internal/model"
)

// Handler serves the packing endpoints.
type Handler struct {
	logger *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// Health reports service liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "panelcut-api",
	})
}

// Optimize runs the packing engine on the posted request.
// Malformed or invalid input yields 400; an item that cannot fit any panel
// even rotated yields 422. Both are whole-request failures with no partial
// layout in the body.
func (h *Handler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req model.Request
	if err := readBodyJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	opt, err := engine.New(req)
	if err != nil {
		h.logger.Warn("optimize request rejected", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result, err := opt.Optimize()
	if err != nil {
		var exceeds *model.ItemExceedsPanelError
		if errors.As(err, &exceeds) {
			h.logger.Warn("optimize request infeasible", zap.Error(err))
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
			return
		}
		h.logger.Error("optimize failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	h.logger.Info("optimize request served",
		zap.Int("panel_types", len(req.PanelTypes)),
		zap.Int("panels_used", result.Summary.TotalPanels),
		zap.Float64("waste_percentage", result.Summary.WastePercentage))

	writeJSON(w, http.StatusOK, result)
}

// GenerateSVG renders a previously computed result as an SVG layout diagram.
func (h *Handler) GenerateSVG(w http.ResponseWriter, r *http.Request) {
	var result model.Result
	if err := readBodyJSON(r, &result); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}
	if len(result.Panels) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "result has no panels"})
		return
	}

	svg := export.GenerateSVG(result)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(svg))
}
