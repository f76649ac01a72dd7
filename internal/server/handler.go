package server

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/contactsheet/gridcell"
	"github.com/contactsheet/gridcell/internal/metrics"
)

// Handler serves the extraction API.
type Handler struct {
	extractor *gridcell.Extractor
}

// NewHandler creates a Handler around an extractor.
func NewHandler(extractor *gridcell.Extractor) *Handler {
	return &Handler{extractor: extractor}
}

type extractRequest struct {
	ImageURL string  `json:"image_url,omitempty"`
	ImageB64 string  `json:"image_b64,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
}

type extractResponse struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	W        int    `json:"w"`
	H        int    `json:"h"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Format   string `json:"format"`
	ImageB64 string `json:"image_b64"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleExtract runs one extraction. Fatal pipeline errors map to a single
// generic message; a degraded grid is not an error and still yields a crop.
func (h *Handler) HandleExtract(w http.ResponseWriter, r *http.Request) {
	var req extractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSONError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.X < 0 || req.X > 1 || req.Y < 0 || req.Y > 1 {
		h.writeJSONError(w, "x and y must be in [0,1]", http.StatusBadRequest)
		return
	}
	if req.ImageURL == "" && req.ImageB64 == "" {
		h.writeJSONError(w, "image_url or image_b64 is required", http.StatusBadRequest)
		return
	}

	payload := gridcell.Payload{URL: req.ImageURL}
	if req.ImageB64 != "" {
		data, err := base64.StdEncoding.DecodeString(req.ImageB64)
		if err != nil {
			h.writeJSONError(w, "image_b64 is not valid base64", http.StatusBadRequest)
			return
		}
		payload = gridcell.Payload{Bytes: data}
	}

	start := time.Now()
	result, err := h.extractor.ExtractCell(r.Context(), payload, req.X, req.Y)
	metrics.ExtractionDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		switch {
		case errors.Is(err, gridcell.ErrDecode):
			metrics.ExtractionsTotal.WithLabelValues("decode_error").Inc()
		case errors.Is(err, gridcell.ErrRender):
			metrics.ExtractionsTotal.WithLabelValues("render_error").Inc()
		default:
			metrics.ExtractionsTotal.WithLabelValues("error").Inc()
		}
		slog.Error("extraction failed", "error", err, "url", req.ImageURL)
		h.writeJSONError(w, "could not extract this region", http.StatusUnprocessableEntity)
		return
	}
	metrics.ExtractionsTotal.WithLabelValues("success").Inc()

	h.writeJSON(w, http.StatusOK, extractResponse{
		X:        result.X,
		Y:        result.Y,
		W:        result.W,
		H:        result.H,
		Row:      result.Row,
		Col:      result.Col,
		Format:   result.Format,
		ImageB64: base64.StdEncoding.EncodeToString(result.Data),
	})
}

// HandleHealthCheck reports liveness.
func (h *Handler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": gridcell.Version})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func (h *Handler) writeJSONError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, errorResponse{Error: message})
}
