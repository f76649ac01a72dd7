package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the API routes and middleware chain.
func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", h.HandleHealthCheck)
	mux.HandleFunc("POST /api/extract", h.HandleExtract)

	mux.Handle("/metrics", promhttp.Handler())

	var chained http.Handler = mux
	chained = Metrics(chained)
	chained = Logging(chained)

	return chained
}
