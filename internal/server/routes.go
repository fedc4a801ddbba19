package server

import (
	"net/http"
	"strings"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Stocks
	mux.HandleFunc("/api/stocks/", s.routeStocks)

	// Comparison
	mux.HandleFunc("/api/compare/chart", s.handleCompareChart)
	mux.HandleFunc("/api/compare", s.handleCompare)
}

// routeStocks dispatches /api/stocks/{ticker}[/check|/chart].
func (s *Server) routeStocks(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/stocks/")

	switch {
	case strings.HasSuffix(rest, "/check"):
		s.handleStockCheck(w, r, PathParam(r, "/api/stocks/", "/check"))
	case strings.HasSuffix(rest, "/chart"):
		s.handleStockChart(w, r, PathParam(r, "/api/stocks/", "/chart"))
	case rest != "" && !strings.Contains(rest, "/"):
		s.handleStockGet(w, r, PathParam(r, "/api/stocks/", ""))
	default:
		WriteError(w, http.StatusNotFound, "Not found")
	}
}
