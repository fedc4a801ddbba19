package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/bobmcallan/pulse/internal/charts"
	"github.com/bobmcallan/pulse/internal/common"
	"github.com/bobmcallan/pulse/internal/models"
	"github.com/bobmcallan/pulse/internal/services/health"
)

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}

// --- Stock handlers ---

func (s *Server) handleStockGet(w http.ResponseWriter, r *http.Request, ticker string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshot, err := s.app.HealthService.Snapshot(r.Context(), ticker)
	if err != nil {
		WriteErrorWithCode(w, http.StatusNotFound, fmt.Sprintf("No data for %s: %v", ticker, err), "no_data")
		return
	}

	WriteJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleStockCheck(w http.ResponseWriter, r *http.Request, ticker string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	profile := s.app.Config.Analysis.DefaultProfile
	if p := r.URL.Query().Get("profile"); p != "" {
		profile = p
	}
	aggressive := s.app.Config.Analysis.Aggressive
	if a := r.URL.Query().Get("aggressive"); a != "" {
		aggressive = a == "true" || a == "1"
	}

	check, err := s.app.HealthService.Check(r.Context(), ticker, models.ParseTradingProfile(profile), aggressive)
	if err != nil {
		WriteErrorWithCode(w, http.StatusNotFound, fmt.Sprintf("No data for %s: %v", ticker, err), "no_data")
		return
	}

	WriteJSON(w, http.StatusOK, check)
}

func (s *Server) handleStockChart(w http.ResponseWriter, r *http.Request, ticker string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	snapshot, err := s.app.HealthService.Snapshot(r.Context(), ticker)
	if err != nil {
		WriteErrorWithCode(w, http.StatusNotFound, fmt.Sprintf("No data for %s: %v", ticker, err), "no_data")
		return
	}

	png, err := charts.RenderHistoryChart(snapshot)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Chart error: %v", err))
		return
	}

	WritePNG(w, png)
}

// --- Comparison handlers ---

// compareParams parses the shared query surface of the compare endpoints.
func compareParams(r *http.Request) (tickers []string, sector string, filter bool, err error) {
	q := r.URL.Query()

	tickers = health.ParseTickers(q.Get("tickers"))
	if len(tickers) == 0 {
		return nil, "", false, fmt.Errorf("tickers parameter is required")
	}

	sector = q.Get("sector")
	f := q.Get("sector_filter")
	filter = f == "true" || f == "1"
	if filter && sector == "" {
		return nil, "", false, fmt.Errorf("sector is required when sector_filter is set")
	}

	return tickers, sector, filter, nil
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	tickers, sector, filter, err := compareParams(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := s.app.HealthService.Compare(r.Context(), tickers, sector, filter)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Compare error: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"rows": rows,
	})
}

func (s *Server) handleCompareChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	tickers, sector, filter, err := compareParams(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := s.app.HealthService.Compare(r.Context(), tickers, sector, filter)
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Compare error: %v", err))
		return
	}

	png, err := charts.RenderCompareChart(rows)
	if err != nil {
		WriteError(w, http.StatusUnprocessableEntity, fmt.Sprintf("Chart error: %v", err))
		return
	}

	WritePNG(w, png)
}
