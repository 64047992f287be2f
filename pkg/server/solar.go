package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/suryakart/suryakart/pkg/log"
	"github.com/suryakart/suryakart/pkg/solar"
)

type solarAnalysisResponse struct {
	solar.Analysis
	Display map[string]string `json:"display"`
}

func (s *Server) handleSolarAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var system solar.System
	if err := decodeJSON(r, &system); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode solar system", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	analysis, err := solar.Analyze(system)
	if err != nil {
		if errors.Is(err, solar.ErrInvalidInput) {
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Ctx(ctx).ErrorContext(ctx, "failed to analyze solar system", slog.Any("error", err))
		writeStatusError(w, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, solarAnalysisResponse{
		Analysis: analysis,
		Display:  analysis.Display(),
	})
}

func (s *Server) handleSolarPosition(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		writeJSONError(w, "lat must be a latitude in degrees", http.StatusBadRequest)
		return
	}
	t := time.Now()
	if v := q.Get("time"); v != "" {
		t, err = time.Parse(time.RFC3339, v)
		if err != nil {
			writeJSONError(w, "time must be RFC3339", http.StatusBadRequest)
			return
		}
	}
	writeJSON(w, http.StatusOK, solar.SolarPosition(lat, t))
}
