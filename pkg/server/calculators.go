package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/suryakart/suryakart/pkg/calculator"
	"github.com/suryakart/suryakart/pkg/log"
)

func (s *Server) handleListCalculators(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.calculators.List())
}

func (s *Server) handleEvaluateCalculator(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	var values calculator.Values
	if err := decodeJSON(r, &values); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode calculator inputs", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	eval, err := s.calculators.Evaluate(id, values)
	switch {
	case err == nil:
	case errors.Is(err, calculator.ErrUnknownCalculator):
		writeStatusError(w, http.StatusNotFound)
		return
	case errors.Is(err, calculator.ErrInvalidInput):
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	default:
		log.Ctx(ctx).ErrorContext(ctx, "failed to evaluate calculator", slog.String("calculator", id), slog.Any("error", err))
		writeStatusError(w, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, eval)
}
