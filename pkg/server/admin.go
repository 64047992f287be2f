package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/suryakart/suryakart/pkg/catalog"
	"github.com/suryakart/suryakart/pkg/log"
	"github.com/suryakart/suryakart/pkg/types"
)

func (s *Server) handleAdminListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query, err := parseQuery(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := s.catalog.List(ctx, query)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		writeStatusError(w, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (s *Server) handleAdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var p types.Product
	if err := decodeJSON(r, &p); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode product", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	saved, err := s.catalog.Save(ctx, p)
	if err != nil {
		s.writeProductError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleAdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var p types.Product
	if err := decodeJSON(r, &p); err != nil {
		log.Ctx(ctx).WarnContext(ctx, "failed to decode product", slog.Any("error", err))
		writeJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := s.catalog.Update(ctx, r.PathValue("id"), p)
	if err != nil {
		s.writeProductError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) handleAdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.catalog.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeProductError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeProductError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, catalog.ErrProductNotFound):
		writeStatusError(w, http.StatusNotFound)
	case errors.Is(err, catalog.ErrInvalidProduct):
		writeJSONError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Ctx(ctx).ErrorContext(ctx, "product operation failed", slog.String("productID", r.PathValue("id")), slog.Any("error", err))
		writeStatusError(w, http.StatusInternalServerError)
	}
}
