package server

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/suryakart/suryakart/pkg/catalog"
	"github.com/suryakart/suryakart/pkg/log"
)

// parseQuery reads the listing parameters shared by the shop and admin lists.
func parseQuery(r *http.Request) (catalog.Query, error) {
	q := r.URL.Query()
	query := catalog.Query{
		Category: q.Get("category"),
		Search:   q.Get("q"),
	}
	var err error
	if v := q.Get("page"); v != "" {
		if query.Page, err = strconv.Atoi(v); err != nil || query.Page < 0 {
			return catalog.Query{}, errors.New("page must be a non-negative integer")
		}
	}
	if v := q.Get("size"); v != "" {
		if query.Size, err = strconv.Atoi(v); err != nil || query.Size < 1 {
			return catalog.Query{}, errors.New("size must be a positive integer")
		}
	}
	return query, nil
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query, err := parseQuery(r)
	if err != nil {
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	query.ActiveOnly = true

	page, err := s.catalog.List(ctx, query)
	if err != nil {
		log.Ctx(ctx).ErrorContext(ctx, "failed to list products", slog.Any("error", err))
		writeStatusError(w, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.ViewPage(page))
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := r.PathValue("id")

	p, err := s.catalog.Get(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			writeStatusError(w, http.StatusNotFound)
			return
		}
		log.Ctx(ctx).ErrorContext(ctx, "failed to get product", slog.String("productID", id), slog.Any("error", err))
		writeStatusError(w, http.StatusInternalServerError)
		return
	}
	// inactive products are hidden from shoppers
	if !p.Active {
		writeStatusError(w, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, s.catalog.View(p))
}
