package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/sportsstore-go/internal/catalog"
)

type CatalogHandler struct {
	repo    catalog.Repository
	logger  *log.Logger
	timeout time.Duration
}

func NewCatalogHandler(repo catalog.Repository, logger *log.Logger, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{repo: repo, logger: logger, timeout: timeout}
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var (
		products []catalog.Product
		err      error
	)
	if category := r.URL.Query().Get("category"); category != "" {
		products, err = h.repo.ListByCategory(ctx, category)
	} else {
		products, err = h.repo.ListProducts(ctx)
	}
	if err != nil {
		h.logger.Printf("list products: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid productId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	p, err := h.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Printf("get product %d: %v", id, err)
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	writeJSON(w, http.StatusOK, p)
}
