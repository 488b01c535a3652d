package httpapi

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/sportsstore-go/internal/order"
)

type OrderHandler struct {
	repo    order.Repository
	logger  *log.Logger
	timeout time.Duration
}

func NewOrderHandler(repo order.Repository, logger *log.Logger, timeout time.Duration) *OrderHandler {
	return &OrderHandler{repo: repo, logger: logger, timeout: timeout}
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "missing orderId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	o, err := h.repo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Printf("get order %s: %v", orderID, err)
		writeError(w, http.StatusInternalServerError, "failed to load order")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

// ListUnshipped feeds the fulfillment queue, oldest orders first.
func (h *OrderHandler) ListUnshipped(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	orders, err := h.repo.Unshipped(ctx)
	if err != nil {
		h.logger.Printf("list unshipped: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) MarkShipped(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")
	if orderID == "" {
		writeError(w, http.StatusBadRequest, "missing orderId")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.repo.MarkShipped(ctx, orderID); err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "order not found")
			return
		}
		h.logger.Printf("mark shipped %s: %v", orderID, err)
		writeError(w, http.StatusInternalServerError, "failed to update order")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "shipped"})
}
