package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/sportsstore-go/internal/cart"
	"github.com/andreasstove999/sportsstore-go/internal/catalog"
	"github.com/andreasstove999/sportsstore-go/internal/checkout"
)

type CartHandler struct {
	products catalog.Repository
	carts    cart.SessionStore
	checkout *checkout.Service
	logger   *log.Logger
	timeout  time.Duration
}

func NewCartHandler(products catalog.Repository, carts cart.SessionStore, checkoutSvc *checkout.Service, logger *log.Logger, timeout time.Duration) *CartHandler {
	return &CartHandler{
		products: products,
		carts:    carts,
		checkout: checkoutSvc,
		logger:   logger,
		timeout:  timeout,
	}
}

type cartView struct {
	Lines []cart.Line     `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	key := sessionKey(w, r)

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	c, err := h.carts.Load(ctx, key)
	if err != nil {
		h.logger.Printf("load cart %s: %v", key, err)
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	writeJSON(w, http.StatusOK, cartView{Lines: c.Lines(), Total: c.Total()})
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	key := sessionKey(w, r)

	var body struct {
		ProductID int64 `json:"productId"`
		Quantity  int   `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	p, err := h.products.GetProduct(ctx, body.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			writeError(w, http.StatusNotFound, "product not found")
			return
		}
		h.logger.Printf("get product %d: %v", body.ProductID, err)
		writeError(w, http.StatusInternalServerError, "failed to load product")
		return
	}

	c, err := h.carts.Load(ctx, key)
	if err != nil {
		h.logger.Printf("load cart %s: %v", key, err)
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	if err := c.AddItem(*p, body.Quantity); err != nil {
		if errors.Is(err, cart.ErrInvalidQuantity) {
			writeError(w, http.StatusBadRequest, "quantity must be positive")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}

	if err := h.carts.Save(ctx, key, c); err != nil {
		h.logger.Printf("save cart %s: %v", key, err)
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}

	writeJSON(w, http.StatusOK, cartView{Lines: c.Lines(), Total: c.Total()})
}

func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	key := sessionKey(w, r)

	var body struct {
		ProductID int64 `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	c, err := h.carts.Load(ctx, key)
	if err != nil {
		h.logger.Printf("load cart %s: %v", key, err)
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	c.RemoveLine(body.ProductID)

	if err := h.carts.Save(ctx, key, c); err != nil {
		h.logger.Printf("save cart %s: %v", key, err)
		writeError(w, http.StatusInternalServerError, "failed to save cart")
		return
	}

	writeJSON(w, http.StatusOK, cartView{Lines: c.Lines(), Total: c.Total()})
}

func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	key := sessionKey(w, r)

	var details checkout.ShippingDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	c, err := h.carts.Load(ctx, key)
	if err != nil {
		h.logger.Printf("load cart %s: %v", key, err)
		writeError(w, http.StatusInternalServerError, "failed to load cart")
		return
	}

	orderID, err := h.checkout.Checkout(ctx, key, c, details)
	if err != nil {
		var verr *checkout.ValidationError
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			writeError(w, http.StatusBadRequest, "cart is empty")
		case errors.As(err, &verr):
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":  "invalid shipping details",
				"fields": verr.Fields,
			})
		default:
			h.logger.Printf("checkout for %s: %v", key, err)
			writeError(w, http.StatusInternalServerError, "failed to place order")
		}
		return
	}

	// the in-memory cart is already cleared; drop the persisted copy too
	if err := h.carts.Delete(ctx, key); err != nil {
		h.logger.Printf("delete cart %s after checkout: %v", key, err)
	}

	writeJSON(w, http.StatusCreated, map[string]string{"orderId": orderID})
}
