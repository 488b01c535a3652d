package httpapi

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/andreasstove999/sportsstore-go/internal/cart"
	"github.com/andreasstove999/sportsstore-go/internal/catalog"
	"github.com/andreasstove999/sportsstore-go/internal/checkout"
	"github.com/andreasstove999/sportsstore-go/internal/order"
)

type Deps struct {
	Logger   *log.Logger
	Timeout  time.Duration
	Products catalog.Repository
	Carts    cart.SessionStore
	Orders   order.Repository
	Checkout *checkout.Service
}

func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", healthHandler)

	cartH := NewCartHandler(d.Products, d.Carts, d.Checkout, d.Logger, d.Timeout)
	orderH := NewOrderHandler(d.Orders, d.Logger, d.Timeout)
	catalogH := NewCatalogHandler(d.Products, d.Logger, d.Timeout)

	r.Route("/api", func(r chi.Router) {
		r.Get("/cart", cartH.GetCart)
		r.Post("/cart/items", cartH.AddItem)
		r.Post("/cart/remove", cartH.RemoveLine)
		r.Post("/checkout", cartH.Checkout)

		r.Get("/products", catalogH.ListProducts)
		r.Get("/products/{productId}", catalogH.GetProduct)

		r.Get("/orders/unshipped", orderH.ListUnshipped)
		r.Get("/orders/{orderId}", orderH.GetOrder)
		r.Post("/orders/{orderId}/ship", orderH.MarkShipped)
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "store-service",
	})
}
