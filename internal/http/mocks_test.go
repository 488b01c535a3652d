package httpapi_test

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/sportsstore-go/internal/cart"
	"github.com/andreasstove999/sportsstore-go/internal/catalog"
	"github.com/andreasstove999/sportsstore-go/internal/checkout"
	httpapi "github.com/andreasstove999/sportsstore-go/internal/http"
	"github.com/andreasstove999/sportsstore-go/internal/order"
)

type catalogMock struct {
	GetProductFunc     func(ctx context.Context, id int64) (*catalog.Product, error)
	ListProductsFunc   func(ctx context.Context) ([]catalog.Product, error)
	ListByCategoryFunc func(ctx context.Context, category string) ([]catalog.Product, error)
}

func (m *catalogMock) GetProduct(ctx context.Context, id int64) (*catalog.Product, error) {
	return m.GetProductFunc(ctx, id)
}

func (m *catalogMock) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	return m.ListProductsFunc(ctx)
}

func (m *catalogMock) ListByCategory(ctx context.Context, category string) ([]catalog.Product, error) {
	return m.ListByCategoryFunc(ctx, category)
}

type orderRepoMock struct {
	SaveFunc        func(ctx context.Context, o *order.Order) error
	GetByIDFunc     func(ctx context.Context, orderID string) (*order.Order, error)
	UnshippedFunc   func(ctx context.Context) ([]order.Order, error)
	MarkShippedFunc func(ctx context.Context, orderID string) error
}

func (m *orderRepoMock) Save(ctx context.Context, o *order.Order) error {
	return m.SaveFunc(ctx, o)
}

func (m *orderRepoMock) GetByID(ctx context.Context, orderID string) (*order.Order, error) {
	return m.GetByIDFunc(ctx, orderID)
}

func (m *orderRepoMock) Unshipped(ctx context.Context) ([]order.Order, error) {
	return m.UnshippedFunc(ctx)
}

func (m *orderRepoMock) MarkShipped(ctx context.Context, orderID string) error {
	return m.MarkShippedFunc(ctx, orderID)
}

// fixedCatalog serves the products every test uses.
func fixedCatalog() *catalogMock {
	kayak := catalog.Product{ID: 1, Name: "Kayak", Price: decimal.RequireFromString("275.00"), Category: "Watersports"}
	ball := catalog.Product{ID: 3, Name: "Soccer Ball", Price: decimal.RequireFromString("19.50"), Category: "Soccer"}
	byID := map[int64]catalog.Product{1: kayak, 3: ball}

	return &catalogMock{
		GetProductFunc: func(ctx context.Context, id int64) (*catalog.Product, error) {
			p, ok := byID[id]
			if !ok {
				return nil, catalog.ErrProductNotFound
			}
			return &p, nil
		},
		ListProductsFunc: func(ctx context.Context) ([]catalog.Product, error) {
			return []catalog.Product{kayak, ball}, nil
		},
		ListByCategoryFunc: func(ctx context.Context, category string) ([]catalog.Product, error) {
			var out []catalog.Product
			for _, p := range []catalog.Product{kayak, ball} {
				if p.Category == category {
					out = append(out, p)
				}
			}
			return out, nil
		},
	}
}

type testApp struct {
	router http.Handler
	carts  *cart.MemoryStore
	orders *orderRepoMock
	cookie *http.Cookie
}

func newTestApp(t *testing.T, orders *orderRepoMock) *testApp {
	t.Helper()

	carts := cart.NewMemoryStore()
	logger := log.New(io.Discard, "", 0)
	checkoutSvc := checkout.NewService(orders, nil, logger)

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:   logger,
		Timeout:  3 * time.Second,
		Products: fixedCatalog(),
		Carts:    carts,
		Orders:   orders,
		Checkout: checkoutSvc,
	})

	return &testApp{router: router, carts: carts, orders: orders}
}

// do sends a request through the router, carrying the session cookie across
// calls the way a browser would.
func (a *testApp) do(t *testing.T, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, path, body)
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	if a.cookie != nil {
		r.AddCookie(a.cookie)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, r)

	for _, c := range w.Result().Cookies() {
		if c.Name == "cart_session" {
			a.cookie = c
		}
	}
	return w
}
