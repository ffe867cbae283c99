package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"shopline/internal/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProductStore struct {
	products []models.Product
}

func (f *fakeProductStore) Insert(ctx context.Context, p *models.Product) error {
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductStore) FindAll(ctx context.Context, limit int64) ([]models.Product, error) {
	if limit > 0 && limit < int64(len(f.products)) {
		return f.products[:limit], nil
	}
	return f.products, nil
}

func (f *fakeProductStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func seededProductStore(n int) *fakeProductStore {
	store := &fakeProductStore{}
	for i := 0; i < n; i++ {
		store.products = append(store.products, models.Product{
			ID:        primitive.NewObjectID(),
			Name:      fmt.Sprintf("product-%d", i),
			Price:     float64(i) + 0.99,
			CreatedAt: time.Now(),
		})
	}
	return store
}

func productTestRouter(store *fakeProductStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProductHandler(store)
	r.GET("/products", h.List)
	r.GET("/products/:id", h.Get)
	return r
}

func listProducts(t *testing.T, r *gin.Engine, path string) []models.Product {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s status = %d", path, w.Code)
	}
	var out []models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return out
}

func TestListProductsHonorsLimit(t *testing.T) {
	r := productTestRouter(seededProductStore(5))

	if got := listProducts(t, r, "/products?limit=2"); len(got) != 2 {
		t.Errorf("limit=2 returned %d products", len(got))
	}
	if got := listProducts(t, r, "/products"); len(got) != 5 {
		t.Errorf("no limit returned %d products", len(got))
	}
}

func TestListProductsRejectsBadLimit(t *testing.T) {
	r := productTestRouter(seededProductStore(1))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products?limit=abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetProductBadIDIsClientError(t *testing.T) {
	r := productTestRouter(seededProductStore(1))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products/not-a-hex-id", nil))
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestGetProductUnknownIDIsEmptyBody(t *testing.T) {
	r := productTestRouter(seededProductStore(1))

	w := httptest.NewRecorder()
	path := "/products/" + primitive.NewObjectID().Hex()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if w.Body.String() != "{}" {
		t.Errorf("body = %s, want {}", w.Body.String())
	}
}
