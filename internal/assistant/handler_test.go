package assistant

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lgpharma/herbal-shop-backend/internal/catalog"
	"github.com/lgpharma/herbal-shop-backend/internal/order"
	"github.com/lgpharma/herbal-shop-backend/internal/storage"
)

func TestAssistantRoutes(t *testing.T) {
	catalogService := catalog.NewService(catalog.NewInMemoryRepository(catalog.Seed()))
	repo := order.NewStoreRepository(storage.NewMemoryStore())
	if err := repo.Append(order.Order{ID: "lg-1", Status: order.StatusPlaced}); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	service := NewService(catalogService, order.NewService(repo))

	app := fiber.New()
	NewHandler(service).RegisterRoutes(app)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/assistant/products", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for products, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "trace-1") {
		t.Fatalf("expected seeded product in response, got %s", string(b))
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/assistant/orders", nil))
	b2, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(b2), "lg-1") {
		t.Fatalf("expected seeded order in response, got %s", string(b2))
	}
}
