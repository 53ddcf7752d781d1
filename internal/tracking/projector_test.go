package tracking

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/lgpharma/herbal-shop-backend/internal/order"
	"github.com/lgpharma/herbal-shop-backend/internal/storage"
)

func shippedOrder() order.Order {
	return order.Order{
		ID:                "lg-7",
		Date:              "2026-09-01T10:30:00Z",
		Status:            order.StatusShipped,
		TrackingID:        "TRK-ABC",
		DeliveryPartner:   "Delhivery Express",
		EstimatedDelivery: "6 Sep 2026",
		Timeline: []order.TimelineEntry{
			{Status: order.StatusPacked, Date: "2 Sep 2026", Time: "9:15 AM", Location: "Varanasi warehouse"},
			{Status: order.StatusShipped, Date: "3 Sep 2026", Time: "6:40 PM", Location: "Lucknow hub"},
		},
	}
}

func TestProject_Shipped(t *testing.T) {
	view := Project(shippedOrder())

	require.Equal(t, 60, view.Percent)
	require.False(t, view.Cancelled)
	require.Len(t, view.Stages, 5)

	completed := map[order.Status]bool{}
	for _, stage := range view.Stages {
		completed[stage.Status] = stage.Completed
	}
	require.True(t, completed[order.StatusPlaced])
	require.True(t, completed[order.StatusPacked])
	require.True(t, completed[order.StatusShipped])
	require.False(t, completed[order.StatusOutForDelivery])
	require.False(t, completed[order.StatusDelivered])

	// only the order's status stage is current
	for _, stage := range view.Stages {
		require.Equal(t, stage.Status == order.StatusShipped, stage.Current)
	}
}

func TestProject_Annotations(t *testing.T) {
	view := Project(shippedOrder())

	// explicit timeline entries win
	require.Equal(t, "Lucknow hub", view.Stages[2].Location)
	require.Equal(t, "9:15 AM", view.Stages[1].Time)

	// Placed falls back to the creation date, Delivered to the estimate
	require.Equal(t, "2026-09-01T10:30:00Z", view.Stages[0].Date)
	require.Equal(t, "6 Sep 2026", view.Stages[4].Date)

	// stages without an entry or a fallback stay unannotated
	require.Empty(t, view.Stages[3].Date)
}

func TestProject_Idempotent(t *testing.T) {
	ord := shippedOrder()
	require.Equal(t, Project(ord), Project(ord))
}

func TestProject_PercentTable(t *testing.T) {
	cases := map[order.Status]int{
		order.StatusPlaced:         10,
		order.StatusPacked:         35,
		order.StatusShipped:        60,
		order.StatusOutForDelivery: 85,
		order.StatusDelivered:      100,
	}
	for status, percent := range cases {
		view := Project(order.Order{ID: "x", Status: status})
		require.Equal(t, percent, view.Percent, "status %s", status)
	}
}

func TestProject_Cancelled(t *testing.T) {
	view := Project(order.Order{ID: "x", Status: order.StatusCancelled})
	require.True(t, view.Cancelled)
	require.Equal(t, 0, view.Percent)
	for _, stage := range view.Stages {
		require.False(t, stage.Completed)
		require.False(t, stage.Current)
	}
}

func TestTrackingRoute(t *testing.T) {
	repo := order.NewStoreRepository(storage.NewMemoryStore())
	require.NoError(t, repo.Append(shippedOrder()))
	orderService := order.NewService(repo)

	app := fiber.New()
	NewHandler(orderService).RegisterRoutes(app)

	res, _ := app.Test(httptest.NewRequest("GET", "/api/v1/orders/lg-7/tracking", nil))
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for tracking view, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), `"percent":60`) {
		t.Fatalf("expected percent 60 in view, got %s", string(b))
	}

	res2, _ := app.Test(httptest.NewRequest("GET", "/api/v1/orders/unknown/tracking", nil))
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for unknown order, got %d", res2.StatusCode)
	}
}
