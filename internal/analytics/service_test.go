package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfapbd/jersey-store-backend/internal/order"
	"github.com/rfapbd/jersey-store-backend/internal/product"
)

func testOrders(now time.Time) []order.Order {
	stamp := func(daysAgo int) string {
		return now.AddDate(0, 0, -daysAgo).UTC().Format(time.RFC3339)
	}
	return []order.Order{
		{ID: "o1", ProductID: "p1", Quantity: 2, TotalPrice: 2600, Status: order.StatusDelivered, CreatedAt: stamp(1)},
		{ID: "o2", ProductID: "p1", Quantity: 1, TotalPrice: 1200, Status: order.StatusDelivered, CreatedAt: stamp(2)},
		{ID: "o3", ProductID: "ghost", Quantity: 1, TotalPrice: 500, Status: order.StatusDelivered, CreatedAt: stamp(3)},
		{ID: "o4", ProductID: "p1", Quantity: 1, TotalPrice: 1200, Status: order.StatusPending, CreatedAt: stamp(1)},
		{ID: "o5", ProductID: "p1", Quantity: 1, TotalPrice: 1200, Status: order.StatusCancelled, CreatedAt: stamp(4)},
		// outside the 30-day window, must be ignored entirely
		{ID: "o6", ProductID: "p1", Quantity: 1, TotalPrice: 9999, Status: order.StatusDelivered, CreatedAt: stamp(45)},
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	products := product.NewService(product.NewInMemoryRepository(product.DemoProducts()))
	svc := NewService(order.NewInMemoryRepository(testOrders(now)), products)

	sum := svc.Summarize(30, now)

	assert.Equal(t, 5, sum.TotalOrders)
	assert.Equal(t, 3, sum.CompletedOrders)
	assert.Equal(t, 1, sum.PendingOrders)
	assert.Equal(t, 1, sum.CancelledOrders)
	assert.Equal(t, 2600+1200+500, sum.TotalRevenue)
	assert.InDelta(t, 60.0, sum.ConversionRate, 0.001)
	assert.InDelta(t, float64(4300)/3, sum.AverageOrderValue, 0.001)
}

func TestSummarize_DailySales(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	products := product.NewService(product.NewInMemoryRepository(nil))
	svc := NewService(order.NewInMemoryRepository(testOrders(now)), products)

	sum := svc.Summarize(30, now)
	require.Len(t, sum.DailySales, 7)

	// yesterday holds the single delivered 2600৳ order; the pending one on
	// the same day contributes nothing
	yesterday := sum.DailySales[5]
	assert.Equal(t, "Aug 19", yesterday.Date)
	assert.Equal(t, 2600, yesterday.Revenue)
	assert.Equal(t, 1, yesterday.Orders)

	today := sum.DailySales[6]
	assert.Equal(t, 0, today.Revenue)
}

func TestSummarize_TopProducts(t *testing.T) {
	now := time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	products := product.NewService(product.NewInMemoryRepository(product.DemoProducts()))
	svc := NewService(order.NewInMemoryRepository(testOrders(now)), products)

	sum := svc.Summarize(30, now)
	require.Len(t, sum.TopProducts, 2)

	assert.Equal(t, "p1", sum.TopProducts[0].ID)
	assert.Equal(t, "কাস্টম জার্সি", sum.TopProducts[0].Name)
	assert.Equal(t, 3800, sum.TopProducts[0].Revenue)
	assert.Equal(t, 3, sum.TopProducts[0].Quantity)

	// dangling product reference is tolerated, not dropped
	assert.Equal(t, "ghost", sum.TopProducts[1].ID)
	assert.Equal(t, "Unknown Product", sum.TopProducts[1].Name)
}

func TestSummarize_EmptyWindow(t *testing.T) {
	products := product.NewService(product.NewInMemoryRepository(nil))
	svc := NewService(order.NewInMemoryRepository(nil), products)

	sum := svc.Summarize(7, time.Now())
	assert.Zero(t, sum.TotalRevenue)
	assert.Zero(t, sum.TotalOrders)
	assert.Zero(t, sum.ConversionRate)
	assert.Empty(t, sum.TopProducts)
	assert.Len(t, sum.DailySales, 7)
}
