package analytics

import (
	"sort"
	"time"

	"github.com/rfapbd/jersey-store-backend/internal/order"
	"github.com/rfapbd/jersey-store-backend/internal/product"
)

// OrderSource is the slice of the order service analytics reads from.
type OrderSource interface {
	List() []order.Order
}

type Service struct {
	orders   OrderSource
	products product.ServiceInterface
}

func NewService(orders OrderSource, products product.ServiceInterface) *Service {
	return &Service{orders: orders, products: products}
}

// Summary is the admin dashboard snapshot for a trailing day window.
// Revenue counts delivered orders only.
type Summary struct {
	TotalRevenue      int           `json:"totalRevenue"`
	TotalOrders       int           `json:"totalOrders"`
	CompletedOrders   int           `json:"completedOrders"`
	PendingOrders     int           `json:"pendingOrders"`
	CancelledOrders   int           `json:"cancelledOrders"`
	ConversionRate    float64       `json:"conversionRate"`
	AverageOrderValue float64       `json:"averageOrderValue"`
	DailySales        []DailySale   `json:"dailySales"`
	TopProducts       []ProductSale `json:"topProducts"`
}

type DailySale struct {
	Date    string `json:"date"`
	Revenue int    `json:"revenue"`
	Orders  int    `json:"orders"`
}

type ProductSale struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Revenue  int    `json:"revenue"`
}

// Summarize computes the dashboard numbers over orders created within the
// last `days` days. Orders with unparseable timestamps are skipped.
func (s *Service) Summarize(days int, now time.Time) Summary {
	cutoff := now.AddDate(0, 0, -days)

	filtered := make([]order.Order, 0)
	createdAt := make(map[string]time.Time)
	for _, ord := range s.orders.List() {
		t, err := time.Parse(time.RFC3339, ord.CreatedAt)
		if err != nil || t.Before(cutoff) {
			continue
		}
		filtered = append(filtered, ord)
		createdAt[ord.ID] = t
	}

	sum := Summary{TotalOrders: len(filtered)}
	for _, ord := range filtered {
		switch ord.Status {
		case order.StatusDelivered:
			sum.CompletedOrders++
			sum.TotalRevenue += ord.TotalPrice
		case order.StatusPending:
			sum.PendingOrders++
		case order.StatusCancelled:
			sum.CancelledOrders++
		}
	}
	if sum.TotalOrders > 0 {
		sum.ConversionRate = float64(sum.CompletedOrders) / float64(sum.TotalOrders) * 100
	}
	if sum.CompletedOrders > 0 {
		sum.AverageOrderValue = float64(sum.TotalRevenue) / float64(sum.CompletedOrders)
	}

	// daily delivered sales over the trailing week
	sum.DailySales = make([]DailySale, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		entry := DailySale{Date: day.Format("Jan 2")}
		for _, ord := range filtered {
			if ord.Status != order.StatusDelivered {
				continue
			}
			t := createdAt[ord.ID]
			if sameDay(t, day) {
				entry.Revenue += ord.TotalPrice
				entry.Orders++
			}
		}
		sum.DailySales = append(sum.DailySales, entry)
	}

	sum.TopProducts = s.topProducts(filtered)
	return sum
}

// topProducts aggregates delivered revenue per product, best five first.
// A dangling productId is tolerated and labelled "Unknown Product".
func (s *Service) topProducts(orders []order.Order) []ProductSale {
	byProduct := map[string]*ProductSale{}
	for _, ord := range orders {
		if ord.Status != order.StatusDelivered {
			continue
		}
		sale, ok := byProduct[ord.ProductID]
		if !ok {
			sale = &ProductSale{ID: ord.ProductID}
			byProduct[ord.ProductID] = sale
		}
		sale.Quantity += ord.Quantity
		sale.Revenue += ord.TotalPrice
	}

	out := make([]ProductSale, 0, len(byProduct))
	for id, sale := range byProduct {
		if p, err := s.products.GetByID(id); err == nil {
			sale.Name = p.Name
		} else {
			sale.Name = "Unknown Product"
		}
		out = append(out, *sale)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Revenue > out[j].Revenue })
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
