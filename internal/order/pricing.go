package order

import (
	"github.com/rfapbd/jersey-store-backend/internal/product"
)

// Total computes the order total: unit price times quantity, plus each
// selected addon charged once per unit. Selection is by addon name; names
// not present on the product are ignored, and the result does not depend on
// selection order.
func Total(price, quantity int, addons []product.Addon, selected []string) int {
	total := price * quantity
	chosen := make(map[string]bool, len(selected))
	for _, name := range selected {
		chosen[name] = true
	}
	for _, a := range addons {
		if chosen[a.Name] {
			total += a.Price * quantity
		}
	}
	return total
}

// SelectAddons returns the product addons whose names appear in selected,
// preserving product order. These become the order's price snapshots.
func SelectAddons(addons []product.Addon, selected []string) []product.Addon {
	chosen := make(map[string]bool, len(selected))
	for _, name := range selected {
		chosen[name] = true
	}
	out := make([]product.Addon, 0, len(selected))
	for _, a := range addons {
		if chosen[a.Name] {
			out = append(out, a)
		}
	}
	return out
}

// Quote is the payable breakdown shown on the payment page. The security
// charge is collected up front; the rest (plus delivery) is due on
// delivery.
type Quote struct {
	TotalPrice          int `json:"totalPrice"`
	SecurityCharge      int `json:"securityCharge"`
	DeliveryCharge      int `json:"deliveryCharge"`
	PayableNow          int `json:"payableNow"`
	RemainingOnDelivery int `json:"remainingOnDelivery"`
}

// NewQuote derives the breakdown from an order total.
func NewQuote(total, quantity, securityPerUnit, deliveryCharge int) Quote {
	security := securityPerUnit * quantity
	return Quote{
		TotalPrice:          total,
		SecurityCharge:      security,
		DeliveryCharge:      deliveryCharge,
		PayableNow:          security,
		RemainingOnDelivery: total + deliveryCharge - security,
	}
}
