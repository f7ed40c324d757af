package order

import (
	"github.com/rfapbd/jersey-store-backend/internal/product"
)

// JerseyDetail is one per-unit customization record; the order form keeps
// the list sized to the ordered quantity.
type JerseyDetail struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Size   string `json:"size"`
}

// ExtraFields carries the structured customization attached to an order.
type ExtraFields struct {
	DeliveryNote  string         `json:"deliveryNote,omitempty"`
	JerseyDetails []JerseyDetail `json:"jerseyDetails,omitempty"`
}

// TrackingStep is one stage of the fixed 5-step fulfillment checklist.
type TrackingStep struct {
	Step      string `json:"step"`
	Completed bool   `json:"completed"`
	Date      string `json:"date,omitempty"`
}

// Order represents a customer purchase stored under `orders/{id}`.
//
// Addons are snapshots copied from the product at order time; later product
// edits do not change them. ProductID is not referentially enforced — a
// deleted product leaves a dangling reference that views render as
// "Unknown Product". ID and CreatedAt are immutable after creation.
type Order struct {
	ID                string          `json:"id"`
	ProductID         string          `json:"productId"`
	CustomerName      string          `json:"customerName"`
	Phone             string          `json:"phone"`
	Address           string          `json:"address"`
	SenderNumber      string          `json:"senderNumber,omitempty"`
	Quantity          int             `json:"quantity"`
	ExtraFields       *ExtraFields    `json:"extraFields,omitempty"`
	Addons            []product.Addon `json:"addons,omitempty"`
	TotalPrice        int             `json:"totalPrice"`
	SecurityCharge    int             `json:"securityCharge"`
	PaymentScreenshot string          `json:"paymentScreenshot,omitempty"`
	Status            Status          `json:"status"`
	TrackingSteps     []TrackingStep  `json:"trackingSteps"`
	CreatedAt         string          `json:"createdAt"`
}
