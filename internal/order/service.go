package order

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rfapbd/jersey-store-backend/internal/product"
)

var (
	ErrUnknownProduct  = errors.New("ordered product does not exist")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Service provides business logic for orders.
type Service struct {
	repo            Repository
	products        product.ServiceInterface
	securityPerUnit int
	deliveryCharge  int
}

func NewService(repo Repository, products product.ServiceInterface, securityPerUnit, deliveryCharge int) *Service {
	return &Service{
		repo:            repo,
		products:        products,
		securityPerUnit: securityPerUnit,
		deliveryCharge:  deliveryCharge,
	}
}

// CreateInput is the order as submitted from the payment step: the staged
// form data plus the uploaded payment-screenshot URL.
type CreateInput struct {
	ProductID         string       `json:"productId"`
	CustomerName      string       `json:"customerName"`
	Phone             string       `json:"phone"`
	Address           string       `json:"address"`
	SenderNumber      string       `json:"senderNumber"`
	Quantity          int          `json:"quantity"`
	ExtraFields       *ExtraFields `json:"extraFields"`
	SelectedAddons    []string     `json:"selectedAddons"`
	PaymentScreenshot string       `json:"paymentScreenshot"`
}

// Create assigns the generated id, timestamp and the fresh 5-step tracking
// checklist, recomputes the total from the product's current price, and
// snapshots the selected addons onto the record.
func (s *Service) Create(in CreateInput) (Order, error) {
	if in.Quantity < 1 {
		return Order{}, ErrInvalidQuantity
	}
	p, err := s.products.GetByID(in.ProductID)
	if err != nil {
		return Order{}, ErrUnknownProduct
	}

	now := time.Now()
	ord := Order{
		ID:                uuid.NewString(),
		ProductID:         p.ID,
		CustomerName:      in.CustomerName,
		Phone:             in.Phone,
		Address:           in.Address,
		SenderNumber:      in.SenderNumber,
		Quantity:          in.Quantity,
		ExtraFields:       in.ExtraFields,
		Addons:            SelectAddons(p.Addons, in.SelectedAddons),
		TotalPrice:        Total(p.Price, in.Quantity, p.Addons, in.SelectedAddons),
		SecurityCharge:    s.securityPerUnit * in.Quantity,
		PaymentScreenshot: in.PaymentScreenshot,
		Status:            StatusPending,
		TrackingSteps:     NewTrackingSteps(now),
		CreatedAt:         now.UTC().Format(time.RFC3339),
	}

	return s.repo.Create(ord)
}

// Quote prices an in-progress order without persisting anything. Used by
// the order form and payment page.
func (s *Service) Quote(productID string, quantity int, selectedAddons []string) (Quote, error) {
	if quantity < 1 {
		return Quote{}, ErrInvalidQuantity
	}
	p, err := s.products.GetByID(productID)
	if err != nil {
		return Quote{}, ErrUnknownProduct
	}
	total := Total(p.Price, quantity, p.Addons, selectedAddons)
	return NewQuote(total, quantity, s.securityPerUnit, s.deliveryCharge), nil
}

func (s *Service) Get(id string) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List() []Order {
	return s.repo.List()
}

// UpdateStatus sets the new status and marks the implied prefix of the
// tracking checklist completed. Transitions are unrestricted; completed
// steps are never reverted.
func (s *Service) UpdateStatus(id string, st Status) (Order, error) {
	ord, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	steps := ApplyStatus(ord.TrackingSteps, st, time.Now())
	if err := s.repo.UpdateStatus(id, st, steps); err != nil {
		return Order{}, err
	}
	ord.Status = st
	ord.TrackingSteps = steps
	return ord, nil
}

func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}
