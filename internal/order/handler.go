package order

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
)

// Uploader pushes the payment screenshot to the external image host.
// Satisfied by *imgbb.Client.
type Uploader interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}

type Handler struct {
	service  *Service
	uploader Uploader
}

func NewHandler(service *Service, uploader Uploader) *Handler {
	return &Handler{service: service, uploader: uploader}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/quote", h.quote)
	app.Post("/api/v1/orders", h.createOrder)
	app.Get("/api/v1/order/:id", h.getOrder)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Get("/api/v1/orders", h.getOrders)
	app.Patch("/api/v1/order/:id/status", h.updateStatus)
	app.Delete("/api/v1/order/:id", h.deleteOrder)
}

type quoteRequest struct {
	ProductID      string   `json:"productId"`
	Quantity       int      `json:"quantity"`
	SelectedAddons []string `json:"selectedAddons"`
}

func (h *Handler) quote(c *fiber.Ctx) error {
	payload := new(quoteRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	q, err := h.service.Quote(payload.ProductID, payload.Quantity, payload.SelectedAddons)
	if err != nil {
		switch err {
		case ErrUnknownProduct:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		case ErrInvalidQuantity:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
		}
	}
	return c.JSON(q)
}

// createOrder is the payment-submission step: a multipart request carrying
// the staged order as a JSON part ("order") and the payment screenshot as a
// file part ("screenshot"). The screenshot is uploaded first; if order
// creation then fails the hosted image is orphaned, there is no cleanup.
func (h *Handler) createOrder(c *fiber.Ctx) error {
	var in CreateInput
	if err := json.Unmarshal([]byte(c.FormValue("order")), &in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "order payload is required"})
	}
	if ves := validateCreateInput(&in); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	file, err := c.FormFile("screenshot")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "পেমেন্ট স্ক্রিনশট আপলোড করুন"})
	}
	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	defer f.Close()

	url, err := h.uploader.Upload(c.Context(), file.Filename, f)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"message": err.Error()})
	}
	in.PaymentScreenshot = url

	created, err := h.service.Create(in)
	if err != nil {
		if err == ErrUnknownProduct {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Product not found"})
		}
		fmt.Printf("warning: order create failed, screenshot %s orphaned: %v\n", url, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "অর্ডার তৈরি করতে সমস্যা হয়েছে"})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func validateCreateInput(in *CreateInput) map[string]string {
	errs := map[string]string{}
	if in.ProductID == "" {
		errs["productId"] = "productId is required"
	}
	if in.CustomerName == "" {
		errs["customerName"] = "customerName is required"
	}
	if in.Phone == "" {
		errs["phone"] = "phone is required"
	}
	if in.Address == "" {
		errs["address"] = "address is required"
	}
	if in.Quantity < 1 {
		errs["quantity"] = "quantity must be at least 1"
	}
	return errs
}

func (h *Handler) getOrder(c *fiber.Ctx) error {
	ord, err := h.service.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
	}
	return c.JSON(ord)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *fiber.Ctx) error {
	payload := new(statusUpdateRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	st, err := ParseStatus(payload.Status)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	ord, err := h.service.UpdateStatus(c.Params("id"), st)
	if err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "অর্ডার আপডেট করতে সমস্যা হয়েছে"})
	}
	return c.JSON(ord)
}

func (h *Handler) deleteOrder(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Params("id")); err != nil {
		if err == ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Order not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "অর্ডার ডিলিট করতে সমস্যা হয়েছে"})
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}
