package order

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/rfapbd/jersey-store-backend/internal/product"
)

type fakeUploader struct {
	url string
	err error
}

func (f fakeUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	return f.url, f.err
}

func newTestApp(up Uploader) (*fiber.App, *InMemoryRepository) {
	repo := NewInMemoryRepository(nil)
	products := product.NewService(product.NewInMemoryRepository(product.DemoProducts()))
	h := NewHandler(NewService(repo, products, 150, 110), up)

	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterProtectedRoutes(app)
	return app, repo
}

func orderForm(t *testing.T, orderJSON string, withScreenshot bool) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("order", orderJSON); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if withScreenshot {
		fw, err := w.CreateFormFile("screenshot", "proof.png")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		fw.Write([]byte("not-a-real-png"))
	}
	w.Close()
	return &buf, w.FormDataContentType()
}

func TestCreateOrderEndpoint(t *testing.T) {
	app, _ := newTestApp(fakeUploader{url: "https://i.ibb.co/abc/proof.png"})

	body, ct := orderForm(t, `{
		"productId": "p1",
		"customerName": "রাহিম",
		"phone": "01712345678",
		"address": "ঢাকা",
		"quantity": 2,
		"selectedAddons": ["সামনে নাম্বার প্রিন্ট"]
	}`, true)

	req := httptest.NewRequest("POST", "/api/v1/orders", body)
	req.Header.Set("Content-Type", ct)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", res.StatusCode)
	}

	var created Order
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.PaymentScreenshot != "https://i.ibb.co/abc/proof.png" {
		t.Fatalf("unexpected screenshot url %q", created.PaymentScreenshot)
	}
	if created.TotalPrice != 2600 {
		t.Fatalf("expected total 2600, got %d", created.TotalPrice)
	}
	if len(created.TrackingSteps) != 5 {
		t.Fatalf("expected 5 tracking steps, got %d", len(created.TrackingSteps))
	}
}

func TestCreateOrderEndpoint_MissingScreenshot(t *testing.T) {
	app, repo := newTestApp(fakeUploader{url: "unused"})

	body, ct := orderForm(t, `{"productId":"p1","customerName":"a","phone":"1","address":"b","quantity":1}`, false)
	req := httptest.NewRequest("POST", "/api/v1/orders", body)
	req.Header.Set("Content-Type", ct)
	res, _ := app.Test(req)

	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
	if len(repo.List()) != 0 {
		t.Fatal("no order should be created without a screenshot")
	}
}

func TestCreateOrderEndpoint_UploadFailure(t *testing.T) {
	app, repo := newTestApp(fakeUploader{err: errors.New("ছবি আপলোড করতে সমস্যা হয়েছে")})

	body, ct := orderForm(t, `{"productId":"p1","customerName":"a","phone":"1","address":"b","quantity":1}`, true)
	req := httptest.NewRequest("POST", "/api/v1/orders", body)
	req.Header.Set("Content-Type", ct)
	res, _ := app.Test(req)

	if res.StatusCode != fiber.StatusBadGateway {
		t.Fatalf("expected 502, got %d", res.StatusCode)
	}
	b, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(b), "ছবি আপলোড করতে সমস্যা হয়েছে") {
		t.Fatalf("expected localized upload error, got %s", b)
	}
	if len(repo.List()) != 0 {
		t.Fatal("no order should be created when the upload fails")
	}
}

func TestGetOrderEndpoint_NotFound(t *testing.T) {
	app, _ := newTestApp(fakeUploader{})

	req := httptest.NewRequest("GET", "/api/v1/order/nope", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", res.StatusCode)
	}
}

func TestQuoteEndpoint(t *testing.T) {
	app, _ := newTestApp(fakeUploader{})

	req := httptest.NewRequest("POST", "/api/v1/quote",
		strings.NewReader(`{"productId":"p1","quantity":2,"selectedAddons":["সামনে নাম্বার প্রিন্ট"]}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res.StatusCode)
	}

	var q Quote
	if err := json.NewDecoder(res.Body).Decode(&q); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if q.TotalPrice != 2600 || q.SecurityCharge != 300 || q.RemainingOnDelivery != 2410 {
		t.Fatalf("unexpected quote %+v", q)
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	app, repo := newTestApp(fakeUploader{url: "https://i.ibb.co/abc/proof.png"})

	body, ct := orderForm(t, `{"productId":"p1","customerName":"a","phone":"1","address":"b","quantity":1}`, true)
	req := httptest.NewRequest("POST", "/api/v1/orders", body)
	req.Header.Set("Content-Type", ct)
	res, _ := app.Test(req)
	var created Order
	json.NewDecoder(res.Body).Decode(&created)

	req2 := httptest.NewRequest("PATCH", "/api/v1/order/"+created.ID+"/status",
		strings.NewReader(`{"status":"delivered"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", res2.StatusCode)
	}

	stored, _ := repo.GetByID(created.ID)
	if stored.Status != StatusDelivered {
		t.Fatalf("expected delivered, got %s", stored.Status)
	}
	for i, step := range stored.TrackingSteps {
		if !step.Completed {
			t.Fatalf("expected step %d completed after delivered", i)
		}
	}

	// unknown status is rejected
	req3 := httptest.NewRequest("PATCH", "/api/v1/order/"+created.ID+"/status",
		strings.NewReader(`{"status":"refunded"}`))
	req3.Header.Set("Content-Type", "application/json")
	res3, _ := app.Test(req3)
	if res3.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", res3.StatusCode)
	}
}
