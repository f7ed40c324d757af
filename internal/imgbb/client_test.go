package imgbb

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUpload(t *testing.T) {
	var gotKey, gotField string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		file, header, err := r.FormFile("image")
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotField = header.Filename
		io.Copy(io.Discard, file)
		w.Write([]byte(`{"data":{"url":"https://i.ibb.co/xyz/proof.png"},"success":true,"status":200}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	url, err := c.Upload(context.Background(), "proof.png", strings.NewReader("fake-image-bytes"))
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if url != "https://i.ibb.co/xyz/proof.png" {
		t.Fatalf("unexpected url %q", url)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key not sent as query parameter, got %q", gotKey)
	}
	if gotField != "proof.png" {
		t.Fatalf("unexpected filename %q", gotField)
	}
}

func TestUpload_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	_, err := c.Upload(context.Background(), "proof.png", strings.NewReader("x"))
	if !errors.Is(err, ErrUpload) {
		t.Fatalf("expected ErrUpload, got %v", err)
	}
	if !strings.Contains(err.Error(), "ছবি আপলোড করতে সমস্যা হয়েছে") {
		t.Fatalf("error should carry the localized message, got %q", err.Error())
	}
}

func TestUpload_MissingURLInResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"status":200}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	if _, err := c.Upload(context.Background(), "proof.png", strings.NewReader("x")); !errors.Is(err, ErrUpload) {
		t.Fatalf("expected ErrUpload, got %v", err)
	}
}
