package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"backend/internal/models"
)

func performCheckout(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	_, router := gin.CreateTestContext(recorder)
	// validation rejects these requests before any storage access
	router.POST("/api/orders/checkout", Checkout(nil, nil))

	req := httptest.NewRequest("POST", "/api/orders/checkout", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCheckoutRejectsMissingFields(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"customerName":"A","customerEmail":"a@b.c","customerPhone":""}`,
		`{"customerName":"A","customerEmail":"a@b.c","customerPhone":"1","items":[]}`,
		`{"customerName":"A","customerEmail":"a@b.c","customerPhone":"1","items":[{"productId":"p","productName":"X","price":5,"quantity":0}]}`,
	}

	for _, body := range bodies {
		recorder := performCheckout(t, body)
		if recorder.Code != 400 {
			t.Fatalf("body %s: expected 400, got %d", body, recorder.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
			t.Fatalf("body %s: invalid response json: %v", body, err)
		}
		if resp["error"] != "Missing required fields" {
			t.Fatalf("body %s: unexpected error message %q", body, resp["error"])
		}
	}
}

func TestCheckoutRejectsMalformedBody(t *testing.T) {
	recorder := performCheckout(t, `{not json`)
	if recorder.Code != 400 {
		t.Fatalf("expected 400, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Missing required fields") {
		t.Fatalf("unexpected body: %s", recorder.Body.String())
	}
}

func TestSplitRemovedImages(t *testing.T) {
	images := models.StringList{"uploads/events/a.png", "uploads/events/b.png", "uploads/events/c.png"}

	kept, removed := splitRemovedImages(images, []string{"uploads/events/b.png", "uploads/events/missing.png"})
	if len(kept) != 2 || kept[0] != "uploads/events/a.png" || kept[1] != "uploads/events/c.png" {
		t.Fatalf("unexpected kept set: %v", kept)
	}
	if len(removed) != 1 || removed[0] != "uploads/events/b.png" {
		t.Fatalf("unexpected removed set: %v", removed)
	}

	kept, removed = splitRemovedImages(images, nil)
	if len(kept) != 3 || removed != nil {
		t.Fatalf("expected no-op without removals, got kept=%v removed=%v", kept, removed)
	}
}
