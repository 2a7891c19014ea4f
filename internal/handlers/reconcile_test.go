package handlers

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNormalizeGatewayStatus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Paid", "paid"},
		{"PAID", "paid"},
		{"paid", "paid"},
		{"Cancelled", "cancelled"},
		{"Awaiting Delivery", "awaiting delivery"},
		{"  Created ", "created"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		if got := normalizeGatewayStatus(tt.in); got != tt.want {
			t.Fatalf("normalizeGatewayStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeGatewayStatusIdempotent(t *testing.T) {
	once := normalizeGatewayStatus("Paid")
	twice := normalizeGatewayStatus(once)
	if once != "paid" || twice != "paid" {
		t.Fatalf("expected repeated normalization to converge on paid, got %q then %q", once, twice)
	}
}

func TestParseGatewayResultForm(t *testing.T) {
	gin.SetMode(gin.TestMode)

	form := url.Values{}
	form.Set("pollurl", "https://paynow.example/poll/1")
	form.Set("status", "Paid")

	req := httptest.NewRequest("POST", "/api/orders/paynow-result", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	payload := parseGatewayResult(c)
	if payload.PollURL != "https://paynow.example/poll/1" {
		t.Fatalf("unexpected pollurl: %q", payload.PollURL)
	}
	if payload.Status != "Paid" {
		t.Fatalf("unexpected status: %q", payload.Status)
	}
}

func TestParseGatewayResultJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	body := `{"pollurl":"https://paynow.example/poll/2","status":"Cancelled"}`
	req := httptest.NewRequest("POST", "/api/orders/paynow-result", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	payload := parseGatewayResult(c)
	if payload.PollURL != "https://paynow.example/poll/2" {
		t.Fatalf("unexpected pollurl: %q", payload.PollURL)
	}
	if payload.Status != "Cancelled" {
		t.Fatalf("unexpected status: %q", payload.Status)
	}
}

func TestOrderStatusInvalidIDReturnsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	_, router := gin.CreateTestContext(recorder)
	// an unparseable id is rejected before any storage access
	router.GET("/api/orders/:id/status", OrderStatus(nil, nil))

	req := httptest.NewRequest("GET", "/api/orders/not-a-hex-id/status", nil)
	router.ServeHTTP(recorder, req)

	if recorder.Code != 404 {
		t.Fatalf("expected 404, got %d", recorder.Code)
	}
	if !strings.Contains(recorder.Body.String(), "Order not found") {
		t.Fatalf("unexpected body: %s", recorder.Body.String())
	}
}

func TestParseGatewayResultMalformedBodyIsSwallowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	req := httptest.NewRequest("POST", "/api/orders/paynow-result", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req

	payload := parseGatewayResult(c)
	if payload.PollURL != "" || payload.Status != "" {
		t.Fatalf("expected empty payload for malformed body, got %+v", payload)
	}
}
