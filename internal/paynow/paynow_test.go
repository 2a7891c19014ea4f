package paynow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestSendParsesSuccessResponse(t *testing.T) {
	var received url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatalf("server failed to parse form: %v", err)
		}
		received = r.PostForm
		resp := url.Values{}
		resp.Set("status", "Ok")
		resp.Set("browserurl", "https://paynow.example/pay/123")
		resp.Set("pollurl", "https://paynow.example/poll/123")
		_, _ = w.Write([]byte(resp.Encode()))
	}))
	defer server.Close()

	client := NewClient("1001", "secret", "https://shop.example/shop", "https://shop.example/api/orders/paynow-result", server.URL)
	payment := client.CreatePayment("Order-abc", "customer@example.com")
	payment.Add("Premium Yoga Mat", 55)
	payment.Add("Organic Herbal Tea Collection", 28)

	resp, err := client.Send(context.Background(), payment)
	if err != nil {
		t.Fatalf("Send returned error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, got %+v", resp)
	}
	if resp.RedirectURL != "https://paynow.example/pay/123" {
		t.Fatalf("unexpected redirect url: %s", resp.RedirectURL)
	}
	if resp.PollURL != "https://paynow.example/poll/123" {
		t.Fatalf("unexpected poll url: %s", resp.PollURL)
	}

	if got := received.Get("amount"); got != "83.00" {
		t.Fatalf("expected amount=83.00, got %s", got)
	}
	if got := received.Get("reference"); got != "Order-abc" {
		t.Fatalf("expected reference=Order-abc, got %s", got)
	}
	if received.Get("hash") == "" {
		t.Fatal("expected request hash to be present")
	}
}

func TestSendSurfacesGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := url.Values{}
		resp.Set("status", "Error")
		resp.Set("error", "Invalid integration id")
		_, _ = w.Write([]byte(resp.Encode()))
	}))
	defer server.Close()

	client := NewClient("bad", "secret", "https://shop.example", "https://shop.example/result", server.URL)
	resp, err := client.Send(context.Background(), client.CreatePayment("Order-x", "a@b.c"))
	if err != nil {
		t.Fatalf("Send returned transport error: %v", err)
	}
	if resp.Success {
		t.Fatal("expected business failure")
	}
	if resp.Error != "Invalid integration id" {
		t.Fatalf("unexpected error message: %q", resp.Error)
	}
}

func TestSendReturnsErrorOnBadStatusCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient("1001", "secret", "https://shop.example", "https://shop.example/result", server.URL)
	if _, err := client.Send(context.Background(), client.CreatePayment("Order-x", "a@b.c")); err == nil {
		t.Fatal("expected transport error")
	}
}

func TestCheckStatus(t *testing.T) {
	tests := []struct {
		status string
		paid   bool
	}{
		{"Paid", true},
		{"paid", true},
		{"Created", false},
		{"Cancelled", false},
	}

	for _, tt := range tests {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			resp := url.Values{}
			resp.Set("status", tt.status)
			_, _ = w.Write([]byte(resp.Encode()))
		}))

		client := NewClient("1001", "secret", "", "", "")
		got, err := client.CheckStatus(context.Background(), server.URL)
		server.Close()
		if err != nil {
			t.Fatalf("CheckStatus(%s) returned error: %v", tt.status, err)
		}
		if got.Paid != tt.paid {
			t.Fatalf("CheckStatus(%s): expected paid=%v, got %+v", tt.status, tt.paid, got)
		}
		if got.Status != tt.status {
			t.Fatalf("CheckStatus(%s): expected status passthrough, got %q", tt.status, got.Status)
		}
	}
}
