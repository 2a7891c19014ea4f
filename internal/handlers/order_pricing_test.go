package handlers

import (
	"errors"
	"testing"
	"time"

	"backend/internal/models"
	"backend/internal/paynow"
)

func TestOrderTotal(t *testing.T) {
	items := []checkoutItemRequest{
		{ProductID: "p1", ProductName: "Yoga Mat", Price: 10.00, Quantity: 2},
		{ProductID: "p2", ProductName: "Herbal Tea", Price: 5.00, Quantity: 1},
	}
	if got := orderTotal(items); got != 25.00 {
		t.Fatalf("expected total 25.00, got %v", got)
	}
}

func TestBuildOrderFromCheckout(t *testing.T) {
	now := time.Now()
	req := checkoutRequest{
		CustomerName:  "Tatenda Mhizha",
		CustomerEmail: "tatenda@example.com",
		CustomerPhone: "+263771234567",
		Items: []checkoutItemRequest{
			{ProductID: "p1", ProductName: "Yoga Mat", Price: 10.00, Quantity: 2},
			{ProductID: "p2", ProductName: "Herbal Tea", Price: 5.00, Quantity: 1},
		},
	}

	order, err := buildOrderFromCheckout(req, now)
	if err != nil {
		t.Fatalf("buildOrderFromCheckout returned error: %v", err)
	}
	if order.Status != models.OrderStatusPending {
		t.Fatalf("expected status pending, got %s", order.Status)
	}
	if order.TotalAmount != 25.00 {
		t.Fatalf("expected total 25.00, got %v", order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	for _, item := range order.Items {
		if item.ID.IsZero() {
			t.Fatal("expected each item to carry its own id")
		}
	}
	if order.Items[0].Price != 10.00 || order.Items[0].Quantity != 2 {
		t.Fatalf("expected snapshot prices preserved, got %+v", order.Items[0])
	}
	if !order.CreatedAt.Equal(now) {
		t.Fatal("expected createdAt set from now")
	}
}

func TestBuildOrderFromCheckoutValidation(t *testing.T) {
	base := checkoutRequest{
		CustomerName:  "A",
		CustomerEmail: "a@b.c",
		CustomerPhone: "1",
		Items:         []checkoutItemRequest{{ProductID: "p", ProductName: "X", Price: 1, Quantity: 1}},
	}

	tests := []struct {
		name    string
		mutate  func(*checkoutRequest)
		wantErr error
	}{
		{"missing name", func(r *checkoutRequest) { r.CustomerName = "  " }, errMissingFields},
		{"missing email", func(r *checkoutRequest) { r.CustomerEmail = "" }, errMissingFields},
		{"missing phone", func(r *checkoutRequest) { r.CustomerPhone = "" }, errMissingFields},
		{"empty items", func(r *checkoutRequest) { r.Items = nil }, errMissingFields},
		{"zero quantity", func(r *checkoutRequest) { r.Items[0].Quantity = 0 }, errInvalidQuantity},
	}

	for _, tt := range tests {
		req := base
		req.Items = append([]checkoutItemRequest(nil), base.Items...)
		tt.mutate(&req)
		if _, err := buildOrderFromCheckout(req, time.Now()); !errors.Is(err, tt.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tt.name, tt.wantErr, err)
		}
	}
}

func TestResolveInitiationOutcomeSuccess(t *testing.T) {
	outcome := resolveInitiationOutcome(paynow.InitResponse{
		Success:     true,
		RedirectURL: "R1",
		PollURL:     "P1",
	}, nil)

	if outcome.Status != models.OrderStatusAwaitingPayment {
		t.Fatalf("expected awaiting_payment, got %s", outcome.Status)
	}
	if outcome.PollURL != "P1" || outcome.RedirectURL != "R1" {
		t.Fatalf("expected poll/redirect passthrough, got %+v", outcome)
	}
	if outcome.Message != "" {
		t.Fatalf("expected no advisory on success, got %q", outcome.Message)
	}
}

func TestResolveInitiationOutcomeBusinessFailure(t *testing.T) {
	outcome := resolveInitiationOutcome(paynow.InitResponse{
		Success: false,
		Error:   "declined",
	}, nil)

	if outcome.Status != models.OrderStatusPaymentFailed {
		t.Fatalf("expected payment_failed, got %s", outcome.Status)
	}
	if outcome.Message != "declined" {
		t.Fatalf("expected gateway error passthrough, got %q", outcome.Message)
	}
}

func TestResolveInitiationOutcomeBusinessFailureWithoutMessage(t *testing.T) {
	outcome := resolveInitiationOutcome(paynow.InitResponse{Success: false}, nil)

	if outcome.Status != models.OrderStatusPaymentFailed {
		t.Fatalf("expected payment_failed, got %s", outcome.Status)
	}
	if outcome.Message != msgInitiationFailed {
		t.Fatalf("expected fallback message, got %q", outcome.Message)
	}
}

func TestResolveInitiationOutcomeTransportFault(t *testing.T) {
	outcome := resolveInitiationOutcome(paynow.InitResponse{}, errors.New("connection refused"))

	if outcome.Status != models.OrderStatusPendingPayment {
		t.Fatalf("expected pending_payment, got %s", outcome.Status)
	}
	if outcome.Message != msgGatewayUnavailable {
		t.Fatalf("expected advisory message, got %q", outcome.Message)
	}
}
