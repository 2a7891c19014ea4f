package handlers

import (
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"backend/internal/models"
	"backend/internal/paynow"
)

// Advisory messages returned alongside a successfully created order when
// payment could not be completed automatically. These are not errors: the
// checkout itself succeeded.
const (
	msgGatewayNotConfigured = "Payment gateway not configured. Please contact us via WhatsApp to complete your order."
	msgGatewayUnavailable   = "Payment gateway unavailable. Please contact us via WhatsApp to complete your order."
	msgInitiationFailed     = "Payment initiation failed. Please try again."
)

type checkoutItemRequest struct {
	ProductID   string  `json:"productId"`
	ProductName string  `json:"productName"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

type checkoutRequest struct {
	CustomerName  string                `json:"customerName"`
	CustomerEmail string                `json:"customerEmail"`
	CustomerPhone string                `json:"customerPhone"`
	Items         []checkoutItemRequest `json:"items"`
}

var (
	errMissingFields   = errors.New("missing required fields")
	errInvalidQuantity = errors.New("quantity must be at least 1")
)

// orderTotal computes the amount from the submitted snapshot values. The
// catalog is deliberately not re-queried: the price shown at cart time is
// authoritative.
func orderTotal(items []checkoutItemRequest) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

func buildOrderFromCheckout(req checkoutRequest, now time.Time) (models.Order, error) {
	name := strings.TrimSpace(req.CustomerName)
	email := strings.TrimSpace(req.CustomerEmail)
	phone := strings.TrimSpace(req.CustomerPhone)

	if name == "" || email == "" || phone == "" || len(req.Items) == 0 {
		return models.Order{}, errMissingFields
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity < 1 {
			return models.Order{}, errInvalidQuantity
		}
		items = append(items, models.OrderItem{
			ID:          primitive.NewObjectID(),
			ProductID:   item.ProductID,
			ProductName: strings.TrimSpace(item.ProductName),
			Price:       item.Price,
			Quantity:    item.Quantity,
		})
	}

	return models.Order{
		CustomerName:  name,
		CustomerEmail: email,
		CustomerPhone: phone,
		Items:         items,
		TotalAmount:   orderTotal(req.Items),
		Status:        models.OrderStatusPending,
		CreatedAt:     now,
	}, nil
}

// initiationOutcome is the order-status transition decided by a gateway
// initiation attempt. Message carries the advisory or gateway error when the
// payment did not reach awaiting_payment.
type initiationOutcome struct {
	Status      string
	PollURL     string
	RedirectURL string
	Message     string
}

// resolveInitiationOutcome maps a gateway response to a status transition:
// transport faults downgrade to pending_payment, business rejections become
// payment_failed, and acceptance moves the order to awaiting_payment with the
// poll handle stored.
func resolveInitiationOutcome(resp paynow.InitResponse, err error) initiationOutcome {
	if err != nil {
		return initiationOutcome{
			Status:  models.OrderStatusPendingPayment,
			Message: msgGatewayUnavailable,
		}
	}

	if resp.Success {
		return initiationOutcome{
			Status:      models.OrderStatusAwaitingPayment,
			PollURL:     resp.PollURL,
			RedirectURL: resp.RedirectURL,
		}
	}

	message := strings.TrimSpace(resp.Error)
	if message == "" {
		message = msgInitiationFailed
	}
	return initiationOutcome{
		Status:  models.OrderStatusPaymentFailed,
		Message: message,
	}
}
