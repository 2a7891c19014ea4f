package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order status values. Only "pending" orders are touched by checkout
// initiation; only "awaiting_payment" orders are touched by reconciliation.
// Any other gateway-reported status is stored as a lower-cased passthrough.
const (
	OrderStatusPending         = "pending"
	OrderStatusPendingPayment  = "pending_payment"
	OrderStatusAwaitingPayment = "awaiting_payment"
	OrderStatusPaymentFailed   = "payment_failed"
	OrderStatusPaid            = "paid"
)

// OrderItem is a line item snapshotted at checkout time. Name and Price are
// copied from the submitted cart, not re-read from the catalog, so later
// catalog edits never change a placed order.
type OrderItem struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	ProductID   string             `bson:"productId" json:"productId"`
	ProductName string             `bson:"productName" json:"productName"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
}

// Order is the persisted order document. Items are embedded, so the order and
// its line items commit atomically in a single insert.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CustomerName    string             `bson:"customerName" json:"customerName"`
	CustomerEmail   string             `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone   string             `bson:"customerPhone" json:"customerPhone"`
	Items           []OrderItem        `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	Status          string             `bson:"status" json:"status"`
	PollURL         string             `bson:"pollUrl,omitempty" json:"pollUrl,omitempty"`
	PaynowReference string             `bson:"paynowReference,omitempty" json:"paynowReference,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}
