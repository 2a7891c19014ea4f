package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
	"backend/internal/paynow"
)

/*
POST /api/orders/checkout

The order row is committed before the gateway is touched and is never rolled
back: every non-validation outcome past that point responds 200 with the
orderId, carrying either the redirect target or an advisory message. A nil
gateway means credentials are not configured.
*/
func Checkout(db *mongo.Database, gw paynow.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/orders/checkout"
		defer handlePanic(c, route)

		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "Missing required fields")
			return
		}

		order, err := buildOrderFromCheckout(req, time.Now())
		if err != nil {
			log.Printf("[%s] rejected submission: %v", route, err)
			respondWithError(c, http.StatusBadRequest, route, "Missing required fields")
			return
		}

		if err := ensureDBConnection(c.Request.Context(), db); err != nil {
			respondWithError(c, http.StatusServiceUnavailable, route, "database unavailable")
			return
		}

		insertCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("orders").InsertOne(insertCtx, order)
		if err != nil {
			log.Printf("[%s] order insert failed: %v", route, err)
			respondWithError(c, http.StatusInternalServerError, route, "Failed to process order")
			return
		}
		orderID, _ := res.InsertedID.(primitive.ObjectID)

		if gw == nil {
			transitionOrder(db, orderID, route, initiationOutcome{
				Status:  models.OrderStatusPendingPayment,
				Message: msgGatewayNotConfigured,
			})
			c.JSON(http.StatusOK, gin.H{
				"orderId": orderID.Hex(),
				"error":   msgGatewayNotConfigured,
			})
			return
		}

		payment := gw.CreatePayment("Order-"+orderID.Hex(), order.CustomerEmail)
		for _, item := range order.Items {
			payment.Add(item.ProductName, item.Price*float64(item.Quantity))
		}

		resp, sendErr := gw.Send(c.Request.Context(), payment)
		if sendErr != nil {
			log.Printf("[%s] gateway send fault: %v", route, sendErr)
		}

		outcome := resolveInitiationOutcome(resp, sendErr)
		transitionOrder(db, orderID, route, outcome)

		if outcome.Status == models.OrderStatusAwaitingPayment {
			c.JSON(http.StatusOK, gin.H{
				"orderId":     orderID.Hex(),
				"redirectUrl": outcome.RedirectURL,
				"pollUrl":     outcome.PollURL,
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"orderId": orderID.Hex(),
			"error":   outcome.Message,
		})
	}
}

// transitionOrder applies the post-initiation status. An update fault is
// logged, not surfaced: the order is already committed and the caller must
// still receive its id.
func transitionOrder(db *mongo.Database, orderID primitive.ObjectID, route string, outcome initiationOutcome) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	set := bson.M{"status": outcome.Status}
	if outcome.PollURL != "" {
		set["pollUrl"] = outcome.PollURL
		set["paynowReference"] = outcome.PollURL
	}

	if _, err := db.Collection("orders").UpdateByID(ctx, orderID, bson.M{"$set": set}); err != nil {
		log.Printf("[%s] status update to %s failed for %s: %v", route, outcome.Status, orderID.Hex(), err)
	}
}
