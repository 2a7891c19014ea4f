package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
	"backend/internal/paynow"
)

// normalizeGatewayStatus maps a gateway-reported status string to the stored
// order status. "paid" is matched case-insensitively; anything else is a
// lower-cased passthrough because the gateway's vocabulary is not enumerated.
func normalizeGatewayStatus(status string) string {
	normalized := strings.ToLower(strings.TrimSpace(status))
	if normalized == "" {
		return "unknown"
	}
	return normalized
}

// applyGatewayStatus is the single reconciliation write both delivery
// channels converge on. It looks the order up by its poll URL (the callback
// carries nothing else); no matching order is a silent no-op, and repeated or
// out-of-order applications are safe because the write is a plain
// last-write-wins set.
func applyGatewayStatus(ctx context.Context, db *mongo.Database, pollURL, status string) error {
	pollURL = strings.TrimSpace(pollURL)
	if pollURL == "" {
		return nil
	}

	_, err := db.Collection("orders").UpdateOne(
		ctx,
		bson.M{"pollUrl": pollURL},
		bson.M{"$set": bson.M{"status": normalizeGatewayStatus(status)}},
	)
	return err
}

type gatewayResultPayload struct {
	PollURL string `json:"pollurl" form:"pollurl"`
	Status  string `json:"status" form:"status"`
}

// parseGatewayResult accepts the callback body in either of the encodings
// Paynow posts: form fields or a JSON object. A malformed body yields empty
// values, never an error.
func parseGatewayResult(c *gin.Context) gatewayResultPayload {
	contentType := c.ContentType()
	if strings.Contains(contentType, "json") {
		var payload gatewayResultPayload
		if err := json.NewDecoder(c.Request.Body).Decode(&payload); err != nil {
			log.Println("[PAYNOW-RESULT] malformed JSON callback body:", err)
			return gatewayResultPayload{}
		}
		return payload
	}

	return gatewayResultPayload{
		PollURL: c.PostForm("pollurl"),
		Status:  c.PostForm("status"),
	}
}

/*
POST /api/orders/paynow-result

Path A: the gateway posts the poll URL and a status at its own schedule,
at-least-once and possibly duplicated. The callback is always acknowledged
with an empty body; only a storage fault downgrades the acknowledgement to a
500 (still no body), inviting a redelivery.
*/
func PaynowResult(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload := parseGatewayResult(c)
		if payload.PollURL == "" {
			c.Status(http.StatusOK)
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := applyGatewayStatus(ctx, db, payload.PollURL, payload.Status); err != nil {
			log.Println("[PAYNOW-RESULT] status apply failed:", err)
			c.Status(http.StatusInternalServerError)
			return
		}

		c.Status(http.StatusOK)
	}
}

/*
GET /api/orders/:id/status

Path B: while an order is awaiting payment, a status read polls the gateway
and reconciles through the same applyGatewayStatus write as the callback. A
gateway fault is swallowed and the stored status returned unchanged; the
authoritative callback may still arrive later.
*/
func OrderStatus(db *mongo.Database, gw paynow.Gateway) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		if err := db.Collection("orders").FindOne(ctx, bson.M{"_id": orderID}).Decode(&order); err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if order.Status == models.OrderStatusAwaitingPayment && order.PollURL != "" && gw != nil {
			status, err := gw.CheckStatus(c.Request.Context(), order.PollURL)
			if err != nil {
				log.Println("[ORDER-STATUS] poll failed:", err)
			} else if status.Paid {
				applyCtx, applyCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer applyCancel()

				if err := applyGatewayStatus(applyCtx, db, order.PollURL, models.OrderStatusPaid); err != nil {
					log.Println("[ORDER-STATUS] status apply failed:", err)
				} else {
					order.Status = models.OrderStatusPaid
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{"status": order.Status})
	}
}
