package handlers

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
)

// eventTimeLayout is the fixed-width zero-padded instant format events are
// stored in. Expiry is a plain string comparison against now formatted the
// same way; that is only valid while writes keep this exact shape, which
// validateEventSchedule enforces.
const eventTimeLayout = "2006-01-02 15:04"

// eventExpired reports whether the event's end instant is strictly before
// now. End instant exactly equal to now is not expired.
func eventExpired(date, endTime string, now time.Time) bool {
	date = strings.TrimSpace(date)
	endTime = strings.TrimSpace(endTime)
	if date == "" || endTime == "" {
		return false
	}
	return date+" "+endTime < now.Format(eventTimeLayout)
}

// sweepExpiredEvents removes events whose window has closed, freeing their
// media files first. File removals are best-effort and isolated per file; the
// records are batch-deleted afterwards regardless of individual removal
// outcomes, so a stuck file never keeps an expired event in the catalog.
// Safe to run concurrently with itself and with reads.
func sweepExpiredEvents(ctx context.Context, db *mongo.Database) error {
	cursor, err := db.Collection("events").Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return err
	}

	now := time.Now()
	expiredIDs := make([]primitive.ObjectID, 0)
	expiredImages := make([]string, 0)

	for _, event := range events {
		if eventExpired(event.Date, event.EndTime, now) {
			expiredIDs = append(expiredIDs, event.ID)
			expiredImages = append(expiredImages, event.Images...)
		}
	}

	if len(expiredIDs) == 0 {
		return nil
	}

	for _, image := range expiredImages {
		if err := safeDeleteUpload(image); err != nil {
			log.Println("[EVENT-SWEEP] image removal failed:", err)
		}
	}

	res, err := db.Collection("events").DeleteMany(ctx, bson.M{"_id": bson.M{"$in": expiredIDs}})
	if err != nil {
		return err
	}

	log.Printf("[EVENT-SWEEP] deleted %d expired events", res.DeletedCount)
	return nil
}
