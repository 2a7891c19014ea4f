package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/models"
)

// POST /api/admin/events (multipart)
func CreateEvent(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/events"
		defer handlePanic(c, route)

		input, err := parseMultipartEventRequest(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid multipart form")
			return
		}

		if input.Title == "" || input.Date == "" || input.StartTime == "" || input.EndTime == "" {
			respondWithError(c, http.StatusBadRequest, route, "title, date, startTime and endTime are required")
			return
		}

		if err := validateEventSchedule(input.Date, input.StartTime, input.EndTime); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		if len(input.ImageFiles) > models.MaxEventImages {
			respondWithError(c, http.StatusBadRequest, route,
				fmt.Sprintf("an event can have at most %d images", models.MaxEventImages))
			return
		}

		images := make(models.StringList, 0, len(input.ImageFiles))
		for _, file := range input.ImageFiles {
			path, err := saveEventImage(file)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			images = append(images, path)
		}

		event := models.Event{
			Title:       input.Title,
			Description: input.Description,
			Venue:       input.Venue,
			Date:        input.Date,
			StartTime:   input.StartTime,
			EndTime:     input.EndTime,
			Category:    input.Category,
			TicketPrice: input.TicketPrice,
			Capacity:    input.Capacity,
			Images:      images,
			CreatedAt:   time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("events").InsertOne(ctx, event)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if id, ok := res.InsertedID.(primitive.ObjectID); ok {
			event.ID = id
		}

		log.Printf("[%s] event created: %s", route, event.ID.Hex())
		c.JSON(http.StatusCreated, event)
	}
}

// PUT /api/admin/events/:id (multipart, partial update)
func UpdateEvent(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /api/admin/events/:id"
		defer handlePanic(c, route)

		eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Event
		if err := db.Collection("events").FindOne(ctx, bson.M{"_id": eventID}).Decode(&existing); err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		input, err := parseMultipartEventRequest(c)
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid multipart form")
			return
		}

		if input.TitleSet {
			existing.Title = input.Title
		}
		if input.DescriptionSet {
			existing.Description = input.Description
		}
		if input.VenueSet {
			existing.Venue = input.Venue
		}
		if input.DateSet {
			existing.Date = input.Date
		}
		if input.StartTimeSet {
			existing.StartTime = input.StartTime
		}
		if input.EndTimeSet {
			existing.EndTime = input.EndTime
		}
		if input.CategorySet {
			existing.Category = input.Category
		}
		if input.TicketPriceSet {
			existing.TicketPrice = input.TicketPrice
		}
		if input.CapacitySet {
			existing.Capacity = input.Capacity
		}

		if err := validateEventSchedule(existing.Date, existing.StartTime, existing.EndTime); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		kept, removed := splitRemovedImages(existing.Images, input.RemoveImages)

		// count check before any new file hits the disk
		if len(kept)+len(input.ImageFiles) > models.MaxEventImages {
			respondWithError(c, http.StatusBadRequest, route,
				fmt.Sprintf("an event can have at most %d images", models.MaxEventImages))
			return
		}

		for _, file := range input.ImageFiles {
			path, err := saveEventImage(file)
			if err != nil {
				respondWithError(c, http.StatusBadRequest, route, err.Error())
				return
			}
			kept = append(kept, path)
		}

		existing.Images = kept

		if _, err := db.Collection("events").ReplaceOne(ctx, bson.M{"_id": eventID}, existing); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		for _, image := range removed {
			if err := safeDeleteUpload(image); err != nil {
				log.Printf("[%s] image removal failed: %v", route, err)
			}
		}

		c.JSON(http.StatusOK, existing)
	}
}

// DELETE /api/admin/events/:id
func DeleteEvent(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "DELETE /api/admin/events/:id"
		defer handlePanic(c, route)

		eventID, err := primitive.ObjectIDFromHex(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var event models.Event
		if err := db.Collection("events").FindOne(ctx, bson.M{"_id": eventID}).Decode(&event); err != nil {
			if err == mongo.ErrNoDocuments {
				c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		for _, image := range event.Images {
			if err := safeDeleteUpload(image); err != nil {
				log.Printf("[%s] image removal failed: %v", route, err)
			}
		}

		if _, err := db.Collection("events").DeleteOne(ctx, bson.M{"_id": eventID}); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "event deleted"})
	}
}

// splitRemovedImages partitions the stored image list into kept entries and
// those named in removals.
func splitRemovedImages(images models.StringList, removals []string) (models.StringList, []string) {
	if len(removals) == 0 {
		return images, nil
	}

	removeSet := make(map[string]struct{}, len(removals))
	for _, r := range removals {
		removeSet[r] = struct{}{}
	}

	kept := make(models.StringList, 0, len(images))
	removed := make([]string, 0, len(removals))
	for _, image := range images {
		if _, ok := removeSet[image]; ok {
			removed = append(removed, image)
			continue
		}
		kept = append(kept, image)
	}
	return kept, removed
}
