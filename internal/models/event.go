package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxEventImages caps the media references stored per event.
const MaxEventImages = 5

// Event is an admin-managed upcoming event. Date is stored as "2006-01-02"
// and the times as "15:04"; the fixed-width zero-padded format is what makes
// the expiry sweep's lexicographic comparison valid, so it is enforced on
// write and never re-derived by parsing elsewhere.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Venue       string             `bson:"venue" json:"venue"`
	Date        string             `bson:"date" json:"date"`
	StartTime   string             `bson:"startTime" json:"startTime"`
	EndTime     string             `bson:"endTime" json:"endTime"`
	Category    string             `bson:"category" json:"category"`
	TicketPrice float64            `bson:"ticketPrice" json:"ticketPrice"`
	Capacity    int                `bson:"capacity" json:"capacity"`
	Images      StringList         `bson:"images" json:"images"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
