package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a bookable offering on the storefront. Duration is free-form
// ("60 min", "Customised") and may be empty.
type Service struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Description      string             `bson:"description" json:"description"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	Price            float64            `bson:"price" json:"price"`
	Duration         string             `bson:"duration,omitempty" json:"duration,omitempty"`
	Image            string             `bson:"image" json:"image"`
	Category         string             `bson:"category" json:"category"`
	Featured         bool               `bson:"featured" json:"featured"`
}
