package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Testimonial struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name    string             `bson:"name" json:"name"`
	Role    string             `bson:"role,omitempty" json:"role,omitempty"`
	Content string             `bson:"content" json:"content"`
	Rating  int                `bson:"rating" json:"rating"`
}
