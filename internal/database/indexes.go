package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	// The gateway result callback only carries the poll URL, so the lookup
	// must not scan the collection.
	pollURLIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "pollUrl", Value: 1}},
		Options: options.Index().
			SetName("pollUrl_index").
			SetPartialFilterExpression(bson.M{
				"pollUrl": bson.M{
					"$exists": true,
				},
			}),
	}

	log.Println("EnsureOrderIndexes: creating pollUrl_index index")
	_, err := indexes.CreateOne(ctx, pollURLIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: pollUrl index error:", err)
		return err
	}
	log.Println("EnsureOrderIndexes: pollUrl_index index created")
	return nil
}

func EnsureEventIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("events").Indexes()

	dateIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "date", Value: 1}},
		Options: options.Index().SetName("date_index"),
	}

	log.Println("EnsureEventIndexes: creating date_index index")
	_, err := indexes.CreateOne(ctx, dateIndex)
	if err != nil {
		log.Println("EnsureEventIndexes: date index error:", err)
		return err
	}
	log.Println("EnsureEventIndexes: date_index index created")
	return nil
}

func EnsureAdminIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("admins").Indexes()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	log.Println("EnsureAdminIndexes: creating email_unique index")
	_, err := indexes.CreateOne(ctx, emailIndex)
	if err != nil {
		log.Println("EnsureAdminIndexes: email index error:", err)
		return err
	}
	log.Println("EnsureAdminIndexes: email_unique index created")
	return nil
}
