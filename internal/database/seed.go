package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"backend/internal/models"
)

// SeedCatalog inserts the default storefront content when the services
// collection is empty. Repeat startups are no-ops.
func SeedCatalog(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := db.Collection("services").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("SeedCatalog: seeding catalog collections")

	services := []interface{}{
		models.Service{
			Name:             "Personal Fitness Training",
			Description:      "One-on-one sessions with our certified personal trainers. Get a customised workout plan designed to help you reach your specific fitness goals, whether it's weight loss, muscle building, or improving overall health.",
			ShortDescription: "Customised one-on-one training sessions with certified professionals.",
			Price:            45.00,
			Duration:         "60 min",
			Image:            "/images/service-fitness.png",
			Category:         "Fitness",
			Featured:         true,
		},
		models.Service{
			Name:             "Group Fitness Classes",
			Description:      "Join our energising group classes including HIIT, Zumba, aerobics, and circuit training. Perfect for those who thrive in a motivating group environment with expert-led routines.",
			ShortDescription: "High-energy group workouts led by expert instructors.",
			Price:            15.00,
			Duration:         "45 min",
			Image:            "/images/service-group.png",
			Category:         "Fitness",
		},
		models.Service{
			Name:             "Yoga & Meditation",
			Description:      "Find inner peace and flexibility with our yoga and meditation sessions. From beginner Hatha yoga to advanced Vinyasa flows, our instructors guide you through mindful practices for mental clarity and physical wellness.",
			ShortDescription: "Mindful yoga and meditation for inner peace and flexibility.",
			Price:            25.00,
			Duration:         "60 min",
			Image:            "/images/service-yoga.png",
			Category:         "Wellness",
			Featured:         true,
		},
		models.Service{
			Name:             "Spa & Massage Therapy",
			Description:      "Relax and rejuvenate with our premium spa treatments. Choose from Swedish massage, deep tissue therapy, hot stone treatments, and aromatherapy sessions designed to melt away stress.",
			ShortDescription: "Premium spa treatments and therapeutic massage sessions.",
			Price:            65.00,
			Duration:         "90 min",
			Image:            "/images/service-spa.png",
			Category:         "Wellness",
			Featured:         true,
		},
		models.Service{
			Name:             "Nutritional Counselling",
			Description:      "Work with our certified nutritionists to develop a personalised eating plan. Whether you want to lose weight, manage a health condition, or simply eat healthier, we'll guide you every step of the way.",
			ShortDescription: "Personalised meal plans and nutritional guidance.",
			Price:            35.00,
			Duration:         "45 min",
			Image:            "/images/service-nutrition.png",
			Category:         "Nutrition",
		},
		models.Service{
			Name:             "Lifestyle Coaching",
			Description:      "Our certified life coaches help you set and achieve meaningful goals. From career transitions to personal development, gain the tools and strategies needed to create the life you envision.",
			ShortDescription: "Goal-setting and personal development coaching.",
			Price:            55.00,
			Duration:         "60 min",
			Image:            "/images/service-coaching.png",
			Category:         "Coaching",
		},
	}

	products := []interface{}{
		models.Product{
			Name:        "Premium Essential Oils Set",
			Description: "A curated collection of 6 therapeutic essential oils including lavender, eucalyptus, peppermint, tea tree, lemon, and frankincense. Perfect for aromatherapy and self-care.",
			Price:       42.00,
			Image:       "/images/product-oils.png",
			Category:    "Wellness",
			InStock:     true,
		},
		models.Product{
			Name:        "Organic Protein Blend",
			Description: "Plant-based protein powder made from pea, rice, and hemp proteins. 25g protein per serving. Vanilla flavour. No artificial additives.",
			Price:       38.00,
			Image:       "/images/product-protein.png",
			Category:    "Nutrition",
			InStock:     true,
		},
		models.Product{
			Name:        "Premium Yoga Mat",
			Description: "Non-slip, eco-friendly yoga mat with alignment markings. Extra thick 6mm cushioning for joint comfort. Comes with carrying strap.",
			Price:       55.00,
			Image:       "/images/product-yogamat.png",
			Category:    "Fitness",
			InStock:     true,
		},
		models.Product{
			Name:        "Organic Herbal Tea Collection",
			Description: "A selection of 5 premium herbal teas: chamomile calm, green detox, ginger immunity, rooibos energy, and hibiscus beauty. 20 bags each.",
			Price:       28.00,
			Image:       "/images/product-tea.png",
			Category:    "Nutrition",
			InStock:     true,
		},
		models.Product{
			Name:        "Natural Skincare Set",
			Description: "Complete organic skincare routine with cleanser, toner, serum, and moisturiser. Made with natural ingredients. Suitable for all skin types.",
			Price:       68.00,
			Image:       "/images/product-skincare.png",
			Category:    "Wellness",
			InStock:     true,
		},
		models.Product{
			Name:        "Superfood Smoothie Bowl Mix",
			Description: "Blend of acai, spirulina, maca, and mixed berries. Just add your favourite milk and toppings for a nutritious breakfast bowl. 15 servings.",
			Price:       32.00,
			Image:       "/images/product-smoothie.png",
			Category:    "Nutrition",
			InStock:     true,
		},
	}

	testimonials := []interface{}{
		models.Testimonial{
			Name:    "Tatenda Mhizha",
			Role:    "Fitness Client",
			Content: "DMAC has completely transformed my approach to health. The personal training sessions are incredible, and I've lost 15kg in just 6 months. The team truly cares about your progress.",
			Rating:  5,
		},
		models.Testimonial{
			Name:    "Rumbidzai Choto",
			Role:    "Wellness Member",
			Content: "The yoga and spa services are world-class. I come here every week for my meditation sessions and leave feeling completely refreshed. It's my sanctuary in Harare.",
			Rating:  5,
		},
		models.Testimonial{
			Name:    "Farai Dube",
			Role:    "Nutrition Client",
			Content: "The nutritional counselling changed my life. My energy levels are through the roof and I feel healthier than ever. The team creates plans that actually work for real Zimbabwean diets.",
			Rating:  5,
		},
	}

	if _, err := db.Collection("services").InsertMany(ctx, services); err != nil {
		return err
	}
	if _, err := db.Collection("products").InsertMany(ctx, products); err != nil {
		return err
	}
	if _, err := db.Collection("testimonials").InsertMany(ctx, testimonials); err != nil {
		return err
	}

	log.Println("SeedCatalog: catalog seeded")
	return nil
}

// SeedAdmin creates the bootstrap admin account when the collection is empty
// and credentials were provided.
func SeedAdmin(db *mongo.Database, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := db.Collection("admins").CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Collection("admins").InsertOne(ctx, models.Admin{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	})
	if err != nil {
		return err
	}

	log.Println("SeedAdmin: bootstrap admin created:", email)
	return nil
}
