package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/middleware"
	"backend/internal/paynow"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}
	if err := database.EnsureEventIndexes(db); err != nil {
		log.Printf("event index warning: %v", err)
	}
	if err := database.EnsureAdminIndexes(db); err != nil {
		log.Printf("admin index warning: %v", err)
	}

	if err := database.SeedCatalog(db); err != nil {
		log.Printf("catalog seed warning: %v", err)
	}
	if err := database.SeedAdmin(db, config.AppEnv.AdminEmail, config.AppEnv.AdminPassword); err != nil {
		log.Printf("admin seed warning: %v", err)
	}

	var gateway paynow.Gateway
	if config.AppEnv.PaynowConfigured() {
		gateway = paynow.NewClient(
			config.AppEnv.PaynowIntegrationID,
			config.AppEnv.PaynowIntegrationKey,
			config.AppEnv.BaseURL+"/shop",
			config.AppEnv.BaseURL+"/api/orders/paynow-result",
			config.AppEnv.PaynowInitiateURL,
		)
		log.Println("Paynow gateway configured")
	} else {
		log.Println("Paynow gateway not configured; checkout will direct customers to an out-of-band payment channel")
	}

	r := gin.Default()
	r.Static("/uploads", config.AppEnv.UploadDir+"/uploads")

	api := r.Group("/api")
	{
		api.GET("/services", handlers.GetServices(db))
		api.GET("/services/:id", handlers.GetService(db))
		api.GET("/products", handlers.GetProducts(db))
		api.GET("/products/:id", handlers.GetProduct(db))
		api.GET("/testimonials", handlers.GetTestimonials(db))
		api.GET("/events", handlers.GetEvents(db))
		api.GET("/events/:id", handlers.GetEvent(db))

		api.POST("/orders/checkout", handlers.Checkout(db, gateway))
		api.POST("/orders/paynow-result", handlers.PaynowResult(db))
		api.GET("/orders/:id/status", handlers.OrderStatus(db, gateway))

		api.POST("/admin/login", handlers.AdminLogin(db, config.AppEnv.JWTSecret, config.AppEnv.AccessTokenTTL))
	}

	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.POST("/events", handlers.CreateEvent(db))
		admin.PUT("/events/:id", handlers.UpdateEvent(db))
		admin.DELETE("/events/:id", handlers.DeleteEvent(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
