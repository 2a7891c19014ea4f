package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI       string
	DBName         string
	JWTSecret      string
	AccessTokenTTL time.Duration

	PaynowIntegrationID  string
	PaynowIntegrationKey string
	PaynowInitiateURL    string

	// BaseURL is the externally reachable origin used to build the Paynow
	// return and result URLs.
	BaseURL   string
	UploadDir string

	// Bootstrap credentials for the first admin account. Only used when the
	// admins collection is empty.
	AdminEmail    string
	AdminPassword string
}

// PaynowConfigured reports whether both gateway credentials are present.
// Checkout still succeeds without them; payment is completed out of band.
func (c Config) PaynowConfigured() bool {
	return c.PaynowIntegrationID != "" && c.PaynowIntegrationKey != ""
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:             getEnvOrDefault("MONGO_URI", ""),
		DBName:               getEnvOrDefault("DB_NAME", "dmac"),
		JWTSecret:            getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL:       getDurationEnv("ACCESS_TOKEN_TTL", 60, time.Minute),
		PaynowIntegrationID:  getEnvOrDefault("PAYNOW_INTEGRATION_ID", ""),
		PaynowIntegrationKey: getEnvOrDefault("PAYNOW_INTEGRATION_KEY", ""),
		PaynowInitiateURL:    getEnvOrDefault("PAYNOW_INITIATE_URL", "https://www.paynow.co.zw/interface/initiatetransaction"),
		BaseURL:              getEnvOrDefault("BASE_URL", "http://localhost:8080"),
		UploadDir:            getEnvOrDefault("UPLOAD_DIR", "./public"),
		AdminEmail:           getEnvOrDefault("ADMIN_EMAIL", ""),
		AdminPassword:        getEnvOrDefault("ADMIN_PASSWORD", ""),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
