package config

import (
	"os"
	"time"
)

type Config struct {
	Server     ServerConfig
	Mongo      MongoConfig
	Firebase   FirebaseConfig
	Stripe     StripeConfig
	Cloudinary CloudinaryConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type MongoConfig struct {
	URI      string
	Database string
}

type FirebaseConfig struct {
	// ServiceAccount is the base64-encoded service-account JSON blob.
	ServiceAccount string
}

type StripeConfig struct {
	SecretKey string
	// SiteURL is the public origin the checkout success/cancel pages live on.
	SiteURL string
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8080"),
			Env:          getenv("GIN_ENV", "development"),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Mongo: MongoConfig{
			URI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getenv("DB_NAME", "shopline"),
		},
		Firebase: FirebaseConfig{
			ServiceAccount: os.Getenv("FIREBASE_SERVICE_ACCOUNT"),
		},
		Stripe: StripeConfig{
			SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
			SiteURL:   getenv("SITE_URL", "http://localhost:3000"),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		},
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
