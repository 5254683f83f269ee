package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Network
	AppPort string `envconfig:"APP_PORT" default:"8000"`
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	// Auth
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	// AI provider
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" required:"true"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.0-flash-lite"`
	// Uploads
	UploadDir    string `envconfig:"UPLOAD_DIR" default:"./uploads"`
	PublicURL    string `envconfig:"PUBLIC_URL" default:"http://localhost:8000"`
	S3BucketName string `envconfig:"S3_BUCKET_NAME"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
