package config

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
)

// devJWTSecret is only ever used when APP_ENV is not "production".
// Tokens signed with it are worthless the moment a real secret is set.
const devJWTSecret = "dev-insecure-jwt-secret"

// Config holds all runtime configuration. It is built once in main and
// passed by reference into the services that need it.
type Config struct {
	AppEnv      string
	AppPort     string
	DatabaseURL string
	RabbitMQURL string
	JWTSecret   string
}

// Load reads configuration from environment variables via Viper.
// A missing JWT_SECRET is fatal in production; in any other environment
// a development fallback is used so the service can run locally.
func Load() (*Config, error) {
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "weathermap.db")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("JWT_SECRET", "")
	viper.AutomaticEnv()

	cfg := &Config{
		AppEnv:      viper.GetString("APP_ENV"),
		AppPort:     viper.GetString("APP_PORT"),
		DatabaseURL: viper.GetString("DATABASE_URL"),
		RabbitMQURL: viper.GetString("RABBITMQ_URL"),
		JWTSecret:   viper.GetString("JWT_SECRET"),
	}

	if cfg.JWTSecret == "" {
		if cfg.AppEnv == "production" {
			return nil, fmt.Errorf("JWT_SECRET must be set when APP_ENV is production")
		}
		log.Println("WARNING: JWT_SECRET is not set, using insecure development default")
		cfg.JWTSecret = devJWTSecret
	}

	return cfg, nil
}
