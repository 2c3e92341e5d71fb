// Package config reads application settings from environment variables,
// optionally seeded from a .env file.
//
// Values are read once at startup and never validated here: a missing or
// unreachable database shows up on the first request that touches the
// store, not as a boot failure. CORS_ALLOW_ORIGINS defaults to "*" so the
// storefront can be served from any origin during development.
package config

import (
	// Loads .env into the process environment before Load runs.
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/viper"
)

// Config holds every runtime setting of the application.
type Config struct {
	Port             string
	DatabaseURL      string
	DatabaseName     string
	StoreBackend     string
	AMQPURL          string
	CORSAllowOrigins string
	LogLevel         string
}

// Load reads configuration from environment variables, applying defaults
// for everything except DATABASE_URL and AMQP_URL, which stay empty when
// unset so the store and the event publisher can fall back on their own.
func Load() Config {
	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DATABASE_NAME", "shomee")
	viper.SetDefault("STORE_BACKEND", "mongo")
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.AutomaticEnv()

	return Config{
		Port:             viper.GetString("PORT"),
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		DatabaseName:     viper.GetString("DATABASE_NAME"),
		StoreBackend:     viper.GetString("STORE_BACKEND"),
		AMQPURL:          viper.GetString("AMQP_URL"),
		CORSAllowOrigins: viper.GetString("CORS_ALLOW_ORIGINS"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
	}
}
