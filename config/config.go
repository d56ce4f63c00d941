package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB  int    `mapstructure:"REDIS_STORE_DB"`

	// Storefront policy.
	DeliveryFee           int `mapstructure:"DELIVERY_FEE"`
	FreeDeliveryThreshold int `mapstructure:"FREE_DELIVERY_THRESHOLD"`
	MaxLineQuantity       int `mapstructure:"MAX_LINE_QUANTITY"`

	// Simulated backend latency in milliseconds, applied to login,
	// register, checkout and booking submission. Zero disables it.
	SimulatedLatencyMS int `mapstructure:"SIMULATED_LATENCY_MS"`

	// How long a deferred add-to-cart intent survives before login.
	PendingItemTTLMin int `mapstructure:"PENDING_ITEM_TTL_MIN"`

	// Path to the product catalog file; the inline fallback is used
	// when the file is missing or unreadable.
	ProductsFile string `mapstructure:"PRODUCTS_FILE"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_STORE_DB", 0)
	viper.SetDefault("DELIVERY_FEE", 50)
	viper.SetDefault("FREE_DELIVERY_THRESHOLD", 500)
	viper.SetDefault("MAX_LINE_QUANTITY", 0)
	viper.SetDefault("SIMULATED_LATENCY_MS", 0)
	viper.SetDefault("PENDING_ITEM_TTL_MIN", 30)
	viper.SetDefault("PRODUCTS_FILE", "data/products.json")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// SimulatedLatency returns the configured artificial delay.
func SimulatedLatency() time.Duration {
	return time.Duration(AppConfig.SimulatedLatencyMS) * time.Millisecond
}

// PendingItemTTL returns how long a deferred cart intent is kept.
func PendingItemTTL() time.Duration {
	return time.Duration(AppConfig.PendingItemTTLMin) * time.Minute
}
