package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	APIBaseURL string `mapstructure:"API_BASE_URL"`
	Env        string `mapstructure:"ENV"`
	LogLevel   string `mapstructure:"LOG_LEVEL"`

	// Outbound HTTP behaviour.
	HTTPTimeoutSeconds int `mapstructure:"HTTP_TIMEOUT_SECONDS"`
	MaxRequestsPerMin  int `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Session persistence. Backend is "file" (default) or "redis".
	SessionBackend string `mapstructure:"SESSION_BACKEND"`
	SessionFile    string `mapstructure:"SESSION_FILE"`

	// Redis configuration, used when SESSION_BACKEND=redis.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB int    `mapstructure:"REDIS_SESSION_DB"`

	// Doctor directory cache.
	DirectoryCacheSize       int `mapstructure:"DIRECTORY_CACHE_SIZE"`
	DirectoryCacheTTLSeconds int `mapstructure:"DIRECTORY_CACHE_TTL_SECONDS"`
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
	viper.SetDefault("API_BASE_URL", "http://localhost:10000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("HTTP_TIMEOUT_SECONDS", 10)
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 120)
	viper.SetDefault("SESSION_BACKEND", "file")
	viper.SetDefault("SESSION_FILE", "")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_SESSION_DB", 1)
	viper.SetDefault("DIRECTORY_CACHE_SIZE", 32)
	viper.SetDefault("DIRECTORY_CACHE_TTL_SECONDS", 30)

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
