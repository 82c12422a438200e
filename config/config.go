package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Inventory persistence. "memory" runs a self-seeded in-process store,
	// "mongo" uses the MongoDB instance at DATABASE_URL.
	DatabaseDriver string `mapstructure:"DATABASE_DRIVER"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`

	// Redis configuration.
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB       int    `mapstructure:"REDIS_CACHE_DB"`
	RedisExportQueueDB int    `mapstructure:"REDIS_EXPORT_QUEUE_DB"`

	// Gemini API key for transcript summaries and note embeddings. Empty means
	// the deterministic lexical embedder is used and summaries are disabled.
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`

	// Local data directories.
	NotesDir       string `mapstructure:"NOTES_DIR"`
	TranscriptsDir string `mapstructure:"TRANSCRIPTS_DIR"`
	ExportsDir     string `mapstructure:"EXPORTS_DIR"`
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
	viper.SetDefault("DATABASE_DRIVER", "memory")
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_EXPORT_QUEUE_DB", 3)
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("NOTES_DIR", "./data/notes")
	viper.SetDefault("TRANSCRIPTS_DIR", "./data/transcripts")
	viper.SetDefault("EXPORTS_DIR", "./data/exports")

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
