package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cafe-registry-api/models"
)

// Config holds everything the service reads from its environment.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"cafes.db"`
	// APIKey is the shared secret required by the report-closed endpoint.
	APIKey  string `env:"API_KEY" envDefault:"TopSecretAPIKey"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`
}

// Load reads a .env file if one exists, then parses the environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// OpenDB opens the SQLite database at path and migrates the cafe table.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.Cafe{}); err != nil {
		return nil, err
	}
	return db, nil
}
