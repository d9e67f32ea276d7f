package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Storage
	DataPath       string `mapstructure:"DATA_PATH"`
	PDFStoragePath string `mapstructure:"PDF_STORAGE_PATH"`

	// Business
	NombreNegocio string `mapstructure:"NOMBRE_NEGOCIO"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8011)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_PATH", "./data")
	viper.SetDefault("PDF_STORAGE_PATH", "/tmp/acopiapp/pdfs")
	viper.SetDefault("NOMBRE_NEGOCIO", "Acopiapp")

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
