package config

import (
	"os"
	"strconv"
	"strings"

	"evident/internal/errors"

	"github.com/joho/godotenv"
)

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig
	Data     DataConfig
	Server   ServerConfig
	Database DatabaseConfig
	LogLevel string
}

// AnalysisConfig holds the defaults of column validation and batching
type AnalysisConfig struct {
	MaxLevelsPerCategory int
	MinCountPerLevel     int
	NJobs                int // -1 uses every CPU
	DropRareLevels       bool
}

// DataConfig holds input file locations
type DataConfig struct {
	MetadataFile       string
	AlphaDiversityFile string
	BetaDiversityFile  string
	IndividualIDColumn string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DatabaseConfig holds database connection settings. An empty URL
// disables persistence.
type DatabaseConfig struct {
	URL string
}

// Enabled reports whether a database is configured
func (d DatabaseConfig) Enabled() bool { return d.URL != "" }

// Load reads a .env file when present, then the environment, and
// validates the result
func Load() (*Config, error) {
	// a missing .env file is fine
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from environment variables only
func FromEnv() (*Config, error) {
	analysis, err := loadAnalysisConfig()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load analysis configuration")
	}

	config := &Config{
		Analysis: *analysis,
		Data:     *loadDataConfig(),
		Server:   *loadServerConfig(),
		Database: DatabaseConfig{URL: os.Getenv("DATABASE_URL")},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

func loadAnalysisConfig() (*AnalysisConfig, error) {
	maxLevels, err := getEnvInt("EVIDENT_MAX_LEVELS_PER_CATEGORY", 5)
	if err != nil {
		return nil, err
	}
	minCount, err := getEnvInt("EVIDENT_MIN_COUNT_PER_LEVEL", 3)
	if err != nil {
		return nil, err
	}
	nJobs, err := getEnvInt("EVIDENT_N_JOBS", 1)
	if err != nil {
		return nil, err
	}
	dropRare, err := getEnvBool("EVIDENT_DROP_RARE_LEVELS", false)
	if err != nil {
		return nil, err
	}
	return &AnalysisConfig{
		MaxLevelsPerCategory: maxLevels,
		MinCountPerLevel:     minCount,
		NJobs:                nJobs,
		DropRareLevels:       dropRare,
	}, nil
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		MetadataFile:       getEnvOrDefault("METADATA_FILE", ""),
		AlphaDiversityFile: getEnvOrDefault("ALPHA_DIVERSITY_FILE", ""),
		BetaDiversityFile:  getEnvOrDefault("BETA_DIVERSITY_FILE", ""),
		IndividualIDColumn: getEnvOrDefault("INDIVIDUAL_ID_COLUMN", ""),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "release"),
	}
}

func validateConfig(config *Config) error {
	if config.Analysis.MaxLevelsPerCategory < 2 {
		return errors.ConfigInvalid("EVIDENT_MAX_LEVELS_PER_CATEGORY must be at least 2")
	}
	if config.Analysis.MinCountPerLevel < 2 {
		return errors.ConfigInvalid("EVIDENT_MIN_COUNT_PER_LEVEL must be at least 2")
	}
	if config.Analysis.NJobs == 0 || config.Analysis.NJobs < -1 {
		return errors.ConfigInvalid("EVIDENT_N_JOBS must be positive or -1")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT must not be empty")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.ConfigInvalid(key + " must be an integer, got " + strconv.Quote(value))
	}
	return intValue, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.ConfigInvalid(key + " must be a boolean, got " + strconv.Quote(value))
	}
	return boolValue, nil
}
