package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	Version     string
	ServiceName string

	// Mod tier catalog
	CatalogPath      string
	CatalogCacheSize int

	// Batch simulation
	SimWorkers     int
	SimQueueSize   int
	SimSeed        uint64
	SimMaxEpisodes int

	// HTTP
	MaxBodyBytes    int64
	ShutdownTimeout time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:         getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:        getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment:      getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:          getEnv("VERSION", DefaultVersion),
		ServiceName:      getEnv("SERVICE_NAME", DefaultServiceName),
		CatalogPath:      getEnv("CATALOG_PATH", ConfigPathModCatalog),
		CatalogCacheSize: getEnvAsInt("CATALOG_CACHE_SIZE", DefaultCatalogCacheSize),
		SimWorkers:       getEnvAsInt("SIM_WORKERS", DefaultSimWorkers),
		SimQueueSize:     getEnvAsInt("SIM_QUEUE_SIZE", DefaultSimQueueSize),
		SimSeed:          getEnvAsUint64("SIM_SEED", DefaultSimSeed),
		SimMaxEpisodes:   getEnvAsInt("SIM_MAX_EPISODES", DefaultSimMaxEpisodes),
		MaxBodyBytes:     int64(getEnvAsInt("MAX_BODY_BYTES", DefaultMaxBodyBytes)),
		ShutdownTimeout:  getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),
	}

	portStr := getEnv("PORT", DefaultPort)
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.CatalogPath == "" {
		return nil, fmt.Errorf("CATALOG_PATH must not be empty")
	}
	if cfg.SimWorkers <= 0 {
		return nil, fmt.Errorf("SIM_WORKERS must be positive, got %d", cfg.SimWorkers)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when it
// is unset or malformed
func getEnvAsInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvAsDuration parses a Go duration string such as "10s"
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return defaultValue
	}
	return d
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
