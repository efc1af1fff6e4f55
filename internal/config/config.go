// Package config loads trafficpath settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config aggregates application configuration values.
type Config struct {
	Network NetworkConfig
	Export  ExportConfig
	Graph   GraphConfig
	Logging LoggingConfig
}

// NetworkConfig locates the road network.
type NetworkConfig struct {
	DataFile string // legacy text or YAML file
	Capacity int    // junction bound for loaded and generated networks
	Name     string // network name inside the graph database
}

// ExportConfig names the default export targets.
type ExportConfig struct {
	DOTFile string
	MapFile string
}

// GraphConfig describes connectivity to the Neo4j database.
type GraphConfig struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level  string
	Format string // console|json
}

const (
	defaultDataFile         = "city_data.txt"
	defaultCapacity         = 50
	defaultNetworkName      = "city"
	defaultDOTFile          = "graphviz.dot"
	defaultMapFile          = "map_india.html"
	defaultLoggingLevel     = "info"
	defaultLoggingFormat    = "console"
	defaultGraphMaxSessions = 10
)

// Load reads configuration from environment variables, applying defaults.
// Variables from envFiles (".env" when none are given) fill only keys the
// environment does not already set; missing files are ignored.
func Load(envFiles ...string) (Config, error) {
	if err := loadEnvFiles(envFiles); err != nil {
		return Config{}, err
	}

	cfg := Config{
		Network: NetworkConfig{
			DataFile: valueOrDefault("TRAFFIC_DATA_FILE", defaultDataFile),
			Name:     valueOrDefault("TRAFFIC_NETWORK", defaultNetworkName),
		},
		Export: ExportConfig{
			DOTFile: valueOrDefault("TRAFFIC_DOT_FILE", defaultDOTFile),
			MapFile: valueOrDefault("TRAFFIC_MAP_FILE", defaultMapFile),
		},
		Logging: LoggingConfig{
			Level:  valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format: valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
		},
		Graph: GraphConfig{
			URI:            os.Getenv("GRAPH_URI"),
			Database:       valueOrDefault("GRAPH_DATABASE", ""),
			Username:       os.Getenv("GRAPH_USERNAME"),
			Password:       os.Getenv("GRAPH_PASSWORD"),
			MaxConnections: parseIntWithDefault("GRAPH_MAX_CONNECTIONS", defaultGraphMaxSessions),
		},
	}

	capacity, err := parsePositive("TRAFFIC_CAPACITY", defaultCapacity)
	if err != nil {
		return Config{}, err
	}
	cfg.Network.Capacity = capacity

	if err := cfg.Logging.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects log formats other than console (alias text) and json.
func (l LoggingConfig) Validate() error {
	switch strings.ToLower(l.Format) {
	case "console", "text", "json":
		return nil
	default:
		return fmt.Errorf("invalid log format %q: want console or json", l.Format)
	}
}

func loadEnvFiles(files []string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load env file %s: %w", f, err)
		}
	}

	return nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}

func parsePositive(key string, fallback int) (int, error) {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s value %q: %w", key, v, err)
		}
		if n <= 0 {
			return 0, fmt.Errorf("%s must be positive, got %d", key, n)
		}
		return n, nil
	}
	return fallback, nil
}
