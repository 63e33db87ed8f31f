package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Best Time API
const BEST_TIME_ENDPOINT_BASE_V1 = "https://besttime.app/api/v1"
const BEST_TIME_SEARCH_POLL_INTERVAL_SECONDS = 2
const BEST_TIME_SEARCH_MAX_POLLS = 15

// Keys containing these values came from .env.example and are treated as
// unconfigured.
const BEST_TIME_PRIVATE_KEY_PLACEHOLDER = "your_private_key"
const BEST_TIME_PUBLIC_KEY_PLACEHOLDER = "your_public"

// Server
const DEFAULT_LISTEN_ADDR = ":8080"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const SEARCH_PROGRESS_RESPONSE_RESOURCE = "search_progress_response.json"
const DAY_FORECAST_RESPONSE_RESOURCE = "day_forecast_response.json"
const LIVE_FORECAST_RESPONSE_RESOURCE = "live_forecast_response.json"

// Config holds the runtime configuration loaded from the environment.
type Config struct {
	Env                string
	ListenAddr         string
	BestTimeBaseURL    string
	BestTimePrivateKey string
	BestTimePublicKey  string
}

// Load reads configuration from a .env file (if present) and the process
// environment. Missing BestTime keys are not fatal: the client reports
// itself unconfigured and the scoring endpoints degrade to prediction.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("[Config] Loaded environment from .env")
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "dev"),
		ListenAddr:         getEnv("LISTEN_ADDR", DEFAULT_LISTEN_ADDR),
		BestTimeBaseURL:    getEnv("BESTTIME_BASE_URL", BEST_TIME_ENDPOINT_BASE_V1),
		BestTimePrivateKey: os.Getenv("BESTTIME_API_KEY_PRIVATE"),
		BestTimePublicKey:  os.Getenv("BESTTIME_API_KEY_PUBLIC"),
	}

	if cfg.BestTimePrivateKey == "" {
		log.Println("[Config] BESTTIME_API_KEY_PRIVATE not set -- crowd lookups will fall back to prediction")
	}
	if cfg.BestTimePublicKey == "" {
		log.Println("[Config] BESTTIME_API_KEY_PUBLIC not set -- forecast queries will fall back to prediction")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// BaseDir returns the absolute path of the project root directory.
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	// Walk up to the nearest go.mod so resource paths resolve from any
	// package directory (go test runs with the package dir as cwd).
	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd
		}
		dir = parent
	}
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
