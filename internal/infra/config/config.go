package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yucatanweather/app/internal/domain/catalog"
)

// Places source kinds.
const (
	PlacesEmbedded = "embedded"
	PlacesFile     = "file"
	PlacesS3       = "s3"
	PlacesPostgres = "postgres"
)

// Client store drivers.
const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
	StoreValkey = "valkey"
)

// Config aggregates runtime configuration for the server, the client and the
// dataset tooling.
type Config struct {
	HTTP       HTTPConfig       `yaml:"http"`
	Places     PlacesConfig     `yaml:"places"`
	Prediction PredictionConfig `yaml:"prediction"`
	Client     ClientConfig     `yaml:"client"`
	Dataset    DatasetConfig    `yaml:"dataset"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries of failed POST handlers.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// PlacesConfig selects where GET /api/places reads from.
type PlacesConfig struct {
	Source        string              `yaml:"source"`
	Path          string              `yaml:"path"`
	Postgres      PostgresConfig      `yaml:"postgres"`
	ObjectStorage ObjectStorageConfig `yaml:"objectStorage"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ObjectStorageConfig points at an S3-compatible object.
type ObjectStorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Key       string `yaml:"key"`
}

// PredictionConfig controls the predict endpoint.
type PredictionConfig struct {
	CacheTTL time.Duration `yaml:"cacheTtl"`
	Redis    RedisConfig   `yaml:"redis"`
}

// RedisConfig contains connection information for cache storage.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// ClientConfig drives the interactive client.
type ClientConfig struct {
	APIBaseURL      string        `yaml:"apiBaseUrl"`
	Timeout         time.Duration `yaml:"timeout"`
	DefaultCategory string        `yaml:"defaultCategory"`
	LogFile         string        `yaml:"logFile"`
	Store           StoreConfig   `yaml:"store"`
}

// StoreConfig selects the client key-value backend.
type StoreConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	Addr   string `yaml:"addr"`
	Prefix string `yaml:"prefix"`
}

// DatasetConfig drives the training data download.
type DatasetConfig struct {
	BaseURL   string        `yaml:"baseUrl"`
	Username  string        `yaml:"username"`
	Password  string        `yaml:"password"`
	Timeout   time.Duration `yaml:"timeout"`
	StartYear int           `yaml:"startYear"`
	EndYear   int           `yaml:"endYear"`
	LatMin    float64       `yaml:"latMin"`
	LatMax    float64       `yaml:"latMax"`
	LngMin    float64       `yaml:"lngMin"`
	LngMax    float64       `yaml:"lngMax"`
	Step      float64       `yaml:"step"`
	Output    string        `yaml:"output"`
	Labeled   string        `yaml:"labeled"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	return LoadFile(os.Getenv("CONFIG_PATH"))
}

// LoadFile is Load with an explicit file path. An empty path falls back to
// configs/config.yaml when present.
func LoadFile(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_ENABLED"); v != "" {
		cfg.HTTP.Retry.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RETRY_MAX_ATTEMPTS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.Retry.MaxAttempts = parsed
		}
	}
	if v := os.Getenv("HTTP_RETRY_BASE_BACKOFF"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.Retry.BaseBackoff = parsed
		}
	}
	if v := os.Getenv("PLACES_SOURCE"); v != "" {
		cfg.Places.Source = strings.ToLower(v)
	}
	if v := os.Getenv("PLACES_PATH"); v != "" {
		cfg.Places.Path = v
	}
	if v := os.Getenv("PLACES_POSTGRES_DSN"); v != "" {
		cfg.Places.Postgres.DSN = v
	}
	if v := os.Getenv("PLACES_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Places.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("PLACES_S3_ENDPOINT"); v != "" {
		cfg.Places.ObjectStorage.Endpoint = v
	}
	if v := os.Getenv("PLACES_S3_ACCESS_KEY"); v != "" {
		cfg.Places.ObjectStorage.AccessKey = v
	}
	if v := os.Getenv("PLACES_S3_SECRET_KEY"); v != "" {
		cfg.Places.ObjectStorage.SecretKey = v
	}
	if v := os.Getenv("PLACES_S3_BUCKET"); v != "" {
		cfg.Places.ObjectStorage.Bucket = v
	}
	if v := os.Getenv("PLACES_S3_KEY"); v != "" {
		cfg.Places.ObjectStorage.Key = v
	}
	if v := os.Getenv("PREDICTION_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Prediction.CacheTTL = parsed
		}
	}
	if v := os.Getenv("PREDICTION_REDIS_ENABLED"); v != "" {
		cfg.Prediction.Redis.Enabled = parseBool(v)
	}
	if v := os.Getenv("PREDICTION_REDIS_ADDR"); v != "" {
		cfg.Prediction.Redis.Addr = v
	}
	if v := os.Getenv("YUCATAN_API_BASE_URL"); v != "" {
		cfg.Client.APIBaseURL = v
	}
	if v := os.Getenv("YUCATAN_DEFAULT_CATEGORY"); v != "" {
		cfg.Client.DefaultCategory = v
	}
	if v := os.Getenv("YUCATAN_LOG_FILE"); v != "" {
		cfg.Client.LogFile = v
	}
	if v := os.Getenv("YUCATAN_STORE_DRIVER"); v != "" {
		cfg.Client.Store.Driver = strings.ToLower(v)
	}
	if v := os.Getenv("YUCATAN_STORE_PATH"); v != "" {
		cfg.Client.Store.Path = v
	}
	if v := os.Getenv("YUCATAN_STORE_ADDR"); v != "" {
		cfg.Client.Store.Addr = v
	}
	if v := os.Getenv("POWER_BASE_URL"); v != "" {
		cfg.Dataset.BaseURL = v
	}
	if v := os.Getenv("POWER_USERNAME"); v != "" {
		cfg.Dataset.Username = v
	}
	if v := os.Getenv("POWER_PASSWORD"); v != "" {
		cfg.Dataset.Password = v
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultConfig() *Config {
	dataDir := "."
	if home, err := os.UserHomeDir(); err == nil {
		dataDir = filepath.Join(home, ".yucatan")
	}
	return &Config{
		HTTP: HTTPConfig{
			Address:        ":8080",
			ReadTimeout:    5 * time.Second,
			WriteTimeout:   5 * time.Second,
			AllowedOrigins: []string{"*"},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 2,
				BaseBackoff: 100 * time.Millisecond,
			},
		},
		Places: PlacesConfig{
			Source: PlacesEmbedded,
			Postgres: PostgresConfig{
				MaxConns: 4,
			},
			ObjectStorage: ObjectStorageConfig{
				Key: "places.json",
			},
		},
		Prediction: PredictionConfig{
			CacheTTL: 10 * time.Minute,
		},
		Client: ClientConfig{
			APIBaseURL:      "http://localhost:8080",
			Timeout:         10 * time.Second,
			DefaultCategory: string(catalog.Archaeological),
			LogFile:         filepath.Join(dataDir, "yucatan.log"),
			Store: StoreConfig{
				Driver: StoreSQLite,
				Path:   filepath.Join(dataDir, "yucatan.db"),
				Prefix: "yucatan",
			},
		},
		Dataset: DatasetConfig{
			BaseURL:   "https://power.larc.nasa.gov/api/temporal/daily/point",
			Timeout:   60 * time.Second,
			StartYear: 1998,
			EndYear:   2022,
			LatMin:    18.0,
			LatMax:    21.0,
			LngMin:    -90.0,
			LngMax:    -87.0,
			Step:      0.5,
			Output:    "power_yucatan_25yrs.csv",
			Labeled:   "dataset_RN5.csv",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	switch c.Places.Source {
	case PlacesEmbedded:
	case PlacesFile:
		if strings.TrimSpace(c.Places.Path) == "" {
			return errors.New("places.path cannot be empty when source is file")
		}
	case PlacesS3:
		if c.Places.ObjectStorage.Endpoint == "" || c.Places.ObjectStorage.Bucket == "" || c.Places.ObjectStorage.Key == "" {
			return errors.New("places.objectStorage endpoint, bucket and key are required when source is s3")
		}
	case PlacesPostgres:
		if strings.TrimSpace(c.Places.Postgres.DSN) == "" {
			return errors.New("places.postgres.dsn cannot be empty when source is postgres")
		}
	default:
		return fmt.Errorf("places.source %q is not supported", c.Places.Source)
	}
	if c.Prediction.CacheTTL < 0 {
		return errors.New("prediction.cacheTtl cannot be negative")
	}
	if c.Prediction.Redis.Enabled && strings.TrimSpace(c.Prediction.Redis.Addr) == "" {
		return errors.New("prediction.redis.addr cannot be empty when redis cache is enabled")
	}
	if _, err := catalog.ParseCategory(c.Client.DefaultCategory); err != nil {
		return fmt.Errorf("client.defaultCategory: %w", err)
	}
	switch c.Client.Store.Driver {
	case StoreMemory:
	case StoreSQLite:
		if strings.TrimSpace(c.Client.Store.Path) == "" {
			return errors.New("client.store.path cannot be empty for sqlite")
		}
	case StoreValkey:
		if strings.TrimSpace(c.Client.Store.Addr) == "" {
			return errors.New("client.store.addr cannot be empty for valkey")
		}
	default:
		return fmt.Errorf("client.store.driver %q is not supported", c.Client.Store.Driver)
	}
	if c.Dataset.StartYear > c.Dataset.EndYear {
		return errors.New("dataset.startYear must not be after dataset.endYear")
	}
	if c.Dataset.Step <= 0 {
		return errors.New("dataset.step must be positive")
	}
	if c.Dataset.LatMin > c.Dataset.LatMax || c.Dataset.LngMin > c.Dataset.LngMax {
		return errors.New("dataset grid bounds are inverted")
	}
	return nil
}
