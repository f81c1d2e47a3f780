package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "AGENTCARD"

// Load reads configs/config.yaml (if present), then environment overrides
// such as AGENTCARD_SERVER_PORT.
func Load() (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}
	return unmarshal(v)
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	v := newViper()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	// AutomaticEnv only applies to keys viper already knows about.
	for _, k := range []string{
		"server.port", "server.mode",
		"assets.root", "assets.http_timeout",
		"assets.breaker.max_failures", "assets.breaker.timeout", "assets.breaker.interval",
		"cache.enabled", "cache.address", "cache.password", "cache.db", "cache.ttl",
		"render.width", "render.height", "render.max_width", "render.max_height",
		"render.default_template", "render.timeout",
		"logging.level", "logging.format",
		"tracing.enabled", "tracing.exporter",
		"rate_limit.disabled", "rate_limit.requests_per_min", "rate_limit.burst",
	} {
		_ = v.BindEnv(k)
	}
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Default returns the configuration used when no file or env is present.
func Default() *Config {
	var cfg Config
	applyDefaults(&cfg)
	return &cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}

	if cfg.Assets.Root == "" {
		cfg.Assets.Root = "public"
	}
	if cfg.Assets.HTTPTimeout == 0 {
		cfg.Assets.HTTPTimeout = 10 * time.Second
	}
	if cfg.Assets.Breaker.MaxFailures == 0 {
		cfg.Assets.Breaker.MaxFailures = 5
	}
	if cfg.Assets.Breaker.Timeout == 0 {
		cfg.Assets.Breaker.Timeout = 30 * time.Second
	}
	if cfg.Assets.Breaker.Interval == 0 {
		cfg.Assets.Breaker.Interval = 60 * time.Second
	}

	if cfg.Cache.Address == "" {
		cfg.Cache.Address = "localhost:6379"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = time.Hour
	}

	// 3.5in x 2in at 300dpi
	if cfg.Render.Width == 0 {
		cfg.Render.Width = 1050
	}
	if cfg.Render.Height == 0 {
		cfg.Render.Height = 600
	}
	if cfg.Render.MaxWidth == 0 {
		cfg.Render.MaxWidth = 4200
	}
	if cfg.Render.MaxHeight == 0 {
		cfg.Render.MaxHeight = 4200
	}
	if cfg.Render.DefaultTemplate == "" {
		cfg.Render.DefaultTemplate = "minimal"
	}
	if cfg.Render.Timeout == 0 {
		cfg.Render.Timeout = 30 * time.Second
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.RateLimit.RequestsPerMin <= 0 {
		cfg.RateLimit.RequestsPerMin = 120
	}
	if cfg.RateLimit.Burst == 0 {
		cfg.RateLimit.Burst = 10
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Render.Width <= 0 || cfg.Render.Height <= 0 {
		return fmt.Errorf("render.width and render.height must be positive")
	}
	if cfg.Render.Width > cfg.Render.MaxWidth || cfg.Render.Height > cfg.Render.MaxHeight {
		return fmt.Errorf("render size %dx%d exceeds max %dx%d",
			cfg.Render.Width, cfg.Render.Height, cfg.Render.MaxWidth, cfg.Render.MaxHeight)
	}
	if cfg.Cache.Enabled && cfg.Cache.Address == "" {
		return fmt.Errorf("cache.address is required when cache is enabled")
	}
	switch cfg.Tracing.Exporter {
	case "", "noop", "stdout":
	default:
		return fmt.Errorf("tracing.exporter %q is not supported", cfg.Tracing.Exporter)
	}
	return nil
}
