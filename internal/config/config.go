package config

import "time"

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Assets    AssetsConfig    `mapstructure:"assets"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Render    RenderConfig    `mapstructure:"render"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // gin mode: debug, release, test
}

// AssetsConfig locates template background files and remote photos.
type AssetsConfig struct {
	Root        string        `mapstructure:"root"`
	HTTPTimeout time.Duration `mapstructure:"http_timeout"`
	Breaker     BreakerConfig `mapstructure:"breaker"`
}

type BreakerConfig struct {
	MaxFailures uint32        `mapstructure:"max_failures"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Interval    time.Duration `mapstructure:"interval"`
}

type CacheConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Address  string        `mapstructure:"address"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type RenderConfig struct {
	Width           int           `mapstructure:"width"`
	Height          int           `mapstructure:"height"`
	MaxWidth        int           `mapstructure:"max_width"`
	MaxHeight       int           `mapstructure:"max_height"`
	DefaultTemplate string        `mapstructure:"default_template"`
	Timeout         time.Duration `mapstructure:"timeout"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type TracingConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Exporter string `mapstructure:"exporter"`
}

// RateLimitConfig throttles the render and QR endpoints. Limiting is on
// unless Disabled is set; zero rates fall back to defaults.
type RateLimitConfig struct {
	Disabled       bool `mapstructure:"disabled"`
	RequestsPerMin int  `mapstructure:"requests_per_min"`
	Burst          int  `mapstructure:"burst"`
}
