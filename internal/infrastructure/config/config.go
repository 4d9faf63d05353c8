package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig
	Log        LogConfig
	HTTP       HTTPConfig
	Seed       SeedConfig
	Simulation SimulationConfig
	Telemetry  TelemetryConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int
	MaxBodySize    int64
	// CORS is wide open by default: this server is a load test target, not
	// a production API, and clients driving tests may come from anywhere.
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// SeedConfig controls the data seeded into the in-memory store at startup.
type SeedConfig struct {
	Products int   // number of seeded products
	Users    int   // number of seeded users
	Seed     int64 // RNG seed; 0 means time-based (a fresh catalog per run)
}

// SimulationConfig holds latency and failure injection settings
type SimulationConfig struct {
	// LatencyScale multiplies every injected delay. 1.0 reproduces the
	// reference timings; treated as 1.0 when left unset.
	LatencyScale float64
	// PaymentFailureRate is the probability that order creation is rejected
	// with a payment error.
	PaymentFailureRate float64
	// ErrorRate and UnavailableRate partition the error endpoint's outcome
	// space: a draw below ErrorRate yields 500, a draw inside the next
	// UnavailableRate band yields 503, the rest succeed.
	ErrorRate       float64
	UnavailableRate float64
}

// TelemetryConfig holds OpenTelemetry configuration
type TelemetryConfig struct {
	Enabled           bool
	CollectorEndpoint string
	SamplingRatio     float64
	ServiceName       string
	Insecure          bool
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with SHOPSIM_ prefix (e.g. SHOPSIM_APP_PORT)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("SHOPSIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			MaxBodySize:      v.GetInt64("http.max_body_size"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Seed: SeedConfig{
			Products: v.GetInt("seed.products"),
			Users:    v.GetInt("seed.users"),
			Seed:     v.GetInt64("seed.seed"),
		},
		Simulation: SimulationConfig{
			LatencyScale:       v.GetFloat64("simulation.latency_scale"),
			PaymentFailureRate: v.GetFloat64("simulation.payment_failure_rate"),
			ErrorRate:          v.GetFloat64("simulation.error_rate"),
			UnavailableRate:    v.GetFloat64("simulation.unavailable_rate"),
		},
		Telemetry: TelemetryConfig{
			Enabled:           v.GetBool("telemetry.enabled"),
			CollectorEndpoint: v.GetString("telemetry.collector_endpoint"),
			SamplingRatio:     v.GetFloat64("telemetry.sampling_ratio"),
			ServiceName:       v.GetString("telemetry.service_name"),
			Insecure:          v.GetBool("telemetry.insecure"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "shopsim"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "3000"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	// The slow endpoint holds a response for up to ~3s, so the write
	// timeout needs ample headroom.
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if cfg.HTTP.MaxBodySize == 0 {
		cfg.HTTP.MaxBodySize = 1 << 20 // 1MB, the log ingest endpoint takes arbitrary objects
	}
	if len(cfg.HTTP.CORSAllowOrigins) == 0 {
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"*"}
	}
	if cfg.Seed.Products == 0 {
		cfg.Seed.Products = 100
	}
	if cfg.Seed.Users == 0 {
		cfg.Seed.Users = 1000
	}
	// Simulation rates: zero is treated as unset, like sampling_ratio.
	// Disabling a gate entirely is done with a negative rate.
	if cfg.Simulation.LatencyScale == 0 {
		cfg.Simulation.LatencyScale = 1.0
	}
	if cfg.Simulation.PaymentFailureRate == 0 {
		cfg.Simulation.PaymentFailureRate = 0.05
	}
	if cfg.Simulation.ErrorRate == 0 {
		cfg.Simulation.ErrorRate = 0.3
	}
	if cfg.Simulation.UnavailableRate == 0 {
		cfg.Simulation.UnavailableRate = 0.2
	}
	if cfg.Telemetry.CollectorEndpoint == "" {
		cfg.Telemetry.CollectorEndpoint = "localhost:4317"
	}
	if cfg.Telemetry.SamplingRatio == 0 {
		cfg.Telemetry.SamplingRatio = 1.0
	}
	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = cfg.App.Name
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c.Seed.Products < 0 {
		return fmt.Errorf("seed.products cannot be negative")
	}
	if c.Seed.Users < 0 {
		return fmt.Errorf("seed.users cannot be negative")
	}
	if c.Simulation.LatencyScale < 0 {
		return fmt.Errorf("simulation.latency_scale cannot be negative")
	}
	if c.Simulation.PaymentFailureRate > 1.0 {
		return fmt.Errorf("simulation.payment_failure_rate must not exceed 1.0, got %f", c.Simulation.PaymentFailureRate)
	}
	if c.Simulation.ErrorRate > 1.0 || c.Simulation.UnavailableRate > 1.0 {
		return fmt.Errorf("simulation error rates must not exceed 1.0")
	}
	if c.Simulation.ErrorRate+c.Simulation.UnavailableRate > 1.0 {
		return fmt.Errorf("simulation.error_rate + simulation.unavailable_rate must not exceed 1.0, got %f",
			c.Simulation.ErrorRate+c.Simulation.UnavailableRate)
	}
	if c.Telemetry.SamplingRatio < 0.0 || c.Telemetry.SamplingRatio > 1.0 {
		return fmt.Errorf("telemetry.sampling_ratio must be between 0.0 and 1.0, got %f", c.Telemetry.SamplingRatio)
	}
	return nil
}
