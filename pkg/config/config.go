package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Host            string        `yaml:"host"`
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
		CORS            bool          `yaml:"cors"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Metrics struct {
		Enabled bool   `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Provider struct {
		BaseURL         string        `yaml:"base_url"`
		UserAgent       string        `yaml:"user_agent"`
		RequestTimeout  time.Duration `yaml:"request_timeout"`
		RequestsPerSec  float64       `yaml:"requests_per_sec"`
		Burst           int           `yaml:"burst"`
		MaxRetryElapsed time.Duration `yaml:"max_retry_elapsed"`
	} `yaml:"provider"`
	Cache struct {
		TTL   time.Duration `yaml:"ttl"`
		Redis struct {
			Enabled  bool   `yaml:"enabled"`
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
		MemoryMaxEntries int `yaml:"memory_max_entries"`
	} `yaml:"cache"`
	Analysis struct {
		SMAWindow        int     `yaml:"sma_window"`
		EMAWindow        int     `yaml:"ema_window"`
		RSIPeriod        int     `yaml:"rsi_period"`
		BBWindow         int     `yaml:"bb_window"`
		BBStdDev         float64 `yaml:"bb_std_dev"`
		LevelWindow      int     `yaml:"level_window"`
		OutlierThreshold float64 `yaml:"outlier_threshold"`
	} `yaml:"analysis"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Server.Port = p
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("PROVIDER_BASE_URL"); v != "" {
		c.Provider.BaseURL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Enabled = true
		c.Cache.Redis.Addr = v
	}

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 30 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Provider.BaseURL == "" {
		c.Provider.BaseURL = "https://query1.finance.yahoo.com"
	}
	if c.Provider.UserAgent == "" {
		c.Provider.UserAgent = "Mozilla/5.0"
	}
	if c.Provider.RequestTimeout == 0 {
		c.Provider.RequestTimeout = 30 * time.Second
	}
	if c.Provider.RequestsPerSec == 0 {
		c.Provider.RequestsPerSec = 2
	}
	if c.Provider.Burst == 0 {
		c.Provider.Burst = 1
	}
	if c.Provider.MaxRetryElapsed == 0 {
		c.Provider.MaxRetryElapsed = 30 * time.Second
	}
	if c.Cache.TTL == 0 {
		c.Cache.TTL = 5 * time.Minute
	}
	if c.Cache.MemoryMaxEntries == 0 {
		c.Cache.MemoryMaxEntries = 500
	}
	if c.Analysis.SMAWindow == 0 {
		c.Analysis.SMAWindow = 20
	}
	if c.Analysis.EMAWindow == 0 {
		c.Analysis.EMAWindow = 20
	}
	if c.Analysis.RSIPeriod == 0 {
		c.Analysis.RSIPeriod = 14
	}
	if c.Analysis.BBWindow == 0 {
		c.Analysis.BBWindow = 20
	}
	if c.Analysis.BBStdDev == 0 {
		c.Analysis.BBStdDev = 2
	}
	if c.Analysis.LevelWindow == 0 {
		c.Analysis.LevelWindow = 20
	}
	if c.Analysis.OutlierThreshold == 0 {
		c.Analysis.OutlierThreshold = 3
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	if c.Provider.RequestsPerSec <= 0 {
		return fmt.Errorf("provider.requests_per_sec must be positive")
	}
	if c.Cache.Redis.Enabled && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required when redis is enabled")
	}
	for name, w := range map[string]int{
		"analysis.sma_window":   c.Analysis.SMAWindow,
		"analysis.ema_window":   c.Analysis.EMAWindow,
		"analysis.rsi_period":   c.Analysis.RSIPeriod,
		"analysis.bb_window":    c.Analysis.BBWindow,
		"analysis.level_window": c.Analysis.LevelWindow,
	} {
		if w < 2 {
			return fmt.Errorf("%s must be at least 2, got %d", name, w)
		}
	}
	return nil
}
