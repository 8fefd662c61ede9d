package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type SecurityConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type MonitoringConfig struct {
	MetricsPrefix string `mapstructure:"metrics_prefix"`
}

type DocumentsConfig struct {
	TemplateDir string        `mapstructure:"template_dir"`
	CacheTTL    time.Duration `mapstructure:"cache_ttl"`
	FontPaths   []string      `mapstructure:"font_paths"`
}

type ClinicConfig struct {
	Currency       string `mapstructure:"currency"`
	CurrencySymbol string `mapstructure:"currency_symbol"`
	InvoicePrefix  string `mapstructure:"invoice_prefix"`
	QuotePrefix    string `mapstructure:"quote_prefix"`
	Name           string `mapstructure:"name"`
	Address        string `mapstructure:"address"`
	Phone          string `mapstructure:"phone"`
	Email          string `mapstructure:"email"`
}

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	Security   SecurityConfig   `mapstructure:"security"`
	Monitoring MonitoringConfig `mapstructure:"monitoring"`
	Documents  DocumentsConfig  `mapstructure:"documents"`
	Clinic     ClinicConfig     `mapstructure:"clinic"`
	LogPretty  bool             `mapstructure:"log_pretty"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("dentassist")
	viper.AutomaticEnv()

	setDefaults()

	// A config file is optional; defaults and env cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 10*time.Second)
	viper.SetDefault("server.write_timeout", 10*time.Second)
	viper.SetDefault("server.request_timeout", 30*time.Second)

	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 50.0)
	viper.SetDefault("rate_limit.burst", 100)

	viper.SetDefault("security.allowed_origins", []string{"*"})

	viper.SetDefault("monitoring.metrics_prefix", "dentassist")

	viper.SetDefault("documents.template_dir", "templates")
	viper.SetDefault("documents.cache_ttl", 5*time.Minute)
	viper.SetDefault("documents.font_paths", []string{
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/dejavu/DejaVuSans.ttf",
		"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
	})

	viper.SetDefault("clinic.currency", "EUR")
	viper.SetDefault("clinic.currency_symbol", "€")
	viper.SetDefault("clinic.invoice_prefix", "FAC")
	viper.SetDefault("clinic.quote_prefix", "DEV")

	viper.SetDefault("log_pretty", false)
}
