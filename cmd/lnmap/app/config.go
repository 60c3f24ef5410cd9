package app

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/agentstation/lnmap/pkg/constants"
)

// Config holds the application configuration loaded from config files,
// environment variables and .env files.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Format  string

	// Config file
	ConfigFile string

	// Upstream configuration
	AmbossAPIKey string
	Timeout      time.Duration
	AmbossURL    string
	OneMLURL     string
	LNPlusURL    string
	LNPlusAPIURL string

	// Logging configuration
	LogLevel  string
	LogFormat string
	LogOutput string

	// ReserveStdout is set while serving, where stdout carries responses.
	ReserveStdout bool
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables
// 3. .env files
// 4. Config file (~/.lnmap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.SetDefault("timeout", constants.DefaultHTTPTimeout)

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".lnmap")
	}

	// A missing config file is not an error.
	_ = v.ReadInConfig()

	config := &Config{
		Verbose: v.GetBool("verbose"),
		Quiet:   v.GetBool("quiet"),
		NoColor: v.GetBool("no_color"),
		Format:  v.GetString("format"),

		ConfigFile: v.ConfigFileUsed(),

		AmbossAPIKey: v.GetString("amboss_api_key"),
		Timeout:      v.GetDuration("timeout"),
		AmbossURL:    v.GetString("amboss_url"),
		OneMLURL:     v.GetString("oneml_url"),
		LNPlusURL:    v.GetString("lnplus_url"),
		LNPlusAPIURL: v.GetString("lnplus_api_url"),

		LogLevel:  v.GetString("log_level"),
		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
	}

	if config.Timeout <= 0 {
		config.Timeout = constants.DefaultHTTPTimeout
	}

	return config, nil
}

// UpdateFromFlags updates config values from parsed command flags.
// This should be called after cobra parses flags so that flag values
// take precedence over the config file and environment.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// ReadFile overlays upstream and logging settings from an explicit config
// file onto c. Settings that the file leaves unset keep their values.
func (c *Config) ReadFile(path string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	overlay := func(key string, dst *string) {
		if v.IsSet(key) {
			*dst = v.GetString(key)
		}
	}
	overlay("amboss_api_key", &c.AmbossAPIKey)
	overlay("amboss_url", &c.AmbossURL)
	overlay("oneml_url", &c.OneMLURL)
	overlay("lnplus_url", &c.LNPlusURL)
	overlay("lnplus_api_url", &c.LNPlusAPIURL)
	overlay("log_format", &c.LogFormat)
	overlay("log_output", &c.LogOutput)
	if c.LogLevel == "" {
		overlay("log_level", &c.LogLevel)
	}
	if v.IsSet("timeout") {
		if d := v.GetDuration("timeout"); d > 0 {
			c.Timeout = d
		}
	}

	c.ConfigFile = path
	return nil
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env.
func loadEnvFiles() {
	for _, envFile := range []string{".env", ".env.local"} {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
