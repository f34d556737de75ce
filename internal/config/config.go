package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Rhushya/Kloudmate/internal/errors"
	"github.com/Rhushya/Kloudmate/internal/logger"
)

const (
	DefaultInterval    = 10
	DefaultDBPath      = "./telemetry.db"
	DefaultOllamaURL   = "http://localhost:11434"
	DefaultOllamaModel = "llama2:7b"
	DefaultLogLevel    = "info"

	configName = "kloudmate"
	envPrefix  = "KLOUDMATE"
)

// Config holds every configurable value shared by the collector daemon
// and the assistant REPL.
type Config struct {
	Interval    int    `mapstructure:"interval"`
	DBPath      string `mapstructure:"database"`
	Hostname    string `mapstructure:"hostname"`
	OllamaURL   string `mapstructure:"ollama_url"`
	OllamaModel string `mapstructure:"ollama_model"`
	LogLevel    string `mapstructure:"log_level"`
	Debug       bool   `mapstructure:"debug"`
	Verbose     bool   `mapstructure:"verbose"`
}

// Load reads configuration from flags, environment variables and an
// optional TOML config file, in decreasing priority. The file is looked
// up as kloudmate.toml in /etc and the working directory, or taken from
// KLOUDMATE_CONFIG when set.
func Load() (*Config, error) {
	return load(os.Args[1:])
}

func load(args []string) (*Config, error) {
	errFactory := errors.New()

	v := viper.New()
	v.SetDefault("interval", DefaultInterval)
	v.SetDefault("database", DefaultDBPath)
	v.SetDefault("hostname", "")
	v.SetDefault("ollama_url", DefaultOllamaURL)
	v.SetDefault("ollama_model", DefaultOllamaModel)
	v.SetDefault("log_level", DefaultLogLevel)

	flags := pflag.NewFlagSet("kloudmate", pflag.ContinueOnError)
	flags.Int("interval", DefaultInterval, "Seconds between metric collections")
	flags.String("database", DefaultDBPath, "Path to the telemetry database file")
	flags.String("hostname", "", "Hostname recorded with each sample (default: OS hostname)")
	flags.String("ollama-url", DefaultOllamaURL, "Base URL of the Ollama server")
	flags.String("ollama-model", DefaultOllamaModel, "Ollama model used for translation and summaries")
	flags.String("log-level", DefaultLogLevel, "Log level (debug, info, warn, error)")
	flags.Bool("debug", false, "Enable debugging mode")
	flags.Bool("verbose", false, "Enable verbose logging")
	if err := flags.Parse(args); err != nil {
		return nil, errFactory.Wrap(errors.ErrBindFlags, err)
	}

	bindings := map[string]string{
		"interval":     "interval",
		"database":     "database",
		"hostname":     "hostname",
		"ollama_url":   "ollama-url",
		"ollama_model": "ollama-model",
		"log_level":    "log-level",
		"debug":        "debug",
		"verbose":      "verbose",
	}
	for key, name := range bindings {
		flag := flags.Lookup(name)
		if flag.Changed {
			v.Set(key, flag.Value.String())
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path := os.Getenv(envPrefix + "_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("toml")
		v.AddConfigPath("/etc")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, errFactory.Wrap(errors.ErrReadConfig, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
	}

	if cfg.Hostname == "" {
		hostname, err := os.Hostname()
		if err != nil {
			return nil, errFactory.Wrap(errors.ErrInvalidConfig, err)
		}
		cfg.Hostname = hostname
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded configuration for values the daemons cannot
// run with.
func (c *Config) Validate() error {
	errFactory := errors.New()

	if c.Interval <= 0 {
		return errFactory.WithData(errors.ErrInvalidInterval, c.Interval)
	}
	if c.DBPath == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "database path must not be empty")
	}
	if c.OllamaURL == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "ollama_url must not be empty")
	}
	if c.OllamaModel == "" {
		return errFactory.WithMessage(errors.ErrMissingConfig, "ollama_model must not be empty")
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}
