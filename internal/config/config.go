// Package config handles loading and validating the gateway configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the root configuration for the gateway.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	AWS     AWSConfig     `mapstructure:"aws"`
	TTS     TTSConfig     `mapstructure:"tts"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port       int `mapstructure:"port"`
	HealthPort int `mapstructure:"health_port"`
}

// AWSConfig holds provider connection settings. Credentials are never
// configured here; they come from the ambient AWS credential chain.
type AWSConfig struct {
	Region string `mapstructure:"region"`
}

// TTSConfig fixes the synthesis parameters for the whole process. Request
// bodies cannot override any of these.
type TTSConfig struct {
	Voice    string `mapstructure:"voice"`
	Engine   string `mapstructure:"engine"`
	Language string `mapstructure:"language"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // json, text
}

// Load reads the configuration from file, environment variables, and defaults.
// If configFile is non-empty it is used directly; otherwise the standard
// search order applies: ./pollygate.yaml, ./configs/pollygate.yaml,
// /etc/pollygate/pollygate.yaml. A .env file in the working directory is
// loaded first so its values are visible to AutomaticEnv.
func Load(configFile string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.health_port", 8081)
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("tts.voice", "Joanna")
	v.SetDefault("tts.engine", "neural")
	v.SetDefault("tts.language", "en-US")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("pollygate")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/pollygate")
	}

	// Environment variables: POLLYGATE_SERVER_PORT, POLLYGATE_AWS_REGION, etc.
	v.SetEnvPrefix("POLLYGATE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The bare PORT and AWS_REGION variables also work, matching what the
	// deployment environment conventionally sets.
	_ = v.BindEnv("server.port", "POLLYGATE_SERVER_PORT", "PORT")
	_ = v.BindEnv("aws.region", "POLLYGATE_AWS_REGION", "AWS_REGION")

	// Read config file (optional — env vars and defaults are sufficient)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		slog.Info("no config file found, using defaults and environment variables")
	} else {
		slog.Info("loaded config file", "path", v.ConfigFileUsed())
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// SetupLogging configures the global slog logger based on config.
func SetupLogging(cfg LoggingConfig) {
	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}
