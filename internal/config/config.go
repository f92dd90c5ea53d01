package config

import (
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string  `mapstructure:"environment"`
	BaseURL            string  `mapstructure:"base_url"`
	Port               string  `mapstructure:"port"`
	AllowedCORSDomains string  `mapstructure:"allowed_cors_domains"`
	RateLimitPerSecond float64 `mapstructure:"rate_limit_per_second"`
	RateLimitBurst     int     `mapstructure:"rate_limit_burst"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
}

func Load(configFile string) (*AppConfig, error) {
	viper.SetConfigFile(configFile)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	config := &AppConfig{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	// Deployment platforms inject these instead of editing the YAML. A config
	// file may omit whole sections, so the overrides cannot assume them.
	if port := os.Getenv("PORT"); port != "" {
		if config.API == nil {
			config.API = &APIConfig{}
		}
		config.API.Port = port
	}
	if name := os.Getenv("DATABASE_NAME"); name != "" {
		if config.Postgres == nil {
			config.Postgres = &PostgresConfig{}
		}
		config.Postgres.DB = name
	}

	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))

		if err := viper.Unmarshal(config); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
		}
	})

	return config, nil
}
