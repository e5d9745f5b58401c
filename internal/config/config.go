package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

type AppConfig struct {
	API   *APIConfig   `mapstructure:"api"`
	Gin   *GinConfig   `mapstructure:"gin"`
	Store *StoreConfig `mapstructure:"store"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// Load reads the yaml config at path. Any key can be overridden with an
// ELECTION_ prefixed environment variable, e.g. ELECTION_API_PORT.
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)

	viper.SetEnvPrefix("ELECTION")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	return &conf, nil
}

// Watch re-reads the config file whenever it changes on disk and hands the
// fresh config to onChange. Changes that need a listener restart (port, CORS)
// still require one; onChange is for values safe to swap at runtime.
func Watch(onChange func(*AppConfig)) {
	viper.OnConfigChange(func(_ fsnotify.Event) {
		var conf AppConfig
		if err := viper.Unmarshal(&conf); err != nil {
			return
		}
		onChange(&conf)
	})
	viper.WatchConfig()
}
