package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// ServeConfig holds configuration for the serve command, merged from
// flags, environment (PAIPU_ prefix), and an optional config file.
type ServeConfig struct {
	Host     string
	Username string
	Password string
	Listen   string
	Timeout  time.Duration
	LogLevel string
}

// LoadServe merges config file, environment variables, and flags into
// ServeConfig.
func LoadServe(cfgFile string, flags *pflag.FlagSet) (ServeConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return ServeConfig{}, err
	}

	cfg := ServeConfig{
		Host:     v.GetString("host"),
		Username: v.GetString("username"),
		Password: v.GetString("password"),
		Listen:   v.GetString("listen"),
		Timeout:  v.GetDuration("timeout"),
		LogLevel: v.GetString("log-level"),
	}
	return cfg, nil
}

// FetchConfig holds configuration for the fetch command.
type FetchConfig struct {
	Host     string
	Username string
	Password string
	Timeout  time.Duration
	CSV      bool
	Raw      bool
	LogLevel string
}

// LoadFetch merges config file, environment variables, and flags into
// FetchConfig.
func LoadFetch(cfgFile string, flags *pflag.FlagSet) (FetchConfig, error) {
	v, err := newViper(cfgFile, flags)
	if err != nil {
		return FetchConfig{}, err
	}

	cfg := FetchConfig{
		Host:     v.GetString("host"),
		Username: v.GetString("username"),
		Password: v.GetString("password"),
		Timeout:  v.GetDuration("timeout"),
		CSV:      v.GetBool("csv"),
		Raw:      v.GetBool("raw"),
		LogLevel: v.GetString("log-level"),
	}
	return cfg, nil
}

func newViper(cfgFile string, flags *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("PAIPU")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen", ":8080")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	return v, nil
}
