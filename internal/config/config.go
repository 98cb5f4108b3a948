package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"json" validate:"oneof=json text"`
}

// MustLoad - load configuration from the config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load - reads and validates the configuration.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("read environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("stat config file: %w", err)
	}

	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
