package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Bot      Bot     `yaml:"bot"`
	Console  Console `yaml:"console"`
}

type Bot struct {
	// Delay between two tokens taken by the bot.
	Delay time.Duration `yaml:"delay" env:"BOT_DELAY" env-default:"1s"`
}

type Console struct {
	Prompt string `yaml:"prompt" env:"CONSOLE_PROMPT" env-default:"> "`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - reads path, falling back to defaults and environment when the file is missing.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	}

	if config.Bot.Delay < 0 {
		return nil, fmt.Errorf("%w: bot delay %s", ErrInvalidConfig, config.Bot.Delay)
	}

	return config, nil
}
