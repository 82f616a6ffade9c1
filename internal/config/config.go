package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"holdem-engine/internal/util"
)

// Config provides configuration for the hold'em simulator
type Config struct {
	loaded bool
	Blinds struct {
		Small int `yaml:"small" envconfig:"small"`
		Big   int `yaml:"big" envconfig:"big"`
	}
	Ante     int    `yaml:"ante" envconfig:"ante"`
	Seats    int    `yaml:"seats" envconfig:"seats"`
	BuyIn    int    `yaml:"buyIn" envconfig:"buy_in"`
	Hands    int    `yaml:"hands" envconfig:"hands"`
	Seed     int64  `yaml:"seed" envconfig:"seed"`
	LogLevel string `yaml:"logLevel" envconfig:"log_level"`
}

var config Config

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config file is not an error; defaults plus environment variables apply
func Load() error {
	config = defaultConfig()

	configFile := util.Getenv("HOLDEM_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("holdem", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaultConfig() Config {
	c := Config{
		Ante:     0,
		Seats:    6,
		BuyIn:    2000,
		Hands:    10,
		LogLevel: "info",
	}
	c.Blinds.Small = 25
	c.Blinds.Big = 50

	return c
}
