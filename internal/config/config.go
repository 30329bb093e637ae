package config

import (
	"os"

	"blackjack-server/internal/util"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for the blackjack server
type Config struct {
	loaded         bool
	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`
	JWT            struct {
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	}
	CardSource struct {
		// Mode is either "remote" (the deck-of-cards web service) or "local"
		Mode    string `yaml:"mode" envconfig:"mode"`
		BaseURL string `yaml:"baseUrl" envconfig:"base_url"`
	} `yaml:"cardSource"`
	Game struct {
		StartingWallet int `yaml:"startingWallet" envconfig:"starting_wallet"`
		MinimumBet     int `yaml:"minimumBet" envconfig:"minimum_bet"`
		DealDelayMS    int `yaml:"dealDelayMs" envconfig:"deal_delay_ms"`
	} `yaml:"game"`
	LogLevel          string `yaml:"logLevel" envconfig:"log_level"`
	DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
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

// Load will load the configuration. A missing config file is not an error;
// the defaults and the environment still apply.
func Load() error {
	config = defaults()

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("bj", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}

func defaults() Config {
	var c Config
	c.MigrationsPath = "./sql"
	c.JWT.PublicKey = "jwt/public.pem"
	c.JWT.PrivateKey = "jwt/private.key"
	c.CardSource.Mode = "remote"
	c.Game.StartingWallet = 100
	c.Game.MinimumBet = 5
	c.Game.DealDelayMS = 500
	c.LogLevel = "info"
	return c
}
