package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Logging struct {
	JSONFormat bool   `yaml:"json_format" toml:"json_format" env:"LINKFEED_LOG_JSON"`
	Level      string `yaml:"level" toml:"level" env:"LINKFEED_LOG_LEVEL" env-default:"info"`
}

type Prometheus struct {
	Enabled  bool   `yaml:"enabled" toml:"enabled" env:"LINKFEED_PROMETHEUS_ENABLED"`
	Username string `yaml:"username" toml:"username"`
	Password string `yaml:"password" toml:"password" env:"LINKFEED_PROMETHEUS_PASSWORD"`
}

type API struct {
	Enabled             bool   `yaml:"enabled" toml:"enabled" env:"LINKFEED_API_ENABLED"`
	Port                int    `yaml:"port" toml:"port" env:"LINKFEED_API_PORT" env-default:"3000"`
	HealthCheckFailFile string `yaml:"healthcheck_fail_file" toml:"healthcheck_fail_file"`
	GraphQLPath         string `yaml:"graphql_path" toml:"graphql_path" env-default:"/graphql"`

	// Zero means unlimited
	MaxDepth       int `yaml:"max_depth" toml:"max_depth"`
	MaxParallelism int `yaml:"max_parallelism" toml:"max_parallelism"`
}

type Database struct {
	Type     string         `yaml:"type" toml:"type" env:"LINKFEED_DATABASE_TYPE" env-default:"memory"`
	Settings map[string]any `yaml:"settings" toml:"settings"`
}

type Cache struct {
	Type     string         `yaml:"type" toml:"type" env:"LINKFEED_CACHE_TYPE" env-default:"none"`
	Settings map[string]any `yaml:"settings" toml:"settings"`
}

type LinkFeedConfig struct {
	Logging    Logging    `yaml:"logging" toml:"logging"`
	API        API        `yaml:"api" toml:"api"`
	Database   Database   `yaml:"database" toml:"database"`
	Cache      Cache      `yaml:"cache" toml:"cache"`
	Prometheus Prometheus `yaml:"prometheus" toml:"prometheus"`
}

// Load reads the config file at path (yaml, toml or json, by extension)
// and applies environment overrides on top of it.
func Load(path string) (LinkFeedConfig, error) {
	var c LinkFeedConfig
	if err := cleanenv.ReadConfig(path, &c); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Default returns the config used when no file is given.
func Default() (LinkFeedConfig, error) {
	c := LinkFeedConfig{API: API{Enabled: true}}
	if err := cleanenv.ReadEnv(&c); err != nil {
		return c, err
	}
	return c, nil
}
