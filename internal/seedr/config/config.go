package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Conventional ports used when DB_PORT is not set.
const (
	defaultMySQLPort    = 3306
	defaultPostgresPort = 5432
)

type LoggingCfg struct {
	Level string `mapstructure:"level"`
}

// Config carries the store connection parameters. It is built once from the
// environment (plus an optional config file) and passed explicitly into
// constructors, so no package reads ambient environment state itself.
type Config struct {
	Driver   string     `mapstructure:"driver"`
	Host     string     `mapstructure:"host"`
	User     string     `mapstructure:"user"`
	Password string     `mapstructure:"password"`
	Database string     `mapstructure:"database"`
	Port     int        `mapstructure:"port"`
	Logging  LoggingCfg `mapstructure:"logging"`
}

var cfg *Config

// Load populates global config from a viper instance
func Load(v *viper.Viper) error {
	// set defaults
	v.SetDefault("driver", "mysql")
	v.SetDefault("host", "localhost")
	v.SetDefault("logging.level", "info")

	// environment overrides
	v.BindEnv("driver", "DB_DRIVER")
	v.BindEnv("host", "DB_HOST")
	v.BindEnv("user", "DB_USER")
	v.BindEnv("password", "DB_PASSWORD")
	v.BindEnv("database", "DB_NAME")
	v.BindEnv("port", "DB_PORT")
	v.BindEnv("logging.level", "LOG_LEVEL")

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Port == 0 {
		switch c.Driver {
		case "mysql":
			c.Port = defaultMySQLPort
		case "postgres":
			c.Port = defaultPostgresPort
		}
	}
	cfg = &c
	return nil
}

func Get() *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg
}

// Validate reports whether the config is complete enough to open a pool.
func (c *Config) Validate() error {
	switch c.Driver {
	case "mysql", "postgres":
	default:
		return fmt.Errorf("unsupported driver %q (want mysql or postgres)", c.Driver)
	}
	if c.User == "" {
		return fmt.Errorf("database user not set (DB_USER)")
	}
	if c.Database == "" {
		return fmt.Errorf("database name not set (DB_NAME)")
	}
	return nil
}
