// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config contains the definition of the oauthstore configuration
// and the logic required to load it from a file, the environment and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g.
// OAUTHSTORE_DATABASE_DRIVER.
const EnvPrefix = "OAUTHSTORE"

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Request-object policies.
const (
	OnMissingKeyDrop = "drop"
	OnMissingKeyFail = "fail"

	UnknownClaimTypeUnspecified = "unspecified"
	UnknownClaimTypeReject      = "reject"
)

// Config represents the configuration of oauthstore.
type Config struct {
	Database      Database      `mapstructure:"database" yaml:"database"`
	Cache         Cache         `mapstructure:"cache" yaml:"cache"`
	RequestObject RequestObject `mapstructure:"request_object" yaml:"request_object"`
	Telemetry     Telemetry     `mapstructure:"telemetry" yaml:"telemetry"`
}

// Database selects and configures the relational backend.
type Database struct {
	Driver string `mapstructure:"driver" yaml:"driver" validate:"oneof=sqlite postgres mysql"`
	// DSN overrides every other connection field when set.
	DSN string `mapstructure:"dsn" yaml:"dsn,omitempty"`
	// Path is the SQLite database file.
	Path string `mapstructure:"path" yaml:"path,omitempty"`

	Host     string `mapstructure:"host" yaml:"host,omitempty"`
	Port     int    `mapstructure:"port" yaml:"port,omitempty" validate:"gte=0,lte=65535"`
	User     string `mapstructure:"user" yaml:"user,omitempty"`
	Password string `mapstructure:"password" yaml:"password,omitempty"`
	Name     string `mapstructure:"name" yaml:"name,omitempty"`

	MaxOpenConns   int           `mapstructure:"max_open_conns" yaml:"max_open_conns" validate:"gte=0"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout" yaml:"connect_timeout" validate:"gte=0"`
	// Migrate applies pending schema migrations when the store opens.
	Migrate bool `mapstructure:"migrate" yaml:"migrate"`
}

// Cache configures the Redis read-through cache for client lookups.
type Cache struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	Addr      string        `mapstructure:"addr" yaml:"addr,omitempty" validate:"required_if=Enabled true"`
	Username  string        `mapstructure:"username" yaml:"username,omitempty"`
	Password  string        `mapstructure:"password" yaml:"password,omitempty"`
	DB        int           `mapstructure:"db" yaml:"db" validate:"gte=0"`
	KeyPrefix string        `mapstructure:"key_prefix" yaml:"key_prefix"`
	TTL       time.Duration `mapstructure:"ttl" yaml:"ttl" validate:"gte=0"`
}

// RequestObject holds the policies of the request-object claim store.
type RequestObject struct {
	// OnMissingKey decides what happens when the database does not report
	// the id of an inserted reference or claim.
	OnMissingKey string `mapstructure:"on_missing_key" yaml:"on_missing_key" validate:"oneof=drop fail"`
	// UnknownClaimType decides what happens to claims that are neither
	// userinfo nor id_token claims.
	UnknownClaimType string `mapstructure:"unknown_claim_type" yaml:"unknown_claim_type" validate:"oneof=unspecified reject"`
}

// Telemetry toggles the OpenTelemetry store decorator.
type Telemetry struct {
	Enabled     bool   `mapstructure:"enabled" yaml:"enabled"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name" validate:"required_if=Enabled true"`
}

// setDefaults registers every key so AutomaticEnv can override it.
func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DriverSQLite)
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.path", "oauthstore.db")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 0)
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.max_open_conns", 10)
	v.SetDefault("database.connect_timeout", 30*time.Second)
	v.SetDefault("database.migrate", true)

	v.SetDefault("cache.enabled", false)
	v.SetDefault("cache.addr", "")
	v.SetDefault("cache.username", "")
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)
	v.SetDefault("cache.key_prefix", "oauthstore:")
	v.SetDefault("cache.ttl", 5*time.Minute)

	v.SetDefault("request_object.on_missing_key", OnMissingKeyDrop)
	v.SetDefault("request_object.unknown_claim_type", UnknownClaimTypeUnspecified)

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "oauthstore")
}

// Load reads the configuration into v from the optional file at path and
// from OAUTHSTORE_* environment variables, then validates it. A missing
// file is an error only when path was given explicitly.
func Load(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("config file %s does not exist", path)
			}
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg := &Config{}
	// defaults always decode
	_ = v.Unmarshal(cfg)
	return cfg
}

// Validate checks field constraints and the cross-field rules of the
// database section.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db := c.Database
	switch db.Driver {
	case DriverSQLite:
		if db.DSN == "" && db.Path == "" {
			return errors.New("invalid configuration: database.path is required for sqlite")
		}
	case DriverPostgres:
		if db.DSN == "" {
			return errors.New("invalid configuration: database.dsn is required for postgres")
		}
	case DriverMySQL:
		if db.DSN == "" && (db.Host == "" || db.Name == "") {
			return errors.New("invalid configuration: database.host and database.name are required for mysql")
		}
	}
	return nil
}
