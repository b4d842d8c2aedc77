package main

import (
	"fmt"
	"strconv"

	"github.com/CameronXie/coffee-api/internal/repository/sqldb"
)

const (
	DefaultPort        = "8080"
	DefaultStoreDriver = StoreDriverMemory
	DefaultSQLitePath  = "coffees.db"
	DefaultMySQLPort   = "3306"

	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	StoreDriverMySQL    = "mysql"
	StoreDriverSQLite   = "sqlite"
)

// Config holds the process configuration read from the environment
type Config struct {
	Port        string
	StoreDriver string
	SeedData    bool
	PostgresDSN string
	MySQL       sqldb.MySQLConfig
	SQLitePath  string
}

// loadConfig reads the configuration through getenv, applying defaults for unset values.
func loadConfig(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Port:        valueOrDefault(getenv("PORT"), DefaultPort),
		StoreDriver: valueOrDefault(getenv("STORE_DRIVER"), DefaultStoreDriver),
		SQLitePath:  valueOrDefault(getenv("SQLITE_PATH"), DefaultSQLitePath),
		PostgresDSN: fmt.Sprintf(
			"postgres://%s:%s@%s/%s?sslmode=%s",
			getenv("POSTGRES_USER"),
			getenv("POSTGRES_PASSWORD"),
			getenv("POSTGRES_HOST"),
			getenv("POSTGRES_DB"),
			valueOrDefault(getenv("POSTGRES_SSL"), "disable"),
		),
		MySQL: sqldb.MySQLConfig{
			User:     getenv("MYSQL_USER"),
			Password: getenv("MYSQL_PASSWORD"),
			Host:     getenv("MYSQL_HOST"),
			Port:     valueOrDefault(getenv("MYSQL_PORT"), DefaultMySQLPort),
			Database: getenv("MYSQL_DATABASE"),
		},
	}

	seed, err := strconv.ParseBool(valueOrDefault(getenv("SEED_DATA"), "true"))
	if err != nil {
		return nil, fmt.Errorf("parse SEED_DATA: %w", err)
	}
	cfg.SeedData = seed

	switch cfg.StoreDriver {
	case StoreDriverMemory, StoreDriverPostgres, StoreDriverMySQL, StoreDriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported STORE_DRIVER %q", cfg.StoreDriver)
	}

	return cfg, nil
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
