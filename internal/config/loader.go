package config

import (
	"fmt"

	"realty-api/internal/db"

	"github.com/spf13/viper"
)

// Storage backends the server can run on.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds server configuration.
type Config struct {
	Addr           string
	Storage        string
	Seed           bool
	MigrationsPath string
	DB             db.Config
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() Config {
	return Config{
		Addr:           ":8080",
		Storage:        StorageMemory,
		Seed:           true,
		MigrationsPath: "./migrations",
		DB:             db.DefaultConfig(),
	}
}

// Load reads config.yaml from configPath, with environment overrides
// (REALTY_SERVER_ADDR, REALTY_STORAGE_BACKEND, REALTY_DATABASE_HOST, ...).
func Load(configPath string) (Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AutomaticEnv()
	v.SetEnvPrefix("REALTY")

	v.BindEnv("server.addr")
	v.BindEnv("server.seed")
	v.BindEnv("storage.backend")
	v.BindEnv("storage.migrations")
	v.BindEnv("database.host")
	v.BindEnv("database.port")
	v.BindEnv("database.user")
	v.BindEnv("database.password")
	v.BindEnv("database.dbname")
	v.BindEnv("database.sslmode")

	if err := v.ReadInConfig(); err != nil {
		// Config file not found? Just log it, use defaults + env
		fmt.Println("No config.yaml found, using defaults and env vars")
	} else {
		fmt.Println("Loaded config.yaml")
	}

	if v.IsSet("server.addr") {
		cfg.Addr = v.GetString("server.addr")
	}
	if v.IsSet("server.seed") {
		cfg.Seed = v.GetBool("server.seed")
	}
	if v.IsSet("storage.backend") {
		cfg.Storage = v.GetString("storage.backend")
	}
	if v.IsSet("storage.migrations") {
		cfg.MigrationsPath = v.GetString("storage.migrations")
	}
	if v.IsSet("database.host") {
		cfg.DB.Host = v.GetString("database.host")
	}
	if v.IsSet("database.port") {
		cfg.DB.Port = v.GetInt("database.port")
	}
	if v.IsSet("database.user") {
		cfg.DB.User = v.GetString("database.user")
	}
	if v.IsSet("database.password") {
		cfg.DB.Password = v.GetString("database.password")
	}
	if v.IsSet("database.dbname") {
		cfg.DB.DBName = v.GetString("database.dbname")
	}
	if v.IsSet("database.sslmode") {
		cfg.DB.SSLMode = v.GetString("database.sslmode")
	}

	switch cfg.Storage {
	case StorageMemory, StoragePostgres:
	default:
		return Config{}, fmt.Errorf("unknown storage backend %q", cfg.Storage)
	}

	return cfg, nil
}
