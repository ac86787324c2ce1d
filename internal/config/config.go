// Package config loads runtime settings from configs/.env and the environment.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultEnvFile is loaded before reading the environment, when present.
const DefaultEnvFile = "configs/.env"

// Config holds every setting the server and CLI read.
type Config struct {
	Port        string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	CacheTTL    time.Duration
	LogLevel    string
	LogFormat   string
	CORSOrigins []string
}

// SetDefaults registers the fallback value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "postgres")
	v.SetDefault("db_sslmode", "disable")
	v.SetDefault("cache_ttl", "300s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("cors_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:5174")
}

// Load reads envFile (missing files are ignored) and then the process
// environment into v. Pass a fresh viper.New() unless flags were bound to it.
func Load(v *viper.Viper, envFile string) (Config, error) {
	if envFile != "" {
		// configs/.env is optional, the environment may already be complete
		_ = godotenv.Load(envFile)
	}

	SetDefaults(v)
	v.AutomaticEnv()

	ttl, err := time.ParseDuration(v.GetString("cache_ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid CACHE_TTL %q: %w", v.GetString("cache_ttl"), err)
	}
	if ttl < 0 {
		return Config{}, fmt.Errorf("invalid CACHE_TTL %q: must not be negative", v.GetString("cache_ttl"))
	}

	return Config{
		Port:        v.GetString("port"),
		DBHost:      v.GetString("db_host"),
		DBPort:      v.GetString("db_port"),
		DBUser:      v.GetString("db_user"),
		DBPassword:  v.GetString("db_password"),
		DBName:      v.GetString("db_name"),
		DBSSLMode:   v.GetString("db_sslmode"),
		CacheTTL:    ttl,
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		CORSOrigins: splitList(v.GetString("cors_origins")),
	}, nil
}

// DSN builds the postgres connection URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
