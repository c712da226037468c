package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port           string
	DBPath         string
	AdminToken     string
	DefaultUserID  string
	DefaultBalance int64
	IndexFile      string
	StaticDir      string
	StatsInterval  time.Duration
}

func Load() *Config {
	defaultBalance, _ := strconv.ParseInt(getEnv("DEFAULT_BALANCE", "1000"), 10, 64)
	statsSeconds, _ := strconv.Atoi(getEnv("STATS_INTERVAL_SECONDS", "60"))

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		DBPath:         getEnv("DB_PATH", "loto.db"),
		AdminToken:     os.Getenv("ADMIN_TOKEN"),
		DefaultUserID:  getEnv("DEFAULT_USER_ID", "user1"),
		DefaultBalance: defaultBalance,
		IndexFile:      getEnv("INDEX_FILE", "index.html"),
		StaticDir:      getEnv("STATIC_DIR", "static"),
		StatsInterval:  time.Duration(statsSeconds) * time.Second,
	}

	if cfg.AdminToken == "" {
		log.Fatal("Missing critical environment variables")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
