package config

import (
	"fmt"
	"os"
	"strings"
)

const (
	AVATAR_SIZE = 100

	DefaultTopicPageSize   = 30
	DefaultProfilePageSize = 20
	DefaultMemberPageSize  = 30
	RecentMemberCount      = 6
)

// Config holds everything previously scattered across os.Getenv call sites.
type Config struct {
	Port            string
	GinMode         string
	FrontendOrigins []string

	Storage string // "mysql" (default) or "memory"

	DBUser string
	DBPass string
	DBHost string
	DBName string

	// ReviewWords is the comma-separated word list fed to the review filter.
	ReviewWords []string
}

func FromEnv() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		return nil, fmt.Errorf("$PORT must be set")
	}

	cfg := &Config{
		Port:    port,
		GinMode: os.Getenv("GIN_MODE"),
		Storage: os.Getenv("STORAGE"),
		DBUser:  os.Getenv("DB_USER"),
		DBPass:  os.Getenv("DB_PASS"),
		DBHost:  os.Getenv("DB_HOST"),
		DBName:  os.Getenv("DB_NAME"),
	}
	if cfg.Storage == "" {
		cfg.Storage = "mysql"
	}
	if cfg.DBName == "" {
		cfg.DBName = "clubhive"
	}
	if origins := os.Getenv("FE_ORIGINS"); origins != "" {
		cfg.FrontendOrigins = strings.Split(origins, ";")
	}
	if words := os.Getenv("REVIEW_WORDS"); words != "" {
		cfg.ReviewWords = strings.Split(words, ",")
	}
	return cfg, nil
}
