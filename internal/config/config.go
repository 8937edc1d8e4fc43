package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Server  ServerConfig
	Scraper ScraperConfig
}

type ServerConfig struct {
	Port int
}

type ScraperConfig struct {
	Headless           bool
	TimeoutSeconds     int
	SearchWaitSeconds  int
	HeadingWaitSeconds int
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvInt("PORT", 5000),
		},
		Scraper: ScraperConfig{
			Headless:           getEnvBool("SCRAPER_HEADLESS", true),
			TimeoutSeconds:     getEnvInt("SCRAPER_TIMEOUT", 30),
			SearchWaitSeconds:  getEnvInt("SCRAPER_SEARCH_WAIT", 10),
			HeadingWaitSeconds: getEnvInt("SCRAPER_HEADING_WAIT", 8),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Scraper.TimeoutSeconds <= 0 {
		return fmt.Errorf("invalid scraper timeout: %d", c.Scraper.TimeoutSeconds)
	}
	if c.Scraper.SearchWaitSeconds <= 0 {
		return fmt.Errorf("invalid search wait: %d", c.Scraper.SearchWaitSeconds)
	}
	if c.Scraper.HeadingWaitSeconds <= 0 {
		return fmt.Errorf("invalid heading wait: %d", c.Scraper.HeadingWaitSeconds)
	}
	return nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
