package config

import (
	"os"
	"time"
)

type Config struct {
	Addr        string
	DatabaseURL string
	DataDir     string

	CardDelay      time.Duration
	CODDelay       time.Duration
	AutoCloseDelay time.Duration
}

func Load() Config {
	return Config{
		Addr:           getenv("SHOP_ADDR", ":8080"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DataDir:        getenv("SHOP_DATA_DIR", "./data"),
		CardDelay:      duration("SHOP_CARD_DELAY", 1500*time.Millisecond),
		CODDelay:       duration("SHOP_COD_DELAY", 1200*time.Millisecond),
		AutoCloseDelay: duration("SHOP_AUTOCLOSE_DELAY", 4*time.Second),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func duration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
