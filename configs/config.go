package configs

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds everything the process needs at startup. All values come
// from the environment; the connection and port fields have development
// defaults, the JWT secret does not.
type Config struct {
	Env      string
	Port     string
	MongoURI string
	DBName   string

	JWTSecret string
	JWTTTL    time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:       getenv("APP_ENV", "development"),
		Port:      getenv("PORT", "5000"),
		MongoURI:  getenv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:    getenv("DB_NAME", "devconnect"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    time.Duration(getenvInt("JWT_TTL_SECONDS", 360000)) * time.Second,
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
