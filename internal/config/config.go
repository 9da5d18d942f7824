package config

import (
	"os"
	"strconv"
)

type JWTConfig struct {
	Secret   []byte
	TTLHours int
}

func LoadJWT() JWTConfig {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-in-production"
	}

	ttl := 24
	if v := os.Getenv("JWT_TTL_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}

	return JWTConfig{Secret: []byte(secret), TTLHours: ttl}
}

type AppConfig struct {
	Addr        string
	DatabaseURL string
	MongoURI    string
}

func Load() AppConfig {
	cfg := AppConfig{
		Addr:        os.Getenv("APP_ADDR"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		MongoURI:    os.Getenv("MONGO_URI"),
	}

	if cfg.Addr == "" {
		cfg.Addr = ":8080"
	}
	if cfg.MongoURI == "" {
		cfg.MongoURI = "mongodb://localhost:27017"
	}

	return cfg
}
