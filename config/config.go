package config

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Port        string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	RedisAddr   string
	CORSOrigins []string
	SeedFile    string
	RateLimit   RateLimitConfig
}

func LoadConfig() (*Config, error) {
	origins := strings.Split(envStr("CORS_ORIGINS", "http://localhost:4200,http://127.0.0.1:4200"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}

	return &Config{
		Port:        envStr("PORT", "8080"),
		DBHost:      envStr("DB_HOST", "localhost"),
		DBPort:      envStr("DB_PORT", "5432"),
		DBUser:      envStr("DB_USER", "slotbook"),
		DBPassword:  envStr("DB_PASSWORD", ""),
		DBName:      envStr("DB_NAME", "slotbook"),
		RedisAddr:   envStr("REDIS_ADDR", ""),
		CORSOrigins: origins,
		SeedFile:    envStr("SEED_FILE", "categories.yaml"),
		RateLimit:   LoadRateLimitConfig(),
	}, nil
}

func InitDatabase(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := SeedCategories(db, cfg.SeedFile); err != nil {
		return nil, err
	}

	return db, nil
}
