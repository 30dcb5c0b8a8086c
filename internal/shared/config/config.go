package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env  string
	Port string

	JWTSecret string
	JWTTTL    time.Duration

	PrimaryMongoURI  string
	EmployeeMongoURI string
	CustomerMongoURI string

	PrimaryDB  string
	EmployeeDB string
	CustomerDB string

	RedisAddr   string
	KafkaBroker string

	// AttendanceLocation decides what "today" and clock times mean.
	AttendanceLocation *time.Location
	ConnectRetries     int
}

// Load reads the process environment. godotenv has already populated it from
// .env when present.
func Load() (Config, error) {
	cfg := Config{
		Env:              getenv("APP_ENV", "development"),
		Port:             getenv("PORT", "3000"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		PrimaryMongoURI:  os.Getenv("PRIMARY_MONGO_URI"),
		EmployeeMongoURI: os.Getenv("EMPLOYEE_MONGO_URI"),
		CustomerMongoURI: os.Getenv("CUSTOMER_MONGO_URI"),
		PrimaryDB:        getenv("PRIMARY_DB", "stationops"),
		EmployeeDB:       getenv("EMPLOYEE_DB", "stationops_employees"),
		CustomerDB:       getenv("CUSTOMER_DB", "stationops_customers"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		KafkaBroker:      os.Getenv("KAFKA_BROKER"),
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.PrimaryMongoURI == "" {
		return Config{}, fmt.Errorf("PRIMARY_MONGO_URI is required")
	}

	ttl, err := time.ParseDuration(getenv("JWT_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	loc, err := time.LoadLocation(getenv("ATTENDANCE_TZ", "Local"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid ATTENDANCE_TZ: %w", err)
	}
	cfg.AttendanceLocation = loc

	retries, err := strconv.Atoi(getenv("DB_CONNECT_RETRIES", "5"))
	if err != nil || retries < 1 {
		return Config{}, fmt.Errorf("invalid DB_CONNECT_RETRIES")
	}
	cfg.ConnectRetries = retries

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
