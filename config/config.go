package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv                  string
	Port                    string
	DatabaseURL             string
	DBType                  string
	DBMaxIdleConns          int
	DBMaxOpenConns          int
	JWTAccessSecret         string
	JWTRefreshSecret        string
	JWTAccessExpiration     time.Duration
	JWTRefreshExpiration    time.Duration
	CookieAccessExpiration  int
	CookieRefreshExpiration int
	FrontendURL             string
	NatsURL                 string
	ReminderCron            string
	SeedData                bool
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("%s not set, defaulting to %s", key, defaultValue)
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Invalid integer value for %s, defaulting to %d", key, defaultValue)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid duration value for %s, defaulting to %s", key, defaultValue)
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
		log.Printf("Invalid boolean value for %s, defaulting to %v", key, defaultValue)
	}
	return defaultValue
}

func Load() Config {
	log.Println("Loading configuration...")

	cfg := Config{
		AppEnv:               getEnv("NODE_ENV", "development"),
		Port:                 getEnv("PORT", "3001"),
		DatabaseURL:          getEnv("DATABASE_URL", "host=localhost port=5432 user=taskdeck password=taskdeck dbname=taskdeck sslmode=disable"),
		DBType:               getEnv("DB_TYPE", "postgres"),
		DBMaxIdleConns:       getEnvAsInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns:       getEnvAsInt("DB_MAX_OPEN_CONNS", 100),
		JWTAccessSecret:      getEnv("JWT_ACCESS_SECRET", "default_access_secret"),
		JWTRefreshSecret:     getEnv("JWT_REFRESH_SECRET", "default_refresh_secret"),
		JWTAccessExpiration:  getEnvAsDuration("JWT_ACCESS_EXPIRATION", 15*time.Minute),
		JWTRefreshExpiration: getEnvAsDuration("JWT_REFRESH_EXPIRATION", 7*24*time.Hour),
		// Cookie lifetimes are seconds, the unit gin's SetCookie expects.
		CookieAccessExpiration:  getEnvAsInt("COOKIE_ACCESS_EXPIRATION", 15*60),
		CookieRefreshExpiration: getEnvAsInt("COOKIE_REFRESH_EXPIRATION", 7*24*60*60),
		FrontendURL:             getEnv("FRONTEND_URL", "http://localhost:3000"),
		NatsURL:                 getEnv("NATS_URL", "nats://localhost:4222"),
		ReminderCron:            getEnv("REMINDER_CRON", "@hourly"),
		SeedData:                getEnvAsBool("SEED_DATA", false),
	}

	if cfg.JWTAccessSecret == "default_access_secret" || cfg.JWTRefreshSecret == "default_refresh_secret" {
		log.Println("Warning: using default JWT secrets, set JWT_ACCESS_SECRET and JWT_REFRESH_SECRET in production")
	}

	return cfg
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
