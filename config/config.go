package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds everything the kiosk reads from the environment.
type Config struct {
	Port    string
	GinMode string

	LogLevel  string
	LogFormat string

	DBDriver string
	DBDSN    string

	JWTSecret string
	JWTTTL    time.Duration

	TaxRate  decimal.Decimal
	EarnRate decimal.Decimal

	GuestOrderRetention time.Duration
	PurgeInterval       time.Duration

	AdminEmail     string
	CurrencySymbol string
	CORSOrigin     string
	SeedMenu       bool
}

// Default returns the configuration used when no environment is set.
func Default() Config {
	return Config{
		Port:                "5000",
		GinMode:             "debug",
		LogLevel:            "info",
		LogFormat:           "text",
		DBDriver:            "sqlite",
		DBDSN:               "cafe_kiosk.db",
		JWTSecret:           "cafe-kiosk-dev-secret",
		JWTTTL:              7 * 24 * time.Hour,
		TaxRate:             decimal.RequireFromString("0.05"),
		EarnRate:            decimal.RequireFromString("0.05"),
		GuestOrderRetention: time.Hour,
		PurgeInterval:       time.Minute,
		AdminEmail:          "admin@cafe.com",
		CurrencySymbol:      "₹",
		CORSOrigin:          "*",
		SeedMenu:            true,
	}
}

// Load reads .env (if present) and the process environment on top of Default.
func Load() (Config, error) {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg := Default()
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.GinMode = getEnv("GIN_MODE", cfg.GinMode)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = getEnv("LOG_FORMAT", cfg.LogFormat)
	cfg.DBDriver = getEnv("DB_DRIVER", cfg.DBDriver)
	cfg.DBDSN = getEnv("DB_DSN", cfg.DBDSN)
	cfg.JWTSecret = getEnv("JWT_SECRET", cfg.JWTSecret)
	cfg.AdminEmail = getEnv("ADMIN_EMAIL", cfg.AdminEmail)
	cfg.CurrencySymbol = getEnv("CURRENCY_SYMBOL", cfg.CurrencySymbol)
	cfg.CORSOrigin = getEnv("CORS_ORIGIN", cfg.CORSOrigin)

	var err error
	if cfg.JWTTTL, err = getDuration("JWT_TTL", cfg.JWTTTL); err != nil {
		return cfg, err
	}
	if cfg.GuestOrderRetention, err = getDuration("GUEST_ORDER_RETENTION", cfg.GuestOrderRetention); err != nil {
		return cfg, err
	}
	if cfg.PurgeInterval, err = getDuration("PURGE_INTERVAL", cfg.PurgeInterval); err != nil {
		return cfg, err
	}
	if cfg.TaxRate, err = getRate("TAX_RATE", cfg.TaxRate); err != nil {
		return cfg, err
	}
	if cfg.EarnRate, err = getRate("EARN_RATE", cfg.EarnRate); err != nil {
		return cfg, err
	}
	if v := os.Getenv("SEED_MENU"); v != "" {
		if cfg.SeedMenu, err = strconv.ParseBool(v); err != nil {
			return cfg, fmt.Errorf("SEED_MENU: %w", err)
		}
	}

	if cfg.PurgeInterval <= 0 {
		return cfg, fmt.Errorf("PURGE_INTERVAL must be positive, got %s", cfg.PurgeInterval)
	}
	if cfg.GuestOrderRetention < 0 {
		return cfg, fmt.Errorf("GUEST_ORDER_RETENTION must not be negative, got %s", cfg.GuestOrderRetention)
	}
	return cfg, nil
}

// InitDB opens the gorm connection for the configured driver.
func InitDB(cfg Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	}

	switch cfg.DBDriver {
	case "mysql":
		// DB_DSN must carry parseTime=true so DATETIME columns scan into time.Time
		return gorm.Open(mysql.Open(cfg.DBDSN), gormCfg)
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(cfg.DBDSN), gormCfg)
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func getRate(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	if d.IsNegative() {
		return fallback, fmt.Errorf("%s must not be negative", key)
	}
	return d, nil
}
