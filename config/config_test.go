package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_DRIVER", "ADMIN_EMAIL", "GUEST_ORDER_RETENTION", "TAX_RATE", "EARN_RATE", "SEED_MENU"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "admin@cafe.com", cfg.AdminEmail)
	assert.Equal(t, time.Hour, cfg.GuestOrderRetention)
	assert.Equal(t, "0.05", cfg.TaxRate.String())
	assert.Equal(t, "0.05", cfg.EarnRate.String())
	assert.True(t, cfg.SeedMenu)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("TAX_RATE", "0.18")
	t.Setenv("EARN_RATE", "0.1")
	t.Setenv("GUEST_ORDER_RETENTION", "30m")
	t.Setenv("PURGE_INTERVAL", "15s")
	t.Setenv("SEED_MENU", "false")
	t.Setenv("CURRENCY_SYMBOL", "$")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "0.18", cfg.TaxRate.String())
	assert.Equal(t, "0.1", cfg.EarnRate.String())
	assert.Equal(t, 30*time.Minute, cfg.GuestOrderRetention)
	assert.Equal(t, 15*time.Second, cfg.PurgeInterval)
	assert.False(t, cfg.SeedMenu)
	assert.Equal(t, "$", cfg.CurrencySymbol)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"TAX_RATE":              "-0.1",
		"EARN_RATE":             "lots",
		"JWT_TTL":               "forever",
		"PURGE_INTERVAL":        "0s",
		"GUEST_ORDER_RETENTION": "-1h",
		"SEED_MENU":             "maybe",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestInitDB_UnknownDriver(t *testing.T) {
	cfg := Default()
	cfg.DBDriver = "oracle"
	_, err := InitDB(cfg)
	assert.Error(t, err)
}

func TestInitDB_SQLite(t *testing.T) {
	cfg := Default()
	cfg.DBDSN = "file:config_test?mode=memory&cache=shared"
	db, err := InitDB(cfg)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	assert.Equal(t, 1, sqlDB.Stats().MaxOpenConnections)
}
