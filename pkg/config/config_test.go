package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/stock-ledger/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "stock-ledger", cfg.App.Name)
	assert.Equal(t, config.StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 2, cfg.Inventory.SaleCommitAttempts)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "MEMORY")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SALE_COMMIT_ATTEMPTS", "3")
	t.Setenv("JWT_SECRET", "s3cr3t")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3, cfg.Inventory.SaleCommitAttempts)
	assert.Equal(t, "s3cr3t", cfg.JWT.Secret)
}

func TestLoad_DriverInvalido_RetornaError(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "mongo")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "ledger", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/ledger?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
