package db

import (
	"testing"

	"app/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN_FromConfig(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	cfg := config.Config{
		PostgresHost:     "db.internal",
		PostgresPort:     5433,
		PostgresUser:     "shop",
		PostgresPassword: "secret",
		PostgresDB:       "shopdb",
		PostgresSSLMode:  "require",
	}

	dsn := DSN(cfg)
	assert.Equal(t, "host=db.internal port=5433 user=shop password=secret dbname=shopdb sslmode=require", dsn)
}

func TestDSN_DatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@host:5432/db")

	cfg := config.Config{PostgresHost: "ignored"}

	assert.Equal(t, "postgres://u:p@host:5432/db", DSN(cfg))
}
