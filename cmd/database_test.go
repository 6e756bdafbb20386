package cmd_test

import (
	"testing"

	"marketplace/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDatabase_UnreachableServerReturnsError(t *testing.T) {
	cfg := cmd.Config{
		DBHost:    "127.0.0.1",
		DBPort:    "1",
		DBUser:    "postgres",
		DBName:    "marketplace",
		DBSslMode: "disable",
	}

	db, err := cmd.OpenDatabase(cfg.DSN() + " connect_timeout=1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connect database")
	assert.Nil(t, db)
}
