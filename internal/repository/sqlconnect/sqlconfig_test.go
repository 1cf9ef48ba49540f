package sqlconnect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSQLite_InMemory(t *testing.T) {
	db, err := ConnectSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	defer db.Close()

	var n int
	require.NoError(t, db.QueryRow(`SELECT 1 + 1`).Scan(&n))
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, db.Stats().MaxOpenConnections)
}

func TestConnectPostgres_RequiresDSN(t *testing.T) {
	_, err := ConnectPostgres(context.Background(), DriverPGX, "")
	assert.Error(t, err)
}

func TestConnectPostgres_UnknownDriver(t *testing.T) {
	_, err := ConnectPostgres(context.Background(), "mysql", "postgres://localhost/books")
	assert.ErrorContains(t, err, "unknown postgres driver")
}
