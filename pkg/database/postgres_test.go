package database

import (
	"testing"

	"cinemax-api/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ PgxIface = (*DB)(nil)

func TestInitDB_InvalidDSN(t *testing.T) {
	db, err := InitDB(utils.DatabaseConfig{URL: "postgres://%zz", MaxConns: 1})
	require.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "parse pool config")
}
