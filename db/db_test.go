package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/gymapi/config"
	"github.com/padraicbc/gymapi/models"
)

func TestCreateTablesIdempotent(t *testing.T) {
	ctx := context.Background()
	bdb, err := Open(config.DriverSQLite, "file:create_tables?mode=memory&cache=shared", false)
	require.NoError(t, err)
	defer bdb.Close()

	require.NoError(t, CreateTables(ctx, bdb))
	require.NoError(t, CreateTables(ctx, bdb))

	n, err := bdb.NewSelect().Model((*models.TrainerPayroll)(nil)).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "", false)
	assert.ErrorContains(t, err, "unsupported driver")
}
