// Package dbtest opens throwaway SQLite databases with the production schema.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/padraicbc/gymapi/config"
	"github.com/padraicbc/gymapi/db"
)

var seq atomic.Int64

// New returns an in-memory database private to t, closed on cleanup.
func New(t testing.TB) *bun.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	bdb, err := db.Open(config.DriverSQLite, dsn, false)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bdb.Close() })

	require.NoError(t, db.CreateTables(context.Background(), bdb))
	return bdb
}
