package main

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/padraicbc/gymapi/db/dbtest"
	"github.com/padraicbc/gymapi/models"
)

func legacyDB(t *testing.T) *sql.DB {
	t.Helper()
	src, err := sql.Open(sqliteshim.ShimName, fmt.Sprintf("file:legacy_%d?mode=memory&cache=shared", time.Now().UnixNano()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	_, err = src.Exec(`CREATE TABLE trainers (
		trainer_id INTEGER PRIMARY KEY, user_id INTEGER, specialization TEXT, certifications TEXT,
		hire_date DATETIME, hourly_rate REAL, employment_type TEXT)`)
	require.NoError(t, err)
	_, err = src.Exec(`INSERT INTO trainers (trainer_id, specialization, hourly_rate, employment_type) VALUES
		(4, 'Yoga', 22.5, 'Part-time'),
		(9, 'Boxing', 30, NULL)`)
	require.NoError(t, err)
	return src
}

func TestMigrateTrainersCountsInsertedRows(t *testing.T) {
	ctx := context.Background()
	src := legacyDB(t)
	dst := dbtest.New(t)

	n, err := migrateTrainers(ctx, src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var got []models.Trainer
	require.NoError(t, dst.NewSelect().Model(&got).OrderExpr("trainer_id").Scan(ctx))
	require.Len(t, got, 2)
	assert.Equal(t, int64(4), got[0].TrainerID)
	assert.Equal(t, 22.5, got[0].HourlyRate)
	assert.Empty(t, got[1].EmploymentType)

	n, err = migrateTrainers(ctx, src, dst)
	require.NoError(t, err)
	assert.Equal(t, 0, n, "existing rows are skipped and not counted")
}

func TestOnDate(t *testing.T) {
	day := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	got, err := onDate(day, "09:30:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 4, 9, 30, 0, 0, time.UTC), got)

	_, err = onDate(day, "9.30")
	assert.Error(t, err)
}
