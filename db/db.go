package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/driver/sqliteshim"
	"github.com/uptrace/bun/extra/bundebug"
	"go.uber.org/zap"

	"github.com/padraicbc/gymapi/config"
	"github.com/padraicbc/gymapi/models"
)

// Setup opens the configured database and verifies the connection.
func Setup(ctx context.Context, cfg *config.Config) (*bun.DB, error) {
	db, err := Open(cfg.Driver, cfg.DSN(), cfg.Debug)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to %s database: %w", cfg.Driver, err)
	}
	return db, nil
}

// Open returns a bun.DB for driver ("postgres", "mysql" or "sqlite") without pinging it.
func Open(driver, dsn string, debug bool) (*bun.DB, error) {
	var db *bun.DB
	switch driver {
	case config.DriverPostgres:
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		db = bun.NewDB(sqldb, pgdialect.New())
	case config.DriverMySQL:
		sqldb, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("open mysql: %w", err)
		}
		db = bun.NewDB(sqldb, mysqldialect.New())
	case config.DriverSQLite:
		sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		db = bun.NewDB(sqldb, sqlitedialect.New())
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	if debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}
	return db, nil
}

// CreateTables creates all tables in dependency order.
func CreateTables(ctx context.Context, db bun.IDB) error {
	type fk struct {
		column, table, onDelete string
	}
	tables := []struct {
		model any
		fks   []fk
	}{
		{(*models.User)(nil), nil},
		{(*models.Trainer)(nil), []fk{{"user_id", "users", "SET NULL"}}},
		{(*models.Class)(nil), []fk{{"trainer_id", "trainers", "CASCADE"}}},
		{(*models.TrainerPayroll)(nil), []fk{{"trainer_id", "trainers", "CASCADE"}}},
	}

	for _, t := range tables {
		q := db.NewCreateTable().Model(t.model).IfNotExists()
		for _, k := range t.fks {
			q = q.ForeignKey("(?) REFERENCES ? (?) ON DELETE "+k.onDelete,
				bun.Ident(k.column), bun.Ident(k.table), bun.Ident(k.column))
		}
		if _, err := q.Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", t.model, err)
		}
	}

	indexes := []*bun.CreateIndexQuery{
		db.NewCreateIndex().Model((*models.Class)(nil)).Index("classes_trainer_date_idx").
			Column("trainer_id", "class_date").IfNotExists(),
		db.NewCreateIndex().Model((*models.TrainerPayroll)(nil)).Index("trainer_payrolls_trainer_idx").
			Column("trainer_id", "month_year").IfNotExists(),
	}
	for _, q := range indexes {
		if _, err := q.Exec(ctx); err != nil {
			// MySQL has no CREATE INDEX IF NOT EXISTS; a rerun reports a duplicate key name.
			zap.L().Warn("create index", zap.Error(err))
		}
	}

	return nil
}
