// cmd/migrate/main.go
// Creates the schema on the configured database and, when LEGACY_MYSQL_DSN is
// set, copies users, trainers, classes and payrolls from the legacy MySQL database.
//
// Usage:
//
//	LEGACY_MYSQL_DSN="user:pass@tcp(host:3306)/gym?parseTime=true" \
//	DB_PASS="pgpass" JWT_SECRET=x \
//	go run ./cmd/migrate
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"

	"github.com/padraicbc/gymapi/config"
	bundb "github.com/padraicbc/gymapi/db"
	"github.com/padraicbc/gymapi/models"
)

const batchSize = 500

func main() {
	ctx := context.Background()

	cfg := config.Load()

	dst, err := bundb.Setup(ctx, cfg)
	if err != nil {
		log.Fatalf("open %s: %v", cfg.Driver, err)
	}
	defer dst.Close()
	log.Printf("connected to %s", cfg.Driver)

	if err := bundb.CreateTables(ctx, dst); err != nil {
		log.Fatalf("create tables: %v", err)
	}
	log.Println("schema ready")

	if cfg.LegacyMySQLDSN == "" {
		return
	}

	legacy, err := sql.Open("mysql", cfg.LegacyMySQLDSN)
	if err != nil {
		log.Fatalf("open mysql: %v", err)
	}
	defer legacy.Close()
	legacy.SetMaxOpenConns(4)
	if err := legacy.PingContext(ctx); err != nil {
		log.Fatalf("ping mysql: %v", err)
	}
	log.Println("connected to legacy MySQL")

	// Parents before children so foreign keys hold throughout.
	steps := []struct {
		name string
		fn   func() (int, error)
	}{
		{"users", func() (int, error) { return migrateUsers(ctx, legacy, dst) }},
		{"trainers", func() (int, error) { return migrateTrainers(ctx, legacy, dst) }},
		{"classes", func() (int, error) { return migrateClasses(ctx, legacy, dst) }},
		{"payrolls", func() (int, error) { return migratePayrolls(ctx, legacy, dst) }},
	}

	for _, s := range steps {
		n, err := s.fn()
		if err != nil {
			log.Fatalf("migrate %s: %v", s.name, err)
		}
		log.Printf("%-10s  %d rows migrated", s.name, n)
	}

	if dst.Dialect().Name() == dialect.PG {
		resetSequences(ctx, dst)
	}
	log.Println("migration complete")
}

// --- helpers ---

func nullStr(n sql.NullString) *string {
	if !n.Valid || strings.TrimSpace(n.String) == "" {
		return nil
	}
	return &n.String
}

func nullInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	return &n.Int64
}

func nullTime(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}
	t := n.Time.UTC()
	return &t
}

// onDate combines a legacy TIME column ("15:04:05") with the class date.
func onDate(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04:05", strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, fmt.Errorf("time %q: %w", clock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), t.Second(), 0, time.UTC), nil
}

// copyRows streams query through scan into dst in batches and returns the number
// of rows inserted. Rows that already exist are skipped so a rerun is harmless and
// reports 0. scan returning ok=false drops the row.
func copyRows[T any](ctx context.Context, legacy *sql.DB, dst *bun.DB, query string,
	scan func(*sql.Rows) (T, bool, error)) (int, error) {
	rows, err := legacy.QueryContext(ctx, query)
	if err != nil {
		return 0, err
	}
	defer rows.Close()

	batch := make([]T, 0, batchSize)
	total := 0
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		res, err := dst.NewInsert().Model(&batch).Ignore().Exec(ctx)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		total += int(n)
		batch = batch[:0]
		return nil
	}

	for rows.Next() {
		r, ok, err := scan(rows)
		if err != nil {
			return total, err
		}
		if !ok {
			continue
		}
		batch = append(batch, r)
		if len(batch) >= batchSize {
			if err := flush(); err != nil {
				return total, err
			}
		}
	}
	if err := rows.Err(); err != nil {
		return total, err
	}
	return total, flush()
}

// --- per-table migrations ---

func migrateUsers(ctx context.Context, legacy *sql.DB, dst *bun.DB) (int, error) {
	return copyRows(ctx, legacy, dst,
		`SELECT user_id, first_name, last_name, email, password, phone, address, role, created_at
		 FROM users`,
		func(rows *sql.Rows) (models.User, bool, error) {
			var (
				u         models.User
				lastName  sql.NullString
				phone     sql.NullString
				address   sql.NullString
				role      sql.NullString
				createdAt sql.NullTime
			)
			if err := rows.Scan(&u.UserID, &u.FirstName, &lastName, &u.Email, &u.Password,
				&phone, &address, &role, &createdAt); err != nil {
				return u, false, err
			}
			u.LastName = lastName.String
			u.Email = strings.ToLower(strings.TrimSpace(u.Email))
			u.Phone = nullStr(phone)
			u.Address = nullStr(address)
			u.Role = strings.ToLower(strings.TrimSpace(role.String))
			if !models.IsValidRole(u.Role) {
				u.Role = models.RoleMember
			}
			if t := nullTime(createdAt); t != nil {
				u.CreatedAt = *t
			}
			return u, true, nil
		})
}

func migrateTrainers(ctx context.Context, legacy *sql.DB, dst *bun.DB) (int, error) {
	return copyRows(ctx, legacy, dst,
		`SELECT trainer_id, user_id, specialization, certifications, hire_date, hourly_rate, employment_type
		 FROM trainers`,
		func(rows *sql.Rows) (models.Trainer, bool, error) {
			var (
				t              models.Trainer
				userID         sql.NullInt64
				specialization sql.NullString
				certifications sql.NullString
				hireDate       sql.NullTime
				hourlyRate     sql.NullFloat64
				employmentType sql.NullString
			)
			if err := rows.Scan(&t.TrainerID, &userID, &specialization, &certifications,
				&hireDate, &hourlyRate, &employmentType); err != nil {
				return t, false, err
			}
			t.UserID = nullInt64(userID)
			t.Specialization = specialization.String
			t.Certifications = certifications.String
			t.HireDate = nullTime(hireDate)
			t.HourlyRate = hourlyRate.Float64
			t.EmploymentType = employmentType.String
			return t, true, nil
		})
}

func migrateClasses(ctx context.Context, legacy *sql.DB, dst *bun.DB) (int, error) {
	return copyRows(ctx, legacy, dst,
		`SELECT class_id, class_name, trainer_id, class_date, start_time, end_time, capacity
		 FROM classes WHERE trainer_id IS NOT NULL`,
		func(rows *sql.Rows) (models.Class, bool, error) {
			var (
				c          models.Class
				date       time.Time
				start, end string
				capacity   sql.NullInt64
			)
			if err := rows.Scan(&c.ClassID, &c.ClassName, &c.TrainerID, &date, &start, &end, &capacity); err != nil {
				return c, false, err
			}
			c.ClassDate = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
			var err error
			if c.StartTime, err = onDate(c.ClassDate, start); err != nil {
				return c, false, fmt.Errorf("class %d start: %w", c.ClassID, err)
			}
			if c.EndTime, err = onDate(c.ClassDate, end); err != nil {
				return c, false, fmt.Errorf("class %d end: %w", c.ClassID, err)
			}
			if capacity.Valid {
				n := int(capacity.Int64)
				c.Capacity = &n
			}
			return c, true, nil
		})
}

func migratePayrolls(ctx context.Context, legacy *sql.DB, dst *bun.DB) (int, error) {
	return copyRows(ctx, legacy, dst,
		`SELECT payroll_id, trainer_id, month_year, total_hours, total_pay, paid_status
		 FROM trainer_payrolls WHERE trainer_id IS NOT NULL`,
		func(rows *sql.Rows) (models.TrainerPayroll, bool, error) {
			var (
				p          models.TrainerPayroll
				monthYear  string
				totalHours sql.NullFloat64
				totalPay   sql.NullFloat64
				paidStatus sql.NullString
			)
			if err := rows.Scan(&p.PayrollID, &p.TrainerID, &monthYear, &totalHours, &totalPay, &paidStatus); err != nil {
				return p, false, err
			}
			period, err := models.ParsePeriod(monthYear)
			if err != nil {
				log.Printf("skip payroll %d: %v", p.PayrollID, err)
				return p, false, nil
			}
			p.MonthYear = period
			p.TotalHours = totalHours.Float64
			p.TotalPay = totalPay.Float64
			p.PaidStatus = strings.ToLower(strings.TrimSpace(paidStatus.String))
			if !models.IsValidPaidStatus(p.PaidStatus) {
				p.PaidStatus = models.PaidStatusUnpaid
			}
			return p, true, nil
		})
}

// resetSequences advances each serial sequence to MAX(pk) so new inserts don't conflict.
func resetSequences(ctx context.Context, dst *bun.DB) {
	seqs := []struct{ table, col string }{
		{"users", "user_id"},
		{"trainers", "trainer_id"},
		{"classes", "class_id"},
		{"trainer_payrolls", "payroll_id"},
	}
	for _, s := range seqs {
		_, err := dst.ExecContext(ctx,
			"SELECT setval(pg_get_serial_sequence(?, ?), COALESCE((SELECT MAX(?) FROM ?), 1))",
			s.table, s.col, bun.Ident(s.col), bun.Ident(s.table),
		)
		if err != nil {
			log.Printf("reset sequence %s.%s: %v", s.table, s.col, err)
		}
	}
	log.Println("sequences reset")
}
