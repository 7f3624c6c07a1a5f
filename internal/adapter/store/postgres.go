package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/arturoeanton/go-batch-assistant-ollama/internal/domain"
)

// PostgresStore handles all relational database operations.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a connection and returns a store instance.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Close closes the database connection.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use in transactions.
func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

// Query executes a SQL statement produced by the pipeline and returns rows
// with column order preserved. Any execution failure is returned verbatim;
// the pipeline decides how to surface it. Rows are fully drained and closed
// on every path.
func (s *PostgresStore) Query(ctx context.Context, sqlText string) ([]domain.Row, error) {
	rows, err := s.db.QueryContext(ctx, sqlText)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("read columns: %w", err)
	}

	var results []domain.Row
	for rows.Next() {
		values := make([]any, len(columns))
		scanTargets := make([]any, len(columns))
		for i := range values {
			scanTargets[i] = &values[i]
		}
		if err := rows.Scan(scanTargets...); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for i, v := range values {
			// lib/pq hands text columns back as []byte.
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		results = append(results, domain.Row{Columns: columns, Values: values})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// EnsureSchema creates the batch-tracking tables if they do not exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS departments (
		id   SERIAL PRIMARY KEY,
		name TEXT UNIQUE
	);

	CREATE TABLE IF NOT EXISTS employees (
		id            SERIAL PRIMARY KEY,
		name          TEXT,
		department_id INTEGER REFERENCES departments(id)
	);

	CREATE TABLE IF NOT EXISTS products (
		id   SERIAL PRIMARY KEY,
		name TEXT,
		code TEXT UNIQUE
	);

	CREATE TABLE IF NOT EXISTS batches (
		id         SERIAL PRIMARY KEY,
		batch_code TEXT UNIQUE,
		product_id INTEGER REFERENCES products(id)
	);

	CREATE TABLE IF NOT EXISTS batch_tracking (
		id            SERIAL PRIMARY KEY,
		batch_id      INTEGER REFERENCES batches(id),
		department_id INTEGER REFERENCES departments(id),
		employee_id   INTEGER REFERENCES employees(id),
		timestamp     TIMESTAMP DEFAULT NOW(),
		status        TEXT
	);`

	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// Seed inserts the sample batch-tracking data. It is a no-op when batches
// already exist, so running it on every start is safe.
func (s *PostgresStore) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM batches`).Scan(&count); err != nil {
		return fmt.Errorf("seed precheck: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed begin tx: %w", err)
	}
	defer tx.Rollback()

	statements := []string{
		`INSERT INTO departments (name) VALUES
			('Packaging'), ('Quality Control'), ('Storage'), ('Delivery')
		 ON CONFLICT (name) DO NOTHING`,

		`INSERT INTO employees (name, department_id) VALUES
			('John',   (SELECT id FROM departments WHERE name = 'Packaging')),
			('Sara',   (SELECT id FROM departments WHERE name = 'Quality Control')),
			('Mike',   (SELECT id FROM departments WHERE name = 'Storage')),
			('Anna',   (SELECT id FROM departments WHERE name = 'Delivery')),
			('Vikram', (SELECT id FROM departments WHERE name = 'Packaging')),
			('Riya',   (SELECT id FROM departments WHERE name = 'Storage'))`,

		`INSERT INTO products (name, code) VALUES
			('Vitamin D Tablets', 'VDT'),
			('Pain Relief Gel',   'PRG'),
			('Cough Syrup',       'CSY')
		 ON CONFLICT (code) DO NOTHING`,

		`INSERT INTO batches (batch_code, product_id) VALUES
			('VDT-052025-A', (SELECT id FROM products WHERE code = 'VDT')),
			('PRG-052025-B', (SELECT id FROM products WHERE code = 'PRG')),
			('CSY-052025-C', (SELECT id FROM products WHERE code = 'CSY'))
		 ON CONFLICT (batch_code) DO NOTHING`,

		// Timestamps are staggered so status history queries order cleanly.
		`INSERT INTO batch_tracking (batch_id, department_id, employee_id, status, timestamp)
		 SELECT b.id, d.id, e.id, t.status, NOW() - t.age
		 FROM (VALUES
			('VDT-052025-A', 'Packaging',       'John',   'Packed',     interval '8 hours'),
			('VDT-052025-A', 'Quality Control', 'Sara',   'Inspected',  interval '7 hours'),
			('VDT-052025-A', 'Storage',         'Mike',   'Stored',     interval '6 hours'),
			('VDT-052025-A', 'Delivery',        'Anna',   'Dispatched', interval '5 hours'),
			('PRG-052025-B', 'Packaging',       'Vikram', 'Packed',     interval '4 hours'),
			('PRG-052025-B', 'Quality Control', 'Sara',   'Inspected',  interval '3 hours'),
			('PRG-052025-B', 'Storage',         'Riya',   'Stored',     interval '2 hours'),
			('CSY-052025-C', 'Packaging',       'John',   'Packed',     interval '90 minutes'),
			('CSY-052025-C', 'Delivery',        'Anna',   'Dispatched', interval '1 hour')
		 ) AS t(batch_code, department, employee, status, age)
		 JOIN batches b ON b.batch_code = t.batch_code
		 JOIN departments d ON d.name = t.department
		 JOIN employees e ON e.name = t.employee`,
	}

	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("seed: %w", err)
		}
	}

	return tx.Commit()
}
