package postcode

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// PostgresSource serves lookups from a pc2ng table in Postgres:
//
//	CREATE TABLE pc2ng (
//	    postcode TEXT PRIMARY KEY, -- normalized, no whitespace, upper case
//	    grid_1km TEXT NOT NULL
//	);
//
// Population of the table is an external concern.
type PostgresSource struct {
	db *sql.DB
}

// OpenPostgres connects to dsn over the pgx stdlib driver and verifies
// the connection with a ping.
func OpenPostgres(dsn string) (*PostgresSource, error) {
	db, err := sql.Open("pgx", strings.TrimSpace(dsn))
	if err != nil {
		return nil, fmt.Errorf("postcode: open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postcode: ping postgres: %w", err)
	}
	return &PostgresSource{db: db}, nil
}

// GridRef1km implements Source.
func (s *PostgresSource) GridRef1km(ctx context.Context, postcode string) (string, error) {
	var ref string
	err := s.db.QueryRowContext(ctx,
		`SELECT grid_1km FROM pc2ng WHERE postcode = $1`, postcode,
	).Scan(&ref)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %q", ErrNotFound, postcode)
	}
	if err != nil {
		return "", fmt.Errorf("postcode: query: %w", err)
	}
	return ref, nil
}

// Close releases the underlying connection pool.
func (s *PostgresSource) Close() error {
	return s.db.Close()
}
