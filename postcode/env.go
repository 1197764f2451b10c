package postcode

import (
	"os"
	"strings"
)

// Environment variables locating the lookup table. A DSN wins over a
// file path when both are set.
const (
	// EnvPostgresDSN names a Postgres connection string for the pc2ng table.
	EnvPostgresDSN = "PC2NG_PG_DSN"
	// EnvTablePath names a CSV table file on disk.
	EnvTablePath = "PC2NG_PATH"
)

// NewSourceFromEnv builds a Source from the environment: Postgres when
// PC2NG_PG_DSN is set, otherwise the CSV table at PC2NG_PATH.
// Returns ErrNoSource when neither is configured.
func NewSourceFromEnv() (Source, error) {
	if dsn := strings.TrimSpace(os.Getenv(EnvPostgresDSN)); dsn != "" {
		return OpenPostgres(dsn)
	}
	if path := strings.TrimSpace(os.Getenv(EnvTablePath)); path != "" {
		return OpenCSV(path), nil
	}
	return nil, ErrNoSource
}
