// Package storage provides a SQLite cache for the parsed vector table, so
// repeated startups skip the slow text parse.
package storage

import (
	"context"
	"database/sql"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tsawler/word-vector-sim/internal/vector"
)

// ErrNoCache is returned by LoadTable when the cache holds no table.
var ErrNoCache = errors.New("vector cache is empty")

// VectorCache stores a vector table as (word, blob) rows plus the dimension.
type VectorCache struct {
	db *sql.DB
}

// OpenCache opens or creates a SQLite vector cache at dbPath and initializes
// the schema. Parent directories are created if they do not exist.
func OpenCache(dbPath string) (*VectorCache, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return &VectorCache{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS meta (
		key TEXT PRIMARY KEY,
		value INTEGER NOT NULL
	);
	CREATE TABLE IF NOT EXISTS vectors (
		word TEXT PRIMARY KEY,
		vector BLOB NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return nil
}

// SaveTable replaces the cache contents with the given table.
func (c *VectorCache) SaveTable(ctx context.Context, t *vector.Table) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM vectors"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT OR REPLACE INTO meta (key, value) VALUES ('dimension', ?)", t.Dim()); err != nil {
		return fmt.Errorf("write dimension: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO vectors (word, vector) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, word := range t.Words() {
		vec, _ := t.Lookup(word)
		if _, err := stmt.ExecContext(ctx, word, encodeVector(vec)); err != nil {
			return fmt.Errorf("insert vector for %q: %w", word, err)
		}
	}
	return tx.Commit()
}

// LoadTable builds a vector table from the cache. Returns ErrNoCache when the
// cache has never been populated.
func (c *VectorCache) LoadTable(ctx context.Context) (*vector.Table, error) {
	var dim int
	err := c.db.QueryRowContext(ctx,
		"SELECT value FROM meta WHERE key = 'dimension'").Scan(&dim)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoCache
	}
	if err != nil {
		return nil, fmt.Errorf("read dimension: %w", err)
	}

	table, err := vector.NewTable(dim)
	if err != nil {
		return nil, fmt.Errorf("cached dimension invalid: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, "SELECT word, vector FROM vectors")
	if err != nil {
		return nil, fmt.Errorf("read vectors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var word string
		var blob []byte
		if err := rows.Scan(&word, &blob); err != nil {
			return nil, fmt.Errorf("scan vector row: %w", err)
		}
		if err := table.Put(word, decodeVector(blob)); err != nil {
			// Row with a wrong-size blob; skip it like a malformed line.
			continue
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vectors: %w", err)
	}
	if table.Size() == 0 {
		return nil, ErrNoCache
	}
	return table, nil
}

// Close closes the underlying database.
func (c *VectorCache) Close() error {
	return c.db.Close()
}

// encodeVector packs a float32 slice into little-endian bytes.
func encodeVector(s []float32) []byte {
	const size = 4
	out := make([]byte, len(s)*size)
	for i, v := range s {
		binary.LittleEndian.PutUint32(out[i*size:(i+1)*size], math.Float32bits(v))
	}
	return out
}

// decodeVector unpacks little-endian bytes into a float32 slice.
func decodeVector(b []byte) []float32 {
	const size = 4
	out := make([]float32, len(b)/size)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*size : (i+1)*size]))
	}
	return out
}
