package store

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"scene-editor/internal/primitives"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS objects (
	pos    INTEGER PRIMARY KEY,
	type   TEXT    NOT NULL,
	matrix BLOB    NOT NULL,
	r INTEGER NOT NULL, g INTEGER NOT NULL, b INTEGER NOT NULL, a INTEGER NOT NULL,
	sx REAL NOT NULL, sy REAL, sz REAL
)`

// SQLiteStore keeps the scene in an SQLite table, one row per object ordered by pos.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database at dbPath. The file is not read until the
// first Load or Dump, which check the schema version and create the table.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	dsn := fmt.Sprintf("file:%s?mode=rwc&_pragma=busy_timeout(5000)", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return &SQLiteStore{db: db}, nil
}

// migrate checks user_version and creates the schema. A file SQLite cannot read is ErrCorrupt.
func (s *SQLiteStore) migrate(ctx context.Context) error {
	var version int
	if err := s.db.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if version > SchemaVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	if _, err := s.db.ExecContext(ctx, sqliteSchema); err != nil {
		return fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, SchemaVersion))
	return err
}

// Load returns every row in pos order.
func (s *SQLiteStore) Load(ctx context.Context) ([]Record, error) {
	if err := s.migrate(ctx); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT type, matrix, r, g, b, a, sx, sy, sz
		FROM objects
		ORDER BY pos
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		var (
			kind       string
			matrix     []byte
			r, g, b, a uint8
			sx         float32
			sy, sz     sql.NullFloat64
		)
		if err := rows.Scan(&kind, &matrix, &r, &g, &b, &a, &sx, &sy, &sz); err != nil {
			return nil, err
		}
		rec, err := rowRecord(kind, matrix, color.RGBA{R: r, G: g, B: b, A: a}, sx, sy, sz)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(recs), err)
		}
		recs = append(recs, rec)
	}
	return recs, rows.Err()
}

func rowRecord(kind string, matrix []byte, ambient color.RGBA, sx float32, sy, sz sql.NullFloat64) (Record, error) {
	k, err := primitives.ParseKind(kind)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	if len(matrix) != 16*4 {
		return Record{}, fmt.Errorf("%w: matrix blob is %d bytes", ErrCorrupt, len(matrix))
	}
	rec := Record{Ambient: ambient}
	for i := range rec.Matrix {
		rec.Matrix[i] = math.Float32frombits(binary.LittleEndian.Uint32(matrix[i*4:]))
	}
	dims := []float32{sx}
	if k == primitives.KindBox {
		dims = append(dims, float32(sy.Float64), float32(sz.Float64))
	}
	if rec.Figure, err = primitives.NewFigure(k, dims); err != nil {
		return Record{}, err
	}
	return rec, rec.Validate()
}

// Dump replaces all rows inside one transaction.
func (s *SQLiteStore) Dump(ctx context.Context, recs []Record) error {
	if err := s.migrate(ctx); err != nil {
		return err
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM objects`); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	for i, rec := range recs {
		if err := rec.Validate(); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		matrix := make([]byte, 16*4)
		for j, v := range rec.Matrix {
			binary.LittleEndian.PutUint32(matrix[j*4:], math.Float32bits(v))
		}
		dims := rec.Figure.Dims()
		var sy, sz any
		if len(dims) == 3 {
			sy, sz = float64(dims[1]), float64(dims[2])
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO objects (pos, type, matrix, r, g, b, a, sx, sy, sz)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, i, string(rec.Kind()), matrix,
			int64(rec.Ambient.R), int64(rec.Ambient.G), int64(rec.Ambient.B), int64(rec.Ambient.A),
			float64(dims[0]), sy, sz)
		if err != nil {
			return fmt.Errorf("insert %d: %w", i, err)
		}
	}
	return tx.Commit()
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
