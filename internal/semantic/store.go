package semantic

import (
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"

	_ "modernc.org/sqlite" // SQLite driver
)

// SQLiteStore persists embedding vectors in a local SQLite database so a
// restarted session doesn't re-embed its canonical answers.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (and initializes) the vector store at path.
// Use ":memory:" for an ephemeral store in tests.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("vector store path cannot be empty")
	}
	db, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open vector store: %w", err)
	}
	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)

	schema := `
	CREATE TABLE IF NOT EXISTS embeddings (
		model TEXT NOT NULL,
		text TEXT NOT NULL,
		vector BLOB NOT NULL,
		PRIMARY KEY (model, text)
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize vector store schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Get fetches a stored vector. The second return is false on a miss.
func (s *SQLiteStore) Get(ctx context.Context, model, text string) ([]float32, bool, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT vector FROM embeddings WHERE model = ? AND text = ?`, model, text,
	).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read vector: %w", err)
	}
	vec, err := decodeVector(blob)
	if err != nil {
		return nil, false, err
	}
	return vec, true, nil
}

// Put stores a vector, replacing any previous entry for the same key.
func (s *SQLiteStore) Put(ctx context.Context, model, text string, vec []float32) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO embeddings (model, text, vector) VALUES (?, ?, ?)`,
		model, text, encodeVector(vec))
	if err != nil {
		return fmt.Errorf("write vector: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// encodeVector packs float32s little-endian.
func encodeVector(vec []float32) []byte {
	buf := make([]byte, 4*len(vec))
	for i, f := range vec {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

func decodeVector(blob []byte) ([]float32, error) {
	if len(blob)%4 != 0 {
		return nil, fmt.Errorf("corrupt vector blob of %d bytes", len(blob))
	}
	vec := make([]float32, len(blob)/4)
	for i := range vec {
		vec[i] = math.Float32frombits(binary.LittleEndian.Uint32(blob[i*4:]))
	}
	return vec, nil
}
