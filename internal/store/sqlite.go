// SQLite backend. Dataset metadata and the serialized table body live in
// a single datasets table; the body column holds the same JSON the JSONL
// backend writes.
package store

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/datakit/pkg/table"
)

const databaseFile = "datasets.db"

// Schema DDL.
const (
	createDatasets = `CREATE TABLE IF NOT EXISTS datasets (
    dataset_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    body TEXT NOT NULL
);`

	idxDatasetsName = `CREATE INDEX IF NOT EXISTS idx_datasets_name ON datasets(name);`
)

type sqliteStore struct {
	mu     sync.RWMutex
	db     *sql.DB
	closed bool
}

func openSQLite(dataDir string) (*sqliteStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", filepath.Join(dataDir, databaseFile))
	if err != nil {
		return nil, err
	}
	for _, ddl := range []string{createDatasets, idxDatasetsName} {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, err
		}
	}
	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Save(name string, t *table.Table) (Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Dataset{}, ErrStoreClosed
	}

	body, err := json.Marshal(t)
	if err != nil {
		return Dataset{}, err
	}

	now := time.Now().UTC()
	d := Dataset{ID: newDatasetID(), Name: name, CreatedAt: now, UpdatedAt: now, Table: t}

	// Replacing keeps the dataset's identity and creation time.
	var existingID, existingCreated string
	err = s.db.QueryRow(`SELECT dataset_id, created_at FROM datasets WHERE name = ?`, name).
		Scan(&existingID, &existingCreated)
	switch err {
	case nil:
		d.ID = existingID
		if created, perr := time.Parse(time.RFC3339Nano, existingCreated); perr == nil {
			d.CreatedAt = created
		}
		_, err = s.db.Exec(`UPDATE datasets SET updated_at = ?, body = ? WHERE dataset_id = ?`,
			d.UpdatedAt.Format(time.RFC3339Nano), string(body), d.ID)
	case sql.ErrNoRows:
		_, err = s.db.Exec(`INSERT INTO datasets (dataset_id, name, created_at, updated_at, body) VALUES (?, ?, ?, ?, ?)`,
			d.ID, d.Name, d.CreatedAt.Format(time.RFC3339Nano), d.UpdatedAt.Format(time.RFC3339Nano), string(body))
	}
	if err != nil {
		return Dataset{}, err
	}
	return d, nil
}

func (s *sqliteStore) Load(name string) (Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return Dataset{}, ErrStoreClosed
	}

	var rec datasetRecord
	var body string
	err := s.db.QueryRow(`SELECT dataset_id, created_at, updated_at, body FROM datasets WHERE name = ?`, name).
		Scan(&rec.DatasetID, &rec.CreatedAt, &rec.UpdatedAt, &body)
	if err == sql.ErrNoRows {
		return Dataset{}, ErrDatasetNotFound
	}
	if err != nil {
		return Dataset{}, err
	}
	rec.Name = name
	rec.Table = json.RawMessage(body)
	return rec.toDataset(true)
}

func (s *sqliteStore) List() ([]Dataset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(`SELECT dataset_id, name, created_at, updated_at FROM datasets ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	datasets := []Dataset{}
	for rows.Next() {
		var rec datasetRecord
		if err := rows.Scan(&rec.DatasetID, &rec.Name, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		d, err := rec.toDataset(false)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, d)
	}
	return datasets, rows.Err()
}

func (s *sqliteStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	res, err := s.db.Exec(`DELETE FROM datasets WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrDatasetNotFound
	}
	return nil
}

// Close is idempotent.
func (s *sqliteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
