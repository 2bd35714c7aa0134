// Package store persists named datasets. A dataset is a validated table
// plus identity and timestamps; its body is stored in the same JSON form
// the table serializes to on the wire. Two backends are available: a
// JSONL file suited to git-tracked data directories, and a SQLite
// database for larger collections.
package store

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/datakit/pkg/table"
)

// Supported backend names.
const (
	BackendJSONL  = "jsonl"
	BackendSQLite = "sqlite"
)

// Store errors.
var (
	ErrBackendEmpty    = errors.New("backend must not be empty")
	ErrBackendUnknown  = errors.New("unknown backend")
	ErrDataDirEmpty    = errors.New("data directory must not be empty")
	ErrDatasetNotFound = errors.New("dataset not found")
	ErrStoreClosed     = errors.New("store is closed")
)

// Config holds backend selection and parameters for Open.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendJSONL:  true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	return nil
}

// Dataset is a stored, named table.
type Dataset struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Table is nil in List results; Load fills it in.
	Table *table.Table
}

// Store saves and loads datasets by name. Implementations are safe for
// concurrent use.
type Store interface {
	// Save stores the table under the given name, replacing any existing
	// dataset with that name and preserving its identity.
	Save(name string, t *table.Table) (Dataset, error)

	// Load returns the dataset with the given name, body included.
	Load(name string) (Dataset, error)

	// List returns metadata for every stored dataset, ordered by name.
	List() ([]Dataset, error)

	// Delete removes the dataset with the given name.
	Delete(name string) error

	// Close releases backend resources. Close is idempotent.
	Close() error
}

// Open constructs the backend named by the config.
func Open(config Config) (Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	switch config.Backend {
	case BackendJSONL:
		return openJSONL(config.DataDir)
	case BackendSQLite:
		return openSQLite(config.DataDir)
	}
	return nil, ErrBackendUnknown
}

// newDatasetID generates a UUID v7 so dataset IDs sort by creation time.
func newDatasetID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
