// JSONL backend. One record per line in datasets.jsonl under the data
// directory, written atomically with the temp-file, fsync, rename
// pattern. The file diffs cleanly under version control, which is the
// point of this backend.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/mesh-intelligence/datakit/pkg/table"
)

const datasetsFile = "datasets.jsonl"

type jsonlStore struct {
	mu     sync.Mutex
	path   string
	closed bool
}

func openJSONL(dataDir string) (*jsonlStore, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, err
	}
	return &jsonlStore{path: filepath.Join(dataDir, datasetsFile)}, nil
}

func (s *jsonlStore) Save(name string, t *table.Table) (Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Dataset{}, ErrStoreClosed
	}

	records, err := s.readAll()
	if err != nil {
		return Dataset{}, err
	}

	now := time.Now().UTC()
	d := Dataset{ID: newDatasetID(), Name: name, CreatedAt: now, UpdatedAt: now, Table: t}

	replaced := false
	for i, rec := range records {
		if rec.Name != name {
			continue
		}
		// Replacing keeps the dataset's identity and creation time.
		d.ID = rec.DatasetID
		if created, err := time.Parse(time.RFC3339Nano, rec.CreatedAt); err == nil {
			d.CreatedAt = created
		}
		newRec, err := newDatasetRecord(d)
		if err != nil {
			return Dataset{}, err
		}
		records[i] = newRec
		replaced = true
		break
	}
	if !replaced {
		rec, err := newDatasetRecord(d)
		if err != nil {
			return Dataset{}, err
		}
		records = append(records, rec)
	}

	if err := s.writeAll(records); err != nil {
		return Dataset{}, err
	}
	return d, nil
}

func (s *jsonlStore) Load(name string) (Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return Dataset{}, ErrStoreClosed
	}

	records, err := s.readAll()
	if err != nil {
		return Dataset{}, err
	}
	for _, rec := range records {
		if rec.Name == name {
			return rec.toDataset(true)
		}
	}
	return Dataset{}, ErrDatasetNotFound
}

func (s *jsonlStore) List() ([]Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrStoreClosed
	}

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	datasets := make([]Dataset, 0, len(records))
	for _, rec := range records {
		d, err := rec.toDataset(false)
		if err != nil {
			return nil, err
		}
		datasets = append(datasets, d)
	}
	sort.Slice(datasets, func(i, j int) bool { return datasets[i].Name < datasets[j].Name })
	return datasets, nil
}

func (s *jsonlStore) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	records, err := s.readAll()
	if err != nil {
		return err
	}
	kept := records[:0]
	found := false
	for _, rec := range records {
		if rec.Name == name {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return ErrDatasetNotFound
	}
	return s.writeAll(kept)
}

func (s *jsonlStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// readAll reads every non-empty, parseable line. Malformed lines are
// skipped so one corrupt record does not take the whole store down.
func (s *jsonlStore) readAll() ([]datasetRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", s.path, err)
	}
	defer f.Close()

	var records []datasetRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec datasetRecord
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", s.path, err)
	}
	return records, nil
}

// writeAll atomically rewrites the file using the temp-file, fsync,
// rename pattern.
func (s *jsonlStore) writeAll(records []datasetRecord) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		line, err := json.Marshal(rec)
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("encoding record: %w", err)
		}
		if _, err := w.Write(line); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
