// Dataset records as stored on disk. Both backends share this shape: the
// JSONL backend writes one record per line, the SQLite backend stores the
// table body column in the same form.
package store

import (
	"encoding/json"
	"time"

	"github.com/mesh-intelligence/datakit/pkg/table"
)

// datasetRecord is the serialized form of a Dataset.
type datasetRecord struct {
	DatasetID string          `json:"dataset_id"`
	Name      string          `json:"name"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
	Table     json.RawMessage `json:"table,omitempty"`
}

func newDatasetRecord(d Dataset) (datasetRecord, error) {
	rec := datasetRecord{
		DatasetID: d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if d.Table != nil {
		body, err := json.Marshal(d.Table)
		if err != nil {
			return datasetRecord{}, err
		}
		rec.Table = body
	}
	return rec, nil
}

// toDataset converts the record back, decoding the body when asked.
func (rec datasetRecord) toDataset(withBody bool) (Dataset, error) {
	created, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return Dataset{}, err
	}
	updated, err := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	if err != nil {
		return Dataset{}, err
	}
	d := Dataset{ID: rec.DatasetID, Name: rec.Name, CreatedAt: created, UpdatedAt: updated}
	if withBody && rec.Table != nil {
		d.Table = &table.Table{}
		if err := json.Unmarshal(rec.Table, d.Table); err != nil {
			return Dataset{}, err
		}
	}
	return d, nil
}
