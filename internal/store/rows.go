package store

import (
	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
)

// RowsKey is the single key the grid payload lives under.
const RowsKey = "rows"

// LoadRows rehydrates the persisted row collection. Absent or malformed
// payloads come back as (nil, nil): the caller starts with a fresh grid and
// the bad payload is overwritten on the next save. Only I/O problems are
// surfaced as errors.
func LoadRows(kv KV) ([]model.Row, error) {
	text, ok, err := kv.Get(RowsKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	rows, ok := model.UnmarshalRows([]byte(text))
	if !ok {
		return nil, nil
	}
	return rows, nil
}

// SaveRows serializes and writes the row collection.
func SaveRows(kv KV, rows []model.Row) error {
	data, err := model.MarshalRows(rows)
	if err != nil {
		return err
	}
	return kv.Set(RowsKey, string(data))
}

// ClearRows drops the persisted payload (the `utm reset` path).
func ClearRows(kv KV) error {
	return kv.Remove(RowsKey)
}
