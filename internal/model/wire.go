package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Wire format for persisted rows. Kept versioned so future migrations can
// detect old payloads; loading is best-effort and malformed payloads are
// treated as absent by callers.
type wireDoc struct {
	Version int       `json:"version"`
	Rows    []wireRow `json:"rows"`
}

type wireRow struct {
	ID       string `json:"id"`
	BaseURL  string `json:"baseUrl"`
	Source   string `json:"source"`
	Medium   string `json:"medium"`
	Campaign string `json:"campaign"`
	Term     string `json:"term"`
	Content  string `json:"content"`
	Checked  bool   `json:"checked,omitempty"`
}

const wireVersion = 1

// MarshalRows serializes rows into the persisted JSON payload.
func MarshalRows(rows []Row) ([]byte, error) {
	doc := wireDoc{Version: wireVersion, Rows: make([]wireRow, 0, len(rows))}
	for _, r := range rows {
		doc.Rows = append(doc.Rows, wireRow{
			ID:       r.ID,
			BaseURL:  r.Get(FieldBaseURL),
			Source:   r.Get(FieldSource),
			Medium:   r.Get(FieldMedium),
			Campaign: r.Get(FieldCampaign),
			Term:     r.Get(FieldTerm),
			Content:  r.Get(FieldContent),
			Checked:  r.Checked,
		})
	}
	return json.Marshal(doc)
}

// UnmarshalRows parses a persisted payload. ok is false for malformed or
// unrecognized payloads; callers fall back to an empty grid.
func UnmarshalRows(data []byte) (rows []Row, ok bool) {
	var doc wireDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false
	}
	if doc.Version == 0 && len(doc.Rows) == 0 {
		return nil, false
	}
	rows = make([]Row, 0, len(doc.Rows))
	for _, w := range doc.Rows {
		id := w.ID
		if id == "" {
			// Older payloads carried no IDs; mint one so the row is addressable.
			id = uuid.NewString()
		}
		rows = append(rows, Row{
			ID: id,
			Fields: map[Field]string{
				FieldBaseURL:  w.BaseURL,
				FieldSource:   w.Source,
				FieldMedium:   w.Medium,
				FieldCampaign: w.Campaign,
				FieldTerm:     w.Term,
				FieldContent:  w.Content,
			},
			Checked: w.Checked,
		})
	}
	return rows, true
}
