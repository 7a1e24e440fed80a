package model

import "github.com/google/uuid"

// Field names a campaign row carries, in display/interchange order.
// ClipboardCodec, export, and the grid columns all consume this order.
type Field string

const (
	FieldBaseURL  Field = "baseUrl"
	FieldSource   Field = "source"
	FieldMedium   Field = "medium"
	FieldCampaign Field = "campaign"
	FieldTerm     Field = "term"
	FieldContent  Field = "content"
)

// Schema is the fixed column order. Do not reorder: persisted snapshots,
// clipboard blocks, and exports all rely on it.
var Schema = []Field{
	FieldBaseURL,
	FieldSource,
	FieldMedium,
	FieldCampaign,
	FieldTerm,
	FieldContent,
}

// SchemaIndex returns the column index of f, or -1 if f is not part of the schema.
func SchemaIndex(f Field) int {
	for i, s := range Schema {
		if s == f {
			return i
		}
	}
	return -1
}

// FieldAt returns the schema field at column index i.
func FieldAt(i int) (Field, bool) {
	if i < 0 || i >= len(Schema) {
		return "", false
	}
	return Schema[i], true
}

// Labels used for column headers and exported header rows.
var FieldLabels = map[Field]string{
	FieldBaseURL:  "Base URL",
	FieldSource:   "Source",
	FieldMedium:   "Medium",
	FieldCampaign: "Campaign",
	FieldTerm:     "Term",
	FieldContent:  "Content",
}

// Row is one editable campaign-link record. ID is opaque and stable for the
// life of the row; Checked is the independent bulk-action mark and is never
// part of undo snapshots' equality semantics (but is carried through them so
// undo does not silently drop marks).
type Row struct {
	ID      string           `json:"id"`
	Fields  map[Field]string `json:"fields"`
	Checked bool             `json:"checked,omitempty"`
}

// NewRow returns an empty row with a fresh ID and every schema field present.
func NewRow() Row {
	return NewRowWith(nil)
}

// NewRowWith returns a row seeded from values; missing schema fields are
// filled with the empty string, unknown keys are ignored.
func NewRowWith(values map[Field]string) Row {
	fields := make(map[Field]string, len(Schema))
	for _, f := range Schema {
		fields[f] = values[f]
	}
	return Row{ID: uuid.NewString(), Fields: fields}
}

// Get returns the value of f, empty for anything outside the schema.
func (r Row) Get(f Field) string {
	return r.Fields[f]
}

// Clone returns a deep copy sharing no mutable state with r.
func (r Row) Clone() Row {
	fields := make(map[Field]string, len(r.Fields))
	for k, v := range r.Fields {
		fields[k] = v
	}
	return Row{ID: r.ID, Fields: fields, Checked: r.Checked}
}

// Snapshot is an immutable deep copy of the row sequence at one point in
// time. Callers must treat it as read-only; CloneRows materializes a fresh
// mutable copy.
type Snapshot []Row

// CloneRows deep-copies a row slice.
func CloneRows(rows []Row) []Row {
	if rows == nil {
		return nil
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}

// CellCoord addresses one cell. Row is an index into the current row
// sequence; it may go stale after deletions, which mutation paths tolerate
// as silent no-ops.
type CellCoord struct {
	Row   int
	Field Field
}

// Col returns the schema column index of the coordinate's field.
func (c CellCoord) Col() int { return SchemaIndex(c.Field) }
