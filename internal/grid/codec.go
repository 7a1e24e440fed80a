package grid

import (
	"strings"

	"github.com/itsblakeyeon/smart-utm-builder/internal/model"
)

// Clipboard interchange: cells joined by tabs, rows by newlines, the
// format spreadsheet tools read and write. Tab or newline characters
// embedded inside a field value are not escaped; Decode will treat them as
// separators. That matches what the surrounding tools do and is a known
// limitation.

// Encode serializes the rect of rows into interchange text.
func Encode(rows []model.Row, rect Rect) string {
	var lines []string
	for r := rect.MinRow; r <= rect.MaxRow && r < len(rows); r++ {
		if r < 0 {
			continue
		}
		cells := make([]string, 0, rect.Width())
		for c := rect.MinCol; c <= rect.MaxCol; c++ {
			f, ok := model.FieldAt(c)
			if !ok {
				continue
			}
			cells = append(cells, rows[r].Get(f))
		}
		lines = append(lines, strings.Join(cells, "\t"))
	}
	return strings.Join(lines, "\n")
}

// Decode splits interchange text into a rectangular string matrix. A
// trailing empty row caused by a terminal newline is dropped; ragged rows
// are padded with empty strings to the block's own widest row, and
// anything beyond the schema width is truncated. The block keeps its own
// width so pasting a narrow block never clobbers columns to its right.
func Decode(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 1 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	out := make([][]string, 0, len(lines))
	width := 0
	for _, line := range lines {
		cells := strings.Split(line, "\t")
		if len(cells) > len(model.Schema) {
			cells = cells[:len(model.Schema)]
		}
		if len(cells) > width {
			width = len(cells)
		}
		out = append(out, cells)
	}
	for i, cells := range out {
		for len(cells) < width {
			cells = append(cells, "")
		}
		out[i] = cells
	}
	return out
}

// EncodeTable renders all rows as interchange text with a header row of
// field labels. Used by export and the bulk-copy path.
func EncodeTable(rows []model.Row) string {
	header := make([]string, len(model.Schema))
	for i, f := range model.Schema {
		header[i] = model.FieldLabels[f]
	}
	var b strings.Builder
	b.WriteString(strings.Join(header, "\t"))
	for _, r := range rows {
		b.WriteString("\n")
		cells := make([]string, len(model.Schema))
		for i, f := range model.Schema {
			cells[i] = r.Get(f)
		}
		b.WriteString(strings.Join(cells, "\t"))
	}
	return b.String()
}

// looksLikeHeader reports whether cells match the exported header row or
// the raw schema names, so imports can skip it.
func looksLikeHeader(cells []string) bool {
	if len(cells) == 0 || cells[0] == "" {
		return false
	}
	matches := 0
	for i, f := range model.Schema {
		if i >= len(cells) {
			break
		}
		v := strings.TrimSpace(cells[i])
		if strings.EqualFold(v, model.FieldLabels[f]) || strings.EqualFold(v, string(f)) {
			matches++
		}
	}
	return matches >= 2
}

// DecodeTable parses interchange text into rows, skipping a leading header
// row when one is present.
func DecodeTable(text string) []model.Row {
	matrix := Decode(text)
	if len(matrix) > 0 && looksLikeHeader(matrix[0]) {
		matrix = matrix[1:]
	}
	rows := make([]model.Row, 0, len(matrix))
	for _, cells := range matrix {
		values := make(map[model.Field]string, len(cells))
		for i, v := range cells {
			if f, ok := model.FieldAt(i); ok {
				values[f] = v
			}
		}
		rows = append(rows, model.NewRowWith(values))
	}
	return rows
}
