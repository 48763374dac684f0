package converter

import (
	sorted "github.com/tobshub/go-sortedmap"
)

// PatternRow is one row of the generated table.
type PatternRow struct {
	Pattern  string
	MimeType string
	// Index is the position the pattern was first seen at.
	Index int
}

// Collision records a pattern claimed by more than one mime type.
type Collision struct {
	Pattern  string
	Previous string
	Current  string
}

// PatternTable maps patterns to mime types in first-seen order.
type PatternTable struct {
	rows       *sorted.SortedMap[string, PatternRow]
	collisions []Collision
}

func patternRowComparisonFunc(a, b PatternRow) bool {
	return a.Index < b.Index
}

// NewPatternTable returns an empty table.
func NewPatternTable() *PatternTable {
	return &PatternTable{rows: sorted.New[string, PatternRow](0, patternRowComparisonFunc)}
}

// Set associates pattern with mimeType. An existing pattern is
// overwritten in place and the overwrite is recorded as a Collision.
func (t *PatternTable) Set(pattern, mimeType string) {
	row := PatternRow{Pattern: pattern, MimeType: mimeType, Index: t.rows.Len()}
	if t.rows.Insert(pattern, row) {
		return
	}

	prev, _ := t.rows.Get(pattern)
	if prev.MimeType != mimeType {
		t.collisions = append(t.collisions, Collision{
			Pattern:  pattern,
			Previous: prev.MimeType,
			Current:  mimeType,
		})
	}
	prev.MimeType = mimeType
	t.rows.Replace(pattern, prev)
}

// Get returns the mime type stored for pattern.
func (t *PatternTable) Get(pattern string) (string, bool) {
	row, ok := t.rows.Get(pattern)
	return row.MimeType, ok
}

// Len returns the number of distinct patterns.
func (t *PatternTable) Len() int { return t.rows.Len() }

// Collisions lists every overwrite in the order it happened.
func (t *PatternTable) Collisions() []Collision { return t.collisions }

// Rows returns the table contents ordered by Index.
func (t *PatternTable) Rows() []PatternRow {
	rows := make([]PatternRow, 0, t.rows.Len())
	if t.rows.Len() == 0 {
		return rows
	}

	iterCh, err := t.rows.IterCh()
	if err != nil {
		return rows
	}
	for rec := range iterCh.Records() {
		rows = append(rows, rec.Val)
	}
	return rows
}

// Invert flips reg into a pattern table. Mime types are visited in
// document order and extensions in list order; the last mime type to
// claim a pattern wins.
func Invert(reg Registry) *PatternTable {
	t := NewPatternTable()
	for _, typ := range reg.Types {
		for _, ext := range typ.Extensions {
			t.Set(Pattern(ext), typ.Name)
		}
	}
	return t
}
