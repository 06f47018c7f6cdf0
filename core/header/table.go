// Package header stores HTTP header fields as non-owning views into
// the message buffer, keeping insertion order and a hard field cap. It
// also holds the zero-copy block parser that feeds such tables.
package header

import (
	"io"

	"github.com/searchktools/httpcore/config"
	"github.com/searchktools/httpcore/core/pools"
	"github.com/searchktools/httpcore/core/view"
)

// Field is one stored name/value pair. Repeated names are a valid,
// expected state (Set-Cookie and friends), never an error.
type Field struct {
	Name  view.View
	Value view.View
}

// Table is a bounded, insertion-ordered collection of header fields.
// It never owns the bytes its views reference, so a table must not
// outlive the buffer it was parsed from.
//
// A Table MUST NOT be mutated from concurrently running goroutines; it
// belongs to exactly one in-flight message at a time.
type Table struct {
	fields []Field
	limit  int
}

// New creates an empty table capped at config.DefaultFieldLimit fields.
func New() *Table {
	return NewWithLimit(config.DefaultFieldLimit)
}

// NewWithLimit creates an empty table capped at limit fields.
// Non-positive limits fall back to the default.
func NewWithLimit(limit int) *Table {
	if limit <= 0 {
		limit = config.DefaultFieldLimit
	}
	return &Table{limit: limit}
}

// NewFromConfig creates an empty table capped at cfg.FieldLimit.
// A nil cfg means config.Default().
func NewFromConfig(cfg *config.Config) *Table {
	if cfg == nil {
		cfg = config.Default()
	}
	return NewWithLimit(cfg.FieldLimit)
}

// Add appends a field even when the name is already present. It returns
// false, leaving the table untouched, once the field cap is reached.
func (t *Table) Add(name, value view.View) bool {
	if len(t.fields) >= t.limit {
		return false
	}
	t.fields = append(t.fields, Field{Name: name, Value: value})
	return true
}

// Set overwrites the value of the first field matching name, keeping
// its position; if no field matches it behaves exactly like Add.
func (t *Table) Set(name, value view.View) bool {
	if i := t.find(name); i >= 0 {
		t.fields[i].Value = value
		return true
	}
	return t.Add(name, value)
}

// Has reports whether at least one field matches name.
func (t *Table) Has(name view.View) bool {
	return t.find(name) >= 0
}

// Get returns the value of the first field matching name in insertion
// order, or the zero view when nothing matches. Callers wanting to
// distinguish a missing field from an empty value should check Has.
func (t *Table) Get(name view.View) view.View {
	if i := t.find(name); i >= 0 {
		return t.fields[i].Value
	}
	return view.View{}
}

// Del removes every field matching name, preserving the relative order
// of the survivors.
func (t *Table) Del(name view.View) {
	kept := t.fields[:0]
	for _, f := range t.fields {
		if !f.Name.EqualFold(name) {
			kept = append(kept, f)
		}
	}
	// Zero the tail so a reused table does not pin the old buffer.
	for i := len(kept); i < len(t.fields); i++ {
		t.fields[i] = Field{}
	}
	t.fields = kept
}

// Clear removes all fields without changing the limit.
func (t *Table) Clear() {
	for i := range t.fields {
		t.fields[i] = Field{}
	}
	t.fields = t.fields[:0]
}

// Len returns the number of stored fields.
func (t *Table) Len() int {
	return len(t.fields)
}

// IsEmpty reports whether the table holds no fields.
func (t *Table) IsEmpty() bool {
	return len(t.fields) == 0
}

// Limit returns the field cap.
func (t *Table) Limit() int {
	return t.limit
}

// Fields exposes the stored fields in insertion order. The slice shares
// the table's backing array and is read-only for the caller.
func (t *Table) Fields() []Field {
	return t.fields
}

// find returns the index of the first field whose name matches name
// under ASCII case folding, or -1. Linear scan: tables are capped at
// around a hundred entries and iteration order must survive, so a hash
// index buys nothing here.
func (t *Table) find(name view.View) int {
	for i := range t.fields {
		if t.fields[i].Name.EqualFold(name) {
			return i
		}
	}
	return -1
}

// BlockLen returns the exact serialized size of the table.
func (t *Table) BlockLen() int {
	n := 0
	for i := range t.fields {
		n += t.fields[i].Name.Len() + t.fields[i].Value.Len() + 4
	}
	return n
}

// AppendBlock appends every field to dst as "name: value\r\n", in
// insertion order with stored case, and returns the extended slice.
// An empty table appends nothing; the blank line terminating a header
// block is the message writer's job, not this package's.
func (t *Table) AppendBlock(dst []byte) []byte {
	for i := range t.fields {
		dst = append(dst, t.fields[i].Name.Bytes()...)
		dst = append(dst, ':', ' ')
		dst = append(dst, t.fields[i].Value.Bytes()...)
		dst = append(dst, '\r', '\n')
	}
	return dst
}

// WriteTo serializes the table into a pooled buffer and hands it to w
// in a single Write call.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	if len(t.fields) == 0 {
		return 0, nil
	}
	buf := pools.AcquireBuffer(t.BlockLen())
	block := t.AppendBlock(*buf)
	n, err := w.Write(block)
	*buf = block[:0]
	pools.ReleaseBuffer(buf)
	return int64(n), err
}
