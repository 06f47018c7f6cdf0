package header

import (
	"sync"

	"github.com/searchktools/httpcore/config"
)

var tablePool = sync.Pool{
	New: func() any {
		return New()
	},
}

// AcquireTable returns an empty table from the pool.
func AcquireTable() *Table {
	return tablePool.Get().(*Table)
}

// Reset clears the table for reuse (field slice capacity is kept) and
// restores the default limit.
func (t *Table) Reset() {
	t.Clear()
	t.limit = config.DefaultFieldLimit
}

// ReleaseTable resets t and returns it to the pool. The caller must not
// retain t or any view obtained from it after release.
func ReleaseTable(t *Table) {
	t.Reset()
	tablePool.Put(t)
}
