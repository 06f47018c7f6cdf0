package header

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchktools/httpcore/core/view"
)

func vs(s string) view.View {
	return view.FromString(s)
}

// Test: Additions keep insertion order, including duplicate names
func Test_Add_Preserves_Order_With_Duplicates(t *testing.T) {
	tbl := New()
	require.True(t, tbl.IsEmpty())

	require.True(t, tbl.Add(vs("Set-Cookie"), vs("a=1")))
	require.True(t, tbl.Add(vs("Host"), vs("example.com")))
	require.True(t, tbl.Add(vs("Set-Cookie"), vs("b=2")))

	fields := tbl.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "Set-Cookie", fields[0].Name.String())
	assert.Equal(t, "a=1", fields[0].Value.String())
	assert.Equal(t, "Host", fields[1].Name.String())
	assert.Equal(t, "Set-Cookie", fields[2].Name.String())
	assert.Equal(t, "b=2", fields[2].Value.String())
}

// Test: The add that would exceed the cap fails and changes nothing
func Test_Add_Respects_Capacity(t *testing.T) {
	tbl := NewWithLimit(3)
	for i := 0; i < 3; i++ {
		require.True(t, tbl.Add(vs("X-N"), vs(fmt.Sprintf("%d", i))))
	}
	require.Equal(t, 3, tbl.Len())

	assert.False(t, tbl.Add(vs("X-N"), vs("overflow")))
	assert.Equal(t, 3, tbl.Len())
	assert.Equal(t, "0", tbl.Get(vs("X-N")).String())
}

// Test: Set overwrites the first match in place
func Test_Set_Overwrites_First_Match_In_Place(t *testing.T) {
	tbl := New()
	require.True(t, tbl.Set(vs("Content-Type"), vs("text/plain")))
	require.True(t, tbl.Add(vs("Host"), vs("example.com")))
	require.Equal(t, 2, tbl.Len())

	require.True(t, tbl.Set(vs("content-type"), vs("text/html")))
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, "text/html", tbl.Get(vs("Content-Type")).String())
	// Position preserved: the overwritten field is still first.
	assert.Equal(t, "Content-Type", tbl.Fields()[0].Name.String())
}

// Test: Set falls back to Add, subject to the same capacity check
func Test_Set_At_Capacity(t *testing.T) {
	tbl := NewWithLimit(1)
	require.True(t, tbl.Set(vs("A"), vs("1")))

	// No existing match and the table is full.
	assert.False(t, tbl.Set(vs("B"), vs("2")))
	assert.Equal(t, 1, tbl.Len())

	// Existing match still writable at capacity.
	assert.True(t, tbl.Set(vs("a"), vs("3")))
	assert.Equal(t, "3", tbl.Get(vs("A")).String())
}

// Test: Lookup folds case, storage and serialization keep it
func Test_Lookup_Is_Case_Insensitive(t *testing.T) {
	tbl := New()
	require.True(t, tbl.Add(vs("Content-Type"), vs("text/html")))

	assert.True(t, tbl.Has(vs("content-type")))
	assert.True(t, tbl.Has(vs("CONTENT-TYPE")))
	assert.Equal(t, "text/html", tbl.Get(vs("cOnTeNt-TyPe")).String())

	block := tbl.AppendBlock(nil)
	assert.Equal(t, "Content-Type: text/html\r\n", string(block))
}

// Test: Del removes every match and keeps survivor order
func Test_Del_Removes_All_Matches(t *testing.T) {
	tbl := New()
	require.True(t, tbl.Add(vs("A"), vs("1")))
	require.True(t, tbl.Add(vs("B"), vs("2")))
	require.True(t, tbl.Add(vs("A"), vs("3")))

	tbl.Del(vs("a"))
	require.Equal(t, 1, tbl.Len())
	assert.Equal(t, "B", tbl.Fields()[0].Name.String())
	assert.Equal(t, "2", tbl.Fields()[0].Value.String())
	assert.False(t, tbl.Has(vs("A")))
}

// Test: Get on a missing name returns the zero view, never panics
func Test_Get_Missing_Returns_Zero_View(t *testing.T) {
	tbl := New()
	got := tbl.Get(vs("Nope"))
	assert.True(t, got.IsEmpty())
	assert.Equal(t, 0, got.Len())
}

// Test: Clear empties the table but keeps the limit
func Test_Clear_Keeps_Limit(t *testing.T) {
	tbl := NewWithLimit(2)
	require.True(t, tbl.Add(vs("A"), vs("1")))
	tbl.Clear()

	assert.True(t, tbl.IsEmpty())
	assert.Equal(t, 2, tbl.Limit())
	require.True(t, tbl.Add(vs("B"), vs("2")))
	require.True(t, tbl.Add(vs("C"), vs("3")))
	assert.False(t, tbl.Add(vs("D"), vs("4")))
}

// Test: Canonical block serialization, byte for byte
func Test_AppendBlock_Format(t *testing.T) {
	tbl := New()
	require.True(t, tbl.Add(vs("Host"), vs("example.com")))
	require.True(t, tbl.Add(vs("Accept"), vs("*/*")))

	block := tbl.AppendBlock(nil)
	assert.Equal(t, "Host: example.com\r\nAccept: */*\r\n", string(block))
	assert.Equal(t, len(block), tbl.BlockLen())

	empty := New()
	assert.Empty(t, empty.AppendBlock(nil))
	assert.Equal(t, 0, empty.BlockLen())
}

// Test: WriteTo emits exactly the appended block
func Test_WriteTo_Matches_AppendBlock(t *testing.T) {
	tbl := New()
	require.True(t, tbl.Add(vs("Host"), vs("example.com")))
	require.True(t, tbl.Add(vs("Accept"), vs("*/*")))

	var sink bytes.Buffer
	n, err := tbl.WriteTo(&sink)
	require.NoError(t, err)
	assert.Equal(t, int64(tbl.BlockLen()), n)
	assert.Equal(t, string(tbl.AppendBlock(nil)), sink.String())

	sink.Reset()
	n, err = New().WriteTo(&sink)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, sink.Len())
}

// Test: Pooled tables come back empty with the default limit
func Test_Table_Pool_Resets(t *testing.T) {
	tbl := AcquireTable()
	require.True(t, tbl.Add(vs("A"), vs("1")))
	ReleaseTable(tbl)

	got := AcquireTable()
	defer ReleaseTable(got)
	assert.True(t, got.IsEmpty())
}

func BenchmarkTableGet(b *testing.B) {
	tbl := New()
	for i := 0; i < 20; i++ {
		tbl.Add(vs(fmt.Sprintf("X-Header-%d", i)), vs("value"))
	}
	name := vs("x-header-19")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if tbl.Get(name).IsEmpty() {
			b.Fatal("lookup miss")
		}
	}
}

func BenchmarkAppendBlock(b *testing.B) {
	tbl := New()
	tbl.Add(vs("Host"), vs("example.com"))
	tbl.Add(vs("Accept"), vs("*/*"))
	tbl.Add(vs("User-Agent"), vs("bench/1.0"))
	dst := make([]byte, 0, tbl.BlockLen())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		dst = tbl.AppendBlock(dst[:0])
	}
}
