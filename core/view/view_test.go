package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test: The zero value is a valid empty view
func Test_Zero_Value_Is_Empty(t *testing.T) {
	var v View
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, "", v.String())
	assert.Nil(t, v.Bytes())
}

// Test: New aliases the buffer instead of copying it
func Test_New_Aliases_Buffer(t *testing.T) {
	buf := []byte("example.com")
	v := New(buf)
	require.Equal(t, "example.com", v.String())

	buf[0] = 'E'
	assert.Equal(t, "Example.com", v.String())
}

// Test: FromString sees the string's bytes
func Test_FromString(t *testing.T) {
	v := FromString("Host")
	assert.Equal(t, 4, v.Len())
	assert.Equal(t, "Host", v.String())
	assert.True(t, FromString("").IsEmpty())
}

// Test: Equality compares referenced bytes, not identity
func Test_Equal_Compares_Bytes(t *testing.T) {
	a := New([]byte("Host"))
	b := FromString("Host")
	c := New([]byte("host"))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.EqualFold(c))
	assert.False(t, a.EqualFold(FromString("hos")))
}

// Test: Copy detaches from the source buffer
func Test_Copy_Is_Independent(t *testing.T) {
	buf := []byte("value")
	v := New(buf)
	c := v.Copy()

	buf[0] = 'V'
	assert.Equal(t, "Value", v.String())
	assert.Equal(t, "value", c.String())
}

// Test: UnsafeString shares memory with the buffer
func Test_UnsafeString_Aliases(t *testing.T) {
	buf := []byte("gzip")
	v := New(buf)
	s := v.UnsafeString()
	require.Equal(t, "gzip", s)

	buf[0] = 'G'
	assert.Equal(t, "Gzip", s)
}
