package view

import (
	"bytes"
	"unsafe"

	"github.com/searchktools/httpcore/core/optimize"
)

// View is a non-owning window into caller-owned bytes. It never copies
// or reallocates the referenced region and is valid only as long as the
// source buffer is. The zero value is the empty view.
type View struct {
	b []byte
}

// New wraps b without copying it.
func New(b []byte) View {
	return View{b: b}
}

// FromString aliases the bytes of s without copying.
// WARNING: The view shares memory with s; the no-mutation contract of
// Go strings extends to every byte reachable through the result.
func FromString(s string) View {
	if len(s) == 0 {
		return View{}
	}
	return View{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Len returns the number of referenced bytes.
func (v View) Len() int {
	return len(v.b)
}

// IsEmpty reports whether the view references no bytes.
func (v View) IsEmpty() bool {
	return len(v.b) == 0
}

// Bytes returns the referenced region itself, not a copy.
func (v View) Bytes() []byte {
	return v.b
}

// String returns an owned copy of the referenced bytes.
func (v View) String() string {
	return string(v.b)
}

// UnsafeString converts the view to a string without allocation.
// WARNING: The returned string shares memory with the source buffer.
func (v View) UnsafeString() string {
	return *(*string)(unsafe.Pointer(&v.b))
}

// Copy returns a view over a freshly allocated duplicate of the bytes,
// for callers that must outlive the source buffer.
func (v View) Copy() View {
	if len(v.b) == 0 {
		return View{}
	}
	c := make([]byte, len(v.b))
	copy(c, v.b)
	return View{b: c}
}

// Equal compares the referenced bytes, not slice identity.
func (v View) Equal(o View) bool {
	return bytes.Equal(v.b, o.b)
}

// EqualFold compares the referenced bytes under ASCII case folding.
func (v View) EqualFold(o View) bool {
	return optimize.EqualFoldASCII(v.b, o.b)
}
