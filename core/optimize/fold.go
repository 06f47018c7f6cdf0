package optimize

import (
	"bytes"

	"golang.org/x/sys/cpu"
)

// exactFirstMin is the length at which an exact vectorized compare is
// attempted before falling back to the scalar fold loop. Header names
// usually arrive in canonical case, so the exact compare hits most of
// the time and runs through the runtime's SIMD memequal.
var exactFirstMin = 64

func init() {
	// Check CPU features based on architecture
	if cpu.ARM64.HasASIMD {
		// ARM64: NEON is standard on ARMv8 (ASIMD = Advanced SIMD)
		exactFirstMin = 16
	}
	if cpu.X86.HasAVX2 {
		// x86_64: AVX2 memequal handles 32-byte lanes
		exactFirstMin = 16
	}
}

// lower maps A-Z to a-z and is the identity for every other byte.
var lower [256]byte

func init() {
	for i := range lower {
		c := byte(i)
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		lower[i] = c
	}
}

// EqualFoldASCII reports whether a and b are equal under ASCII case
// folding. Only the letters A-Z/a-z fold; all other bytes must match
// exactly, so '@' (0x40) never compares equal to '`' (0x60).
func EqualFoldASCII(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) >= exactFirstMin && bytes.Equal(a, b) {
		return true
	}
	for i := 0; i < len(a); i++ {
		if lower[a[i]] != lower[b[i]] {
			return false
		}
	}
	return true
}

// LowerASCII returns the folded form of c.
func LowerASCII(c byte) byte {
	return lower[c]
}
