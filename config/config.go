package config

import (
	"os"
	"strconv"
)

// DefaultFieldLimit caps how many fields a table accepts when no
// explicit limit is given. The bound exists to keep pathological
// messages with unbounded header counts from growing memory and scan
// time without limit.
const DefaultFieldLimit = 100

// DefaultMaxLineBytes bounds a single "name: value" line in the parser.
const DefaultMaxLineBytes = 8192

// Config holds the parsing and storage tunables.
type Config struct {
	// FieldLimit is the per-table field cap.
	FieldLimit int
	// MaxLineBytes caps one header line in the parser; 0 disables the check.
	MaxLineBytes int
	// Strict enables RFC 9110 token/value validation of parsed fields.
	Strict bool
}

// Default loads the default configuration (and potentially env vars).
func Default() *Config {
	cfg := &Config{
		FieldLimit:   DefaultFieldLimit,
		MaxLineBytes: DefaultMaxLineBytes,
	}

	if v := os.Getenv("HTTPCORE_FIELD_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FieldLimit = n
		}
	}
	if v := os.Getenv("HTTPCORE_STRICT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Strict = b
		}
	}

	return cfg
}
