package header

import (
	"bytes"
	"errors"
	"unsafe"

	"golang.org/x/net/http/httpguts"

	"github.com/searchktools/httpcore/config"
	"github.com/searchktools/httpcore/core/view"
)

var (
	ErrMalformedField = errors.New("malformed header field")
	ErrFieldLimit     = errors.New("header field limit exceeded")
	ErrLineTooLong    = errors.New("header line exceeds limit")
	ErrTruncatedBlock = errors.New("truncated header block")
)

var crlf = []byte("\r\n")

// unsafeString converts a byte slice to a string without allocation.
// WARNING: The returned string shares memory with the byte slice.
func unsafeString(b []byte) string {
	return *(*string)(unsafe.Pointer(&b))
}

// Parser slices header lines out of a raw message buffer and stores
// them into a Table as views aliasing that buffer. Nothing is copied;
// the buffer must stay alive and unmodified while the table is in use.
type Parser struct {
	cfg *config.Config
}

// NewParser creates a parser; a nil cfg means config.Default().
func NewParser(cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Parser{cfg: cfg}
}

// ParseLine consumes at most one header line from data and stores it in t.
// It returns n (bytes consumed), done (true iff the blank line was found),
// and err. Behavior:
//   - If no CRLF is found yet, returns (0, false, nil) and consumes nothing.
//   - If CRLF is at the start ("\r\n"), returns (2, true, nil): end of block.
//   - Otherwise stores one "name: value" line. Optional whitespace around
//     name and value is sliced off, but whitespace immediately before the
//     colon is rejected outright.
func (p *Parser) ParseLine(data []byte, t *Table) (n int, done bool, err error) {
	idx := bytes.Index(data, crlf)
	if idx == -1 {
		if p.cfg.MaxLineBytes > 0 && len(data) > p.cfg.MaxLineBytes {
			return 0, false, ErrLineTooLong
		}
		return 0, false, nil
	}
	if idx == 0 {
		return 2, true, nil
	}
	if p.cfg.MaxLineBytes > 0 && idx > p.cfg.MaxLineBytes {
		return 0, false, ErrLineTooLong
	}

	line := data[:idx]
	// Split on the first ':' only (values can contain ':').
	colon := bytes.IndexByte(line, ':')
	if colon == -1 {
		return 0, false, ErrMalformedField
	}
	// Whitespace between name and colon enables response smuggling.
	if colon > 0 {
		if c := line[colon-1]; c == ' ' || c == '\t' {
			return 0, false, ErrMalformedField
		}
	}

	name := trimOWS(line[:colon])
	value := trimOWS(line[colon+1:])
	if len(name) == 0 {
		return 0, false, ErrMalformedField
	}

	if p.cfg.Strict {
		if !httpguts.ValidHeaderFieldName(unsafeString(name)) {
			return 0, false, ErrMalformedField
		}
		if !httpguts.ValidHeaderFieldValue(unsafeString(value)) {
			return 0, false, ErrMalformedField
		}
	}

	if !t.Add(view.New(name), view.New(value)) {
		return 0, false, ErrFieldLimit
	}

	// Consume exactly this line and its CRLF, not beyond.
	return idx + 2, false, nil
}

// ParseBlock consumes header lines from data up to and including the
// blank line, storing every field in t. It returns the number of bytes
// consumed; data holding no complete block yields ErrTruncatedBlock.
func (p *Parser) ParseBlock(data []byte, t *Table) (int, error) {
	total := 0
	for {
		n, done, err := p.ParseLine(data[total:], t)
		if err != nil {
			return total, err
		}
		if done {
			return total + n, nil
		}
		if n == 0 {
			return total, ErrTruncatedBlock
		}
		total += n
	}
}

// trimOWS slices optional whitespace off both ends without copying.
func trimOWS(b []byte) []byte {
	for len(b) > 0 && (b[0] == ' ' || b[0] == '\t') {
		b = b[1:]
	}
	for len(b) > 0 && (b[len(b)-1] == ' ' || b[len(b)-1] == '\t') {
		b = b[:len(b)-1]
	}
	return b
}
