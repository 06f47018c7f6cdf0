// Package httpcore provides zero-copy HTTP header field storage and HTTP date
// (de)serialization for Go.
//
// Httpcore sits on the hot path of HTTP/1.x message parsing. Header names and
// values are kept as non-owning views into the caller's read buffer, so parsing
// a header block performs no copies of the underlying bytes and at most one
// slice append per field.
//
// Features
//
//   - Zero-copy design: header names/values are views into the source buffer
//   - Bounded field tables: a configurable cap (default 100) rejects
//     pathological messages instead of growing without limit
//   - Case-insensitive lookup over case-preserving storage
//   - Canonical "Name: Value\r\n" block serialization via a pooled buffer
//   - HTTP date handling: emits IMF-fixdate, accepts RFC 1123, RFC 850,
//     and ANSI C asctime
//   - Table pooling: Acquire/Release pairs for per-message reuse
//
// # Quick Start
//
// Basic usage example:
//
//	package main
//
//	import (
//	    "fmt"
//	    "os"
//
//	    "github.com/searchktools/httpcore/core/header"
//	    "github.com/searchktools/httpcore/core/httpdate"
//	    "github.com/searchktools/httpcore/core/view"
//	)
//
//	func main() {
//	    buf := []byte("Host: example.com\r\nAccept: */*\r\n\r\n")
//
//	    tbl := header.AcquireTable()
//	    defer header.ReleaseTable(tbl)
//
//	    p := header.NewParser(nil)
//	    if _, err := p.ParseBlock(buf, tbl); err != nil {
//	        panic(err)
//	    }
//
//	    fmt.Println(tbl.Get(view.FromString("host")).String())
//	    tbl.WriteTo(os.Stdout)
//	    fmt.Println(httpdate.Now())
//	}
//
// # Modules
//
// The library is organized into several packages:
//
//   - core/view: non-owning byte views over caller-owned buffers
//   - core/header: bounded, insertion-ordered field tables plus the
//     zero-copy block parser and table pool
//   - core/httpdate: HTTP date formatting and the three-grammar parser
//   - core/optimize: case-insensitive comparison fast paths
//   - core/pools: tiered byte buffer pools for serialization
//   - config: tunables (field limit, line length, strict validation)
//
// # Concurrency
//
// Tables and views are single-owner value types with no internal locking; a
// table belongs to one in-flight message at a time. Date functions are pure
// and safe for concurrent use.
//
// For more information, see https://github.com/searchktools/httpcore
package httpcore
