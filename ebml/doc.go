// Package ebml implements a spec-agnostic codec for the Extensible
// Binary Meta-Language container format used by Matroska and WebM.
//
// The package is split into three pieces, built bottom-up:
//
//   - The VINT and typed-value primitives (vint.go, value.go) read and
//     write the variable-width integers and leaf payloads that make up
//     the wire format.
//   - Iterator is a pull-based decoder: it walks an io.Reader and emits
//     a lazy sequence of Tag events in document order.
//   - Writer is the inverse: it serializes a stream of Tag events, or a
//     single fully materialized subtree, back into a byte stream.
//
// Neither the tag-ID-to-data-type mapping nor any dialect-specific
// structure (Matroska, WebM, ...) lives in this package; callers supply
// a Specification that answers "what type is this ID" for the Iterator.
// The Writer trusts its caller's event stream and only checks structural
// nesting, so it needs no Specification at all.
//
// Common errors:
//   - ErrUnsupportedFeature: an indeterminate-size VINT on input, or a
//     value too large for an 8-byte VINT on output.
//   - ErrCorruptedFileData: a framing violation — bad VINT (including
//     one wider than 8 bytes), truncated read, or a child element whose
//     declared size overruns its parent.
//   - CorruptedTagDataError: a leaf's payload violates its declared
//     type (bad UTF-8, a float of the wrong length, ...).
//   - InvalidTagIDError: the Writer was given a tag ID with no valid
//     width marker.
//   - ErrInconsistentTagNesting: the Writer was given a MasterEnd that
//     does not match the innermost open MasterStart.
//   - ErrOpenMastersOnFlush: Flush was called while masters are still
//     open.
//
// Neither Iterator nor Writer is safe for concurrent use; each is meant
// to be owned by a single goroutine for its lifetime.
package ebml
