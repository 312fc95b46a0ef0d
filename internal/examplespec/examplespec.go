// Package examplespec is a minimal, trimmed-down Matroska-shaped
// dialect, adapted from the teacher repo's full matroska.go struct
// tree (itself out of this module's scope, per spec.md's "no specific
// EBML dialect" non-goal). It exists purely to give
// ebml.DeriveSpecification and the Specification capability a
// realistic, non-trivial exercise in tests: a handful of elements deep
// enough to cover nested masters, sequences, and every leaf data type
// except UnsignedInt (every integer field here is signed).
package examplespec

import (
	"time"

	"github.com/austinleroy/ebml-iterable/ebml"
)

// Header mirrors the EBML top-level element: version and doc-type
// metadata every EBML document starts with.
type Header struct {
	Version            int64  `ebml:"4286"`
	ReadVersion        int64  `ebml:"42F7"`
	MaxIDLength        int64  `ebml:"42F2"`
	MaxSizeLength      int64  `ebml:"42F3"`
	DocType            string `ebml:"4282"`
	DocTypeVersion     int64  `ebml:"4287"`
	DocTypeReadVersion int64  `ebml:"4285"`
}

// Document is the example dialect's root: an EBML header followed by
// one or more Segments, the same two-element top level Matroska uses.
type Document struct {
	Header  *Header    `ebml:"1A45DFA3"`
	Segment []*Segment `ebml:"18538067"`
}

// Segment holds general file info and the track table — trimmed from
// the teacher's full Segment (no Cues, Attachments, Chapters, Tags,
// Cluster; those add no new data-type coverage over what's kept here).
type Segment struct {
	Info   []*SegmentInfo `ebml:"1549A966"`
	Tracks []*TrackEntry  `ebml:"1654AE6B>AE"`
}

// SegmentInfo carries fields of the leaf types Integer, Float, Utf8,
// Binary, and (mapped to Binary) a date. No field maps to UnsignedInt.
type SegmentInfo struct {
	TimecodeScale int64      `ebml:"2AD7B1"`
	Duration      float64    `ebml:"4489,omitempty"`
	DateUTC       *time.Time `ebml:"4461,omitempty"`
	Title         string     `ebml:"7BA9,omitempty"`
	MuxingApp     string     `ebml:"4D80"`
	WritingApp    string     `ebml:"5741"`
	SegmentFamily []byte     `ebml:"4444,omitempty"`
}

// TrackEntry describes one track, trimmed to the scalar fields; Video/
// Audio/ContentEncodings sub-masters aren't needed for this package's
// purpose and are dropped rather than carried along unused.
type TrackEntry struct {
	TrackNumber int64  `ebml:"D7"`
	TrackUID    int64  `ebml:"73C5"`
	TrackType   int64  `ebml:"83"`
	FlagEnabled int64  `ebml:"B9"`
	Name        string `ebml:"536E,omitempty"`
	Language    string `ebml:"22B59C,omitempty"`
	CodecID     string `ebml:"86"`
}

// NewSpecification derives an ebml.Specification from Document's
// ebml struct tags.
func NewSpecification() (ebml.Specification, error) {
	return ebml.DeriveSpecification(Document{})
}
