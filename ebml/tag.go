package ebml

// TagDataType is the closed set of EBML payload types this codec
// understands. Master is the only type with children; everything else
// is a leaf.
type TagDataType uint8

const (
	// Master is a container of child tags.
	Master TagDataType = iota
	// UnsignedInt is a 0-8 byte big-endian unsigned integer.
	UnsignedInt
	// Integer is a 0-8 byte big-endian two's-complement signed integer.
	Integer
	// Float is an IEEE-754 binary32 or binary64 value.
	Float
	// Utf8 is a well-formed UTF-8 byte sequence.
	Utf8
	// Binary is an opaque byte sequence; also used to carry date values
	// unchanged, since this codec does not decode dates.
	Binary
)

func (t TagDataType) String() string {
	switch t {
	case Master:
		return "Master"
	case UnsignedInt:
		return "UnsignedInt"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case Utf8:
		return "Utf8"
	case Binary:
		return "Binary"
	default:
		return "Unknown"
	}
}

// EventKind discriminates the four shapes a Tag event can take.
type EventKind uint8

const (
	// EventMasterStart opens a master element; a matching EventMasterEnd
	// follows at the same depth before any enclosing master ends.
	EventMasterStart EventKind = iota
	// EventMasterEnd closes the most recently opened master.
	EventMasterEnd
	// EventMasterFull carries a complete, self-consistent master
	// subtree as a materialized slice of child Tags.
	EventMasterFull
	// EventLeaf carries a single non-master value.
	EventLeaf
)

// Tag is one EBML event, as produced by Iterator.Next and consumed by
// Writer.Write. Which fields are meaningful depends on Kind:
//
//   - EventMasterStart / EventMasterEnd: only ID is set.
//   - EventMasterFull: ID and Children are set.
//   - EventLeaf: ID, Type, and Value are set; FloatWidth is meaningful
//     only when Type is Float (see the FloatWidth field).
type Tag struct {
	ID    uint64
	Kind  EventKind
	Type  TagDataType
	Value interface{}

	// Children holds the materialized subtree for EventMasterFull.
	Children []Tag

	// FloatWidth records whether a Float leaf's payload was 4 or 8
	// bytes on the wire (0 if unset, meaning "use the default"). The
	// Iterator sets this to the payload length of every Float leaf it
	// produces (0 for an empty payload); Writer honors a width of 4 when
	// writing a Float leaf back out.
	FloatWidth uint8
}

// MasterStart builds a Tag representing the opening of a master element.
func MasterStart(id uint64) Tag {
	return Tag{ID: id, Kind: EventMasterStart}
}

// MasterEnd builds a Tag representing the closing of a master element.
func MasterEnd(id uint64) Tag {
	return Tag{ID: id, Kind: EventMasterEnd}
}

// MasterFullTag builds a Tag carrying a complete, materialized subtree.
func MasterFullTag(id uint64, children []Tag) Tag {
	return Tag{ID: id, Kind: EventMasterFull, Children: children}
}

// Leaf builds a Tag carrying a single typed value.
func Leaf(id uint64, typ TagDataType, value interface{}) Tag {
	return Tag{ID: id, Kind: EventLeaf, Type: typ, Value: value}
}
