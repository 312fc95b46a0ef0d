package ebml

// Specification is the dialect capability the Iterator consults to
// learn each tag ID's data type. Implementations must default unknown
// IDs to Binary rather than erroring — DataTypeOf's second return value
// only tells the Iterator whether to use typ or fall back to Binary; it
// never causes a failure by itself.
type Specification interface {
	// DataTypeOf returns the data type registered for id, and whether
	// id was recognized at all. When known is false, the Iterator
	// treats the tag as Binary regardless of typ.
	DataTypeOf(id uint64) (typ TagDataType, known bool)
}

// TagBuilder is an optional capability a Specification may additionally
// implement to map a generic Tag onto a richer, dialect-specific
// representation. Neither Iterator nor Writer requires it; a caller
// building a strongly-typed API on top of this package can type-assert
// for it.
type TagBuilder interface {
	BuildTag(t Tag) (interface{}, error)
}

// TagDecomposer is the inverse of TagBuilder: it flattens a
// dialect-specific value back into a generic Tag for the Writer to
// serialize.
type TagDecomposer interface {
	DecomposeTag(v interface{}) (Tag, error)
}

// DefaultSpecification recognizes no IDs at all; every tag it is asked
// about comes back as Binary/unknown. It is useful for exercising the
// Iterator before a real dialect is wired up, or for decoding a stream
// where only the shape (not the semantic types) matters.
type DefaultSpecification struct{}

// DataTypeOf implements Specification.
func (DefaultSpecification) DataTypeOf(uint64) (TagDataType, bool) {
	return Binary, false
}

// MapSpecification is a Specification backed by a plain map, the
// simplest way to describe a dialect's tag-ID-to-type table.
type MapSpecification map[uint64]TagDataType

// DataTypeOf implements Specification.
func (m MapSpecification) DataTypeOf(id uint64) (TagDataType, bool) {
	typ, ok := m[id]
	return typ, ok
}
