package ebml

// IteratorOption configures a newly constructed Iterator. Options are
// plain closures rather than a generic Option[T] wrapper — with a
// single constructor to configure, the indirection a reusable generic
// option type buys elsewhere in the ecosystem isn't worth carrying here.
type IteratorOption func(*Iterator)

// WithSpecification sets the dialect used to resolve each tag ID's data
// type. The zero value defaults to DefaultSpecification.
func WithSpecification(spec Specification) IteratorOption {
	return func(it *Iterator) {
		if spec == nil {
			spec = DefaultSpecification{}
		}
		it.spec = spec
	}
}

// WithBufferedMasters marks the given tag IDs as subtrees that should be
// materialized into a single EventMasterFull event rather than emitted
// as separate MasterStart/.../MasterEnd events.
func WithBufferedMasters(ids ...uint64) IteratorOption {
	return func(it *Iterator) {
		for _, id := range ids {
			it.bufferedMasters[id] = struct{}{}
		}
	}
}

// WithInitialBufferSize overrides the starting capacity of the
// Iterator's internal read buffer. The buffer still grows to fit larger
// leaves as needed; this only avoids early reallocations for callers
// who know their payloads run large.
func WithInitialBufferSize(n int) IteratorOption {
	return func(it *Iterator) {
		if n > 0 {
			it.buf = make([]byte, 0, n)
		}
	}
}

// WriterOption configures a newly constructed Writer.
type WriterOption func(*Writer)
