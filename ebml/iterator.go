package ebml

import "io"

// openElement is one entry on an Iterator's stack: a master whose
// MasterEnd hasn't been produced yet, tracked by how many payload bytes
// of it remain unconsumed.
type openElement struct {
	id        uint64
	remaining int64
}

// Iterator pull-parses an EBML byte stream into a lazy, forward-only
// sequence of Tag events, in strict document order. It reads from its
// source only as much as is needed to produce the next event.
//
// Call Next repeatedly until it returns io.EOF, which — unlike a plain
// read error — signals normal termination: the input ended at an
// element boundary with no masters left open. Any other error is fatal;
// once Next returns a non-EOF error, every subsequent call returns
// io.EOF without attempting to resynchronize with the stream.
//
// Iterator is not safe for concurrent use.
type Iterator struct {
	r    io.Reader
	spec Specification

	bufferedMasters map[uint64]struct{}
	buf             []byte

	stack []*openElement
	ended bool
}

// NewIterator returns an Iterator reading from r. With no options, it
// uses DefaultSpecification (every tag decodes as Binary) and buffers
// no masters.
func NewIterator(r io.Reader, opts ...IteratorOption) *Iterator {
	it := &Iterator{
		r:               r,
		spec:            DefaultSpecification{},
		bufferedMasters: make(map[uint64]struct{}),
	}
	for _, opt := range opts {
		opt(it)
	}
	return it
}

// Next produces the next Tag event, or io.EOF at a clean end of input.
func (it *Iterator) Next() (Tag, error) {
	if it.ended {
		return Tag{}, io.EOF
	}
	tag, err := it.next()
	if err != nil {
		it.ended = true
		return Tag{}, err
	}
	return tag, nil
}

// BufferDepth reports how many currently open masters on the stack
// carry the given ID — 0 if none. Useful for diagnostics while
// iterating a deeply nested or repetitive document.
func (it *Iterator) BufferDepth(id uint64) int {
	depth := 0
	for _, e := range it.stack {
		if e.id == id {
			depth++
		}
	}
	return depth
}

func (it *Iterator) next() (Tag, error) {
	if n := len(it.stack); n > 0 && it.stack[n-1].remaining == 0 {
		top := it.stack[n-1]
		it.stack = it.stack[:n-1]
		return MasterEnd(top.id), nil
	}

	id, size, headerBytes, err := it.readElementHeader()
	if err != nil {
		if err == io.EOF {
			if len(it.stack) == 0 {
				return Tag{}, io.EOF
			}
			return Tag{}, ErrCorruptedFileData
		}
		return Tag{}, err
	}

	if n := len(it.stack); n > 0 {
		top := it.stack[n-1]
		consumed := int64(headerBytes) + int64(size)
		if consumed > top.remaining {
			return Tag{}, ErrCorruptedFileData
		}
		top.remaining -= consumed
	}

	typ, known := it.spec.DataTypeOf(id)
	if !known {
		typ = Binary
	}

	if typ == Master {
		if _, buffered := it.bufferedMasters[id]; buffered {
			children, err := it.readMasterChildren(id, size)
			if err != nil {
				return Tag{}, err
			}
			return MasterFullTag(id, children), nil
		}
		it.stack = append(it.stack, &openElement{id: id, remaining: int64(size)})
		return MasterStart(id), nil
	}

	return it.readLeaf(id, typ, size)
}

// readElementHeader reads one element's ID and size VINTs, returning
// their combined encoded width alongside the decoded values so the
// caller can charge it against the enclosing master's remaining bytes.
func (it *Iterator) readElementHeader() (id, size uint64, headerBytes int, err error) {
	id, idWidth, err := ReadTagID(it.r)
	if err != nil {
		return 0, 0, 0, err
	}
	size, sizeWidth, err := ReadVint(it.r)
	if err != nil {
		if err == io.EOF {
			return 0, 0, 0, ErrCorruptedFileData
		}
		return 0, 0, 0, err
	}
	return id, size, idWidth + sizeWidth, nil
}

// readMasterChildren recursively parses id's subtree, collecting every
// event produced until id's own MasterEnd, and returns them as a
// materialized slice for an EventMasterFull tag.
func (it *Iterator) readMasterChildren(id uint64, size uint64) ([]Tag, error) {
	it.stack = append(it.stack, &openElement{id: id, remaining: int64(size)})
	depth := len(it.stack)

	var children []Tag
	for {
		tag, err := it.next()
		if err != nil {
			return nil, err
		}
		if len(it.stack) < depth {
			// The frame we pushed just popped: tag is id's own
			// MasterEnd, which belongs to this MasterFull, not its
			// children list.
			return children, nil
		}
		children = append(children, tag)
	}
}

// readLeaf reads size bytes into the iterator's reusable buffer and
// decodes them per typ.
func (it *Iterator) readLeaf(id uint64, typ TagDataType, size uint64) (Tag, error) {
	it.buf = growBuffer(it.buf, int(size))
	if size > 0 {
		if _, err := io.ReadFull(it.r, it.buf); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return Tag{}, ErrCorruptedFileData
			}
			return Tag{}, wrapIoError(err)
		}
	}
	value, floatWidth, err := DecodeLeaf(id, typ, it.buf)
	if err != nil {
		return Tag{}, err
	}
	return Tag{ID: id, Kind: EventLeaf, Type: typ, Value: value, FloatWidth: floatWidth}, nil
}
