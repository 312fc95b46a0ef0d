package ebml

import (
	"bytes"
	"io"
)

// openMaster is one entry on a Writer's stack: a master element whose
// MasterEnd hasn't arrived yet. Its payload accumulates in buf until
// then, at which point the writer knows the final length and can emit
// id || vint(len) || buf in one framed write.
type openMaster struct {
	id  uint64
	buf bytes.Buffer
}

// Writer serializes Tag events into a well-formed EBML byte stream. It
// trusts the caller's event stream for data-type correctness but
// enforces structural nesting: every MasterEnd must match the
// innermost open MasterStart, and Flush refuses to run with masters
// still open.
//
// Writer is not safe for concurrent use.
type Writer struct {
	w     io.Writer
	stack []*openMaster
}

// NewWriter returns a Writer that serializes to w.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	wr := &Writer{w: w}
	for _, opt := range opts {
		opt(wr)
	}
	return wr
}

// Write appends tag to the output, updating the open-master stack as
// needed. See ErrInconsistentTagNesting for the one structural failure
// mode this can return.
func (wr *Writer) Write(tag Tag) error {
	switch tag.Kind {
	case EventMasterStart:
		wr.stack = append(wr.stack, &openMaster{id: tag.ID})
		return nil

	case EventMasterEnd:
		if len(wr.stack) == 0 || wr.stack[len(wr.stack)-1].id != tag.ID {
			return ErrInconsistentTagNesting
		}
		top := wr.stack[len(wr.stack)-1]
		wr.stack = wr.stack[:len(wr.stack)-1]
		return wr.emitFramed(tag.ID, top.buf.Bytes())

	case EventMasterFull:
		payload, err := wr.encodeChildren(tag.Children)
		if err != nil {
			return err
		}
		return wr.emitFramed(tag.ID, payload)

	case EventLeaf:
		payload, err := EncodeLeaf(tag.Type, tag.Value, tag.FloatWidth)
		if err != nil {
			return err
		}
		return wr.emitFramed(tag.ID, payload)

	default:
		return ErrCorruptedFileData
	}
}

// WriteRaw is a convenience wrapper around Write for a single leaf
// value, inferring the EventLeaf shape from its arguments.
func (wr *Writer) WriteRaw(id uint64, typ TagDataType, value interface{}) error {
	return wr.Write(Leaf(id, typ, value))
}

// Flush flushes the underlying sink, if it supports flushing, and
// fails if any master is still open — a caller relying on atomicity
// must check this error rather than assume Write alone is durable.
func (wr *Writer) Flush() error {
	if len(wr.stack) != 0 {
		return ErrOpenMastersOnFlush
	}
	if f, ok := wr.w.(interface{ Flush() error }); ok {
		return wrapIoError(f.Flush())
	}
	return nil
}

// Reset rebinds the writer to a new sink and clears any (necessarily
// abandoned) open-master stack, letting one Writer value serialize many
// documents in sequence without a fresh allocation each time.
func (wr *Writer) Reset(w io.Writer) {
	wr.w = w
	wr.stack = wr.stack[:0]
}

// target returns where the next framed write should land: the
// innermost open master's buffer, or the underlying sink if none is
// open.
func (wr *Writer) target() io.Writer {
	if n := len(wr.stack); n > 0 {
		return &wr.stack[n-1].buf
	}
	return wr.w
}

// emitFramed writes id || vint(len(payload)) || payload to the current
// target.
func (wr *Writer) emitFramed(id uint64, payload []byte) error {
	t := wr.target()
	if err := WriteTagID(t, id); err != nil {
		return err
	}
	if err := WriteVint(t, uint64(len(payload))); err != nil {
		return err
	}
	if len(payload) == 0 {
		return nil
	}
	_, err := t.Write(payload)
	return wrapIoError(err)
}

// encodeChildren serializes a MasterFull's children into a standalone
// buffer using a scratch Writer, so nested masters within the subtree
// get the same stack-based accumulation as top-level ones.
func (wr *Writer) encodeChildren(children []Tag) ([]byte, error) {
	var buf bytes.Buffer
	sub := &Writer{w: &buf}
	for _, c := range children {
		if err := sub.Write(c); err != nil {
			return nil, err
		}
	}
	if len(sub.stack) != 0 {
		return nil, ErrInconsistentTagNesting
	}
	return buf.Bytes(), nil
}
