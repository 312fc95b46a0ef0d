package ebml

import (
	"io"
)

// maxVintWidth is the widest VINT this codec accepts: 8 bytes, giving a
// maximum representable value of 2^56 - 1.
const maxVintWidth = 8

// widthMarkerMask[w-1] is the mask that, applied to a VINT's first byte,
// keeps that byte's width-marker bit along with the payload bits that
// follow it. This is what a tag ID's first byte looks like on the wire.
var widthMarkerMask = [maxVintWidth]byte{
	0xFF, 0x7F, 0x3F, 0x1F, 0x0F, 0x07, 0x03, 0x01,
}

// payloadOnlyMask[w-1] strips the width-marker bit too, leaving only the
// payload bits of a VINT's first byte. This is what a size field's
// first byte looks like once decoded.
var payloadOnlyMask = [maxVintWidth]byte{
	0x7F, 0x3F, 0x1F, 0x0F, 0x07, 0x03, 0x01, 0x00,
}

// vintWidth scans the first byte of a VINT for its width marker: the
// position of the highest set bit, counting from bit 7, gives the total
// width in bytes. A first byte of 0x00 means the width would exceed 8,
// which this codec rejects.
func vintWidth(first byte) (width int, ok bool) {
	for w := 1; w <= maxVintWidth; w++ {
		if first&(0x80>>(w-1)) != 0 {
			return w, true
		}
	}
	return 0, false
}

func readByte(r io.Reader) (byte, error) {
	if br, ok := r.(io.ByteReader); ok {
		return br.ReadByte()
	}
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// readVintRaw reads a VINT's width bytes, masking the first byte with
// firstMask, and returns the assembled value plus the encoded width.
// A first-byte EOF is returned verbatim (it may be a legitimate end of
// input at an element boundary); any later short read is a framing
// violation.
func readVintRaw(r io.Reader, firstMask [maxVintWidth]byte) (value uint64, width int, err error) {
	first, err := readByte(r)
	if err != nil {
		if err == io.EOF {
			return 0, 0, io.EOF
		}
		return 0, 0, wrapIoError(err)
	}
	width, ok := vintWidth(first)
	if !ok {
		return 0, 0, ErrCorruptedFileData
	}
	value = uint64(first & firstMask[width-1])
	if width > 1 {
		rest := make([]byte, width-1)
		if _, err := io.ReadFull(r, rest); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, 0, ErrCorruptedFileData
			}
			return 0, 0, wrapIoError(err)
		}
		for _, b := range rest {
			value = value<<8 | uint64(b)
		}
	}
	return value, width, nil
}

// allOnesPayload reports whether value is the reserved "all payload
// bits set" pattern for a VINT of the given width — the indeterminate
// size marker this codec rejects.
func allOnesPayload(value uint64, width int) bool {
	bits := uint(7 * width)
	reserved := uint64(1)<<bits - 1
	return value == reserved
}

// ReadVint reads a generic VINT (a size field): the width-marker bit is
// consumed but not retained in the returned value. Returns
// ErrUnsupportedFeature if the payload is the reserved indeterminate
// pattern.
func ReadVint(r io.Reader) (value uint64, width int, err error) {
	value, width, err = readVintRaw(r, payloadOnlyMask)
	if err != nil {
		return 0, 0, err
	}
	if allOnesPayload(value, width) {
		return 0, 0, ErrUnsupportedFeature
	}
	return value, width, nil
}

// ReadTagID reads a VINT as a tag ID: the width-marker bit is kept as
// part of the returned value, so two IDs that differ only in encoded
// width are distinct. This matters for dialect fidelity.
func ReadTagID(r io.Reader) (id uint64, width int, err error) {
	return readVintRaw(r, widthMarkerMask)
}

// minVintWidth returns the smallest width w such that value fits in the
// 7w payload bits of a VINT, after excluding the reserved all-ones
// value of that width.
func minVintWidth(value uint64) int {
	for w := 1; w <= maxVintWidth; w++ {
		bits := uint(7 * w)
		limit := uint64(1)<<bits - 1 // exclusive: all-ones is reserved
		if value < limit {
			return w
		}
	}
	return maxVintWidth + 1 // unrepresentable
}

// WriteVint writes value as a size VINT using the shortest legal width.
func WriteVint(w io.Writer, value uint64) error {
	width := minVintWidth(value)
	if width > maxVintWidth {
		return ErrUnsupportedFeature
	}
	buf := make([]byte, width)
	v := value
	for i := width - 1; i >= 1; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	buf[0] = byte(v) | (0x80 >> (width - 1))
	_, err := w.Write(buf)
	return wrapIoError(err)
}

// WriteTagID writes id's raw width bytes verbatim: width is derived
// from the position of id's width-marker bit, the same bit ReadTagID
// preserved on the way in. Returns an InvalidTagIDError if id has no
// valid width marker.
func WriteTagID(w io.Writer, id uint64) error {
	width, ok := tagIDWidth(id)
	if !ok {
		return &InvalidTagIDError{ID: id}
	}
	buf := make([]byte, width)
	v := id
	for i := width - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	_, err := w.Write(buf)
	return wrapIoError(err)
}

// tagIDWidth recovers a width-preserved ID's encoded width. A
// width-w ID's value always falls in [2^7w, 2^(7w+1)); those ranges are
// disjoint across widths 1..8, so the containing range determines w.
func tagIDWidth(id uint64) (int, bool) {
	for w := 1; w <= maxVintWidth; w++ {
		lo := uint64(1) << uint(7*w)
		hi := uint64(1)<<uint(7*w+1) - 1
		if id >= lo && id <= hi {
			return w, true
		}
	}
	return 0, false
}
