package ebml

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterSimpleLeaf(t *testing.T) {
	// S1: a single UnsignedInt leaf, ID 0x4286, value 1.
	var buf bytes.Buffer
	wr := NewWriter(&buf)
	require.NoError(t, wr.Write(Leaf(0x4286, UnsignedInt, uint64(1))))
	require.NoError(t, wr.Flush())
	assert.Equal(t, []byte{0x42, 0x86, 0x81, 0x01}, buf.Bytes())
}

func TestWriterEmptyMaster(t *testing.T) {
	// S2: an empty master round-trips as id || 0x80 (zero-length size).
	var buf bytes.Buffer
	wr := NewWriter(&buf)
	require.NoError(t, wr.Write(MasterStart(0x1A45DFA3)))
	require.NoError(t, wr.Write(MasterEnd(0x1A45DFA3)))
	require.NoError(t, wr.Flush())
	assert.Equal(t, []byte{0x1A, 0x45, 0xDF, 0xA3, 0x80}, buf.Bytes())
}

func TestWriterNestedMasterAccumulatesChildren(t *testing.T) {
	var buf bytes.Buffer
	wr := NewWriter(&buf)
	require.NoError(t, wr.Write(MasterStart(0x1A45DFA3)))
	require.NoError(t, wr.Write(Leaf(0x4286, UnsignedInt, uint64(1))))
	require.NoError(t, wr.Write(MasterEnd(0x1A45DFA3)))
	require.NoError(t, wr.Flush())

	spec := MapSpecification{0x1A45DFA3: Master, 0x4286: UnsignedInt}
	it := NewIterator(&buf, WithSpecification(spec))
	tag, err := it.Next()
	require.NoError(t, err)
	assert.Equal(t, EventMasterStart, tag.Kind)

	tag, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, EventLeaf, tag.Kind)
	assert.Equal(t, uint64(1), tag.Value)

	tag, err = it.Next()
	require.NoError(t, err)
	assert.Equal(t, EventMasterEnd, tag.Kind)
}

func TestWriterRejectsInconsistentNesting(t *testing.T) {
	// S8: MasterStart(A), MasterStart(B), MasterEnd(A) — closing the
	// wrong master is a structural error, not silently accepted.
	var buf bytes.Buffer
	wr := NewWriter(&buf)
	require.NoError(t, wr.Write(MasterStart(0x1A45DFA3)))
	require.NoError(t, wr.Write(MasterStart(0x18538067)))
	err := wr.Write(MasterEnd(0x1A45DFA3))
	assert.ErrorIs(t, err, ErrInconsistentTagNesting)
}

func TestWriterRejectsUnmatchedMasterEnd(t *testing.T) {
	var buf bytes.Buffer
	wr := NewWriter(&buf)
	err := wr.Write(MasterEnd(0x1A45DFA3))
	assert.ErrorIs(t, err, ErrInconsistentTagNesting)
}

func TestWriterFlushFailsWithOpenMasters(t *testing.T) {
	var buf bytes.Buffer
	wr := NewWriter(&buf)
	require.NoError(t, wr.Write(MasterStart(0x1A45DFA3)))
	assert.ErrorIs(t, wr.Flush(), ErrOpenMastersOnFlush)
}

func TestWriterMasterFull(t *testing.T) {
	// S7's buffered-subtree variant: MasterFull serializes its Children
	// to an equivalent byte stream as an explicit MasterStart/.../MasterEnd
	// sequence would.
	children := []Tag{Leaf(0x4286, UnsignedInt, uint64(1))}

	var bufFull bytes.Buffer
	wrFull := NewWriter(&bufFull)
	require.NoError(t, wrFull.Write(MasterFullTag(0x1A45DFA3, children)))
	require.NoError(t, wrFull.Flush())

	var bufExplicit bytes.Buffer
	wrExplicit := NewWriter(&bufExplicit)
	require.NoError(t, wrExplicit.Write(MasterStart(0x1A45DFA3)))
	require.NoError(t, wrExplicit.Write(children[0]))
	require.NoError(t, wrExplicit.Write(MasterEnd(0x1A45DFA3)))
	require.NoError(t, wrExplicit.Flush())

	assert.Equal(t, bufExplicit.Bytes(), bufFull.Bytes())
}

func TestWriterMasterFullRejectsInconsistentChildren(t *testing.T) {
	children := []Tag{MasterStart(0x18538067)}
	var buf bytes.Buffer
	wr := NewWriter(&buf)
	err := wr.Write(MasterFullTag(0x1A45DFA3, children))
	assert.ErrorIs(t, err, ErrInconsistentTagNesting)
}

func TestWriterReset(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	wr := NewWriter(&buf1)
	require.NoError(t, wr.Write(MasterStart(0x1A45DFA3)))

	wr.Reset(&buf2)
	require.NoError(t, wr.Write(Leaf(0x4286, UnsignedInt, uint64(1))))
	require.NoError(t, wr.Flush())

	assert.Equal(t, []byte{0x42, 0x86, 0x81, 0x01}, buf2.Bytes())
	assert.Empty(t, buf1.Bytes())
}

func TestWriterFloatWidthRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	wr := NewWriter(&buf)
	tag := Leaf(0x4489, Float, 1.5)
	tag.FloatWidth = 4
	require.NoError(t, wr.Write(tag))
	require.NoError(t, wr.Flush())
	// id(2) + size(1) + 4-byte float payload
	assert.Len(t, buf.Bytes(), 7)
}
