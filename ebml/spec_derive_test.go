package ebml

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type derivedChild struct {
	Flag int64 `ebml:"B9"`
}

type derivedRoot struct {
	Version  uint64        `ebml:"4286"`
	Name     string        `ebml:"4282"`
	Scale    float64       `ebml:"2AD7B1"`
	Raw      []byte        `ebml:"4444,omitempty"`
	When     *time.Time    `ebml:"4461,omitempty"`
	Children []derivedChild `ebml:"AE"`
	Ignored  string        `ebml:"-"`
	hidden   string
}

func TestDeriveSpecificationMapsFieldKinds(t *testing.T) {
	spec, err := DeriveSpecification(derivedRoot{})
	require.NoError(t, err)

	cases := []struct {
		id   uint64
		want TagDataType
	}{
		{0x4286, UnsignedInt},
		{0x4282, Utf8},
		{0x2AD7B1, Float},
		{0x4444, Binary},
		{0x4461, Binary},
		{0xAE, Master},
		{0xB9, Integer},
	}
	for _, c := range cases {
		typ, known := spec.DataTypeOf(c.id)
		assert.True(t, known, "id 0x%X should be known", c.id)
		assert.Equal(t, c.want, typ, "id 0x%X", c.id)
	}

	_, known := spec.DataTypeOf(0x1234)
	assert.False(t, known)
}

func TestDeriveSpecificationHandlesIntermediateMasterChains(t *testing.T) {
	type chained struct {
		Leaf int64 `ebml:"D7"`
	}
	type root struct {
		Items []chained `ebml:"18538067>1654AE6B"`
	}
	spec, err := DeriveSpecification(root{})
	require.NoError(t, err)

	typ, known := spec.DataTypeOf(0x18538067)
	assert.True(t, known)
	assert.Equal(t, Master, typ)

	typ, known = spec.DataTypeOf(0xD7)
	assert.True(t, known)
	assert.Equal(t, Integer, typ)
}

func TestDeriveSpecificationRejectsNonStruct(t *testing.T) {
	_, err := DeriveSpecification(42)
	assert.Error(t, err)
}
