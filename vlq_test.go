package smf

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The encodings at every length boundary of the variable-length format.
var vqlVectors = []struct {
	value   uint32
	encoded []byte
}{
	{0x00000000, []byte{0x00}},
	{0x00000040, []byte{0x40}},
	{0x0000007f, []byte{0x7f}},
	{0x00000080, []byte{0x81, 0x00}},
	{0x00002000, []byte{0xc0, 0x00}},
	{0x00003fff, []byte{0xff, 0x7f}},
	{0x00004000, []byte{0x81, 0x80, 0x00}},
	{0x00100000, []byte{0xc0, 0x80, 0x00}},
	{0x001fffff, []byte{0xff, 0xff, 0x7f}},
	{0x00200000, []byte{0x81, 0x80, 0x80, 0x00}},
	{0x08000000, []byte{0xc0, 0x80, 0x80, 0x00}},
	{0x0fffffff, []byte{0xff, 0xff, 0xff, 0x7f}},
}

func TestVqlEncode(t *testing.T) {
	for _, v := range vqlVectors {
		vql, err := NewVql(v.value)
		require.NoError(t, err, "value 0x%08x", v.value)
		assert.Equal(t, v.encoded, vql.EncodeBytes(), "value 0x%08x", v.value)
	}
}

func TestVqlDecode(t *testing.T) {
	for _, v := range vqlVectors {
		vql, n, err := DecodeVql(v.encoded)
		require.NoError(t, err, "bytes % x", v.encoded)
		assert.Equal(t, v.value, vql.Value())
		assert.Equal(t, len(v.encoded), n)
	}
	// Trailing bytes after the terminator must be left unconsumed.
	vql, n, err := DecodeVql([]byte{0x81, 0x48, 0x90, 0x3c})
	require.NoError(t, err)
	assert.Equal(t, uint32(200), vql.Value())
	assert.Equal(t, 2, n)
}

func TestVqlRange(t *testing.T) {
	_, err := NewVql(0x10000000)
	require.Error(t, err)
	var midiErr *Error
	require.ErrorAs(t, err, &midiErr)
	assert.Equal(t, ErrInvalidVql, midiErr.Kind)
	assert.Equal(t, uint32(0x10000000), midiErr.Value)

	vql, err := NewVql(MaxVql)
	require.NoError(t, err)
	assert.Equal(t, uint32(MaxVql), vql.Value())
}

func TestVqlDecodeMalformed(t *testing.T) {
	// Continuation bit still set on byte 4.
	_, _, err := DecodeVql([]byte{0xff, 0xff, 0xff, 0x80, 0xff})
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Kind: ErrInvalidVql}))

	// Input ends in the middle of a quantity.
	_, _, err = DecodeVql([]byte{0x81, 0x80})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	_, _, err = DecodeVql(nil)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestMustVql(t *testing.T) {
	assert.Equal(t, uint32(480), MustVql(480).Value())
	assert.Panics(t, func() { MustVql(0x10000000) })
}
