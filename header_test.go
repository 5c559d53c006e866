package smf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderBytes(t *testing.T) {
	header, err := NewHeader(SingleTrack, 1, 480)
	require.NoError(t, err)
	assert.Equal(t, []byte{
		0x4d, 0x54, 0x68, 0x64,
		0x00, 0x00, 0x00, 0x06,
		0x00, 0x00,
		0x00, 0x01,
		0x01, 0xe0,
	}, header.Bytes())
}

func TestHeaderRoundTrip(t *testing.T) {
	cases := []struct {
		format     Format
		trackCount uint16
		division   Division
	}{
		{SingleTrack, 1, 480},
		{MultipleTrack, 16, 96},
		{MultipleSong, 0xffff, 0x7fff},
		// SMPTE division: 25 fps, 40 ticks per frame.
		{MultipleTrack, 2, Division(int16(-25)<<8 | 40)},
	}
	for _, c := range cases {
		header, err := NewHeader(c.format, c.trackCount, c.division)
		require.NoError(t, err)
		decoded, err := ParseHeader(header.Bytes())
		require.NoError(t, err)
		assert.Equal(t, header, decoded)
	}
}

func TestHeaderFormatValidation(t *testing.T) {
	_, err := NewHeader(Format(3), 1, 480)
	require.Error(t, err)
	var midiErr *Error
	require.ErrorAs(t, err, &midiErr)
	assert.Equal(t, ErrInvalidFormat, midiErr.Kind)
	assert.Equal(t, uint32(3), midiErr.Value)
}

func TestParseHeaderRejectsMalformedChunks(t *testing.T) {
	good, err := NewHeader(SingleTrack, 1, 480)
	require.NoError(t, err)
	valid := good.Bytes()

	cases := map[string][]byte{
		"short input":  valid[:13],
		"empty input":  nil,
		"bad magic":    append([]byte{'M', 'T', 'r', 'k'}, valid[4:]...),
		"bad length":   {0x4d, 0x54, 0x68, 0x64, 0, 0, 0, 7, 0, 0, 0, 1, 1, 0xe0},
		"bad format":   {0x4d, 0x54, 0x68, 0x64, 0, 0, 0, 6, 0, 3, 0, 1, 1, 0xe0},
	}
	for name, data := range cases {
		_, err := ParseHeader(data)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, &Error{Kind: ErrInvalidHeader}), name)
	}
}

func TestDivision(t *testing.T) {
	assert.Equal(t, uint16(480), Division(480).TicksPerQuarterNote())
	fps, ticks := Division(480).SMPTETimeCode()
	assert.Equal(t, uint8(0), fps)
	assert.Equal(t, uint8(0), ticks)

	smpte := Division(int16(-25)<<8 | 40)
	assert.Equal(t, uint16(0), smpte.TicksPerQuarterNote())
	fps, ticks = smpte.SMPTETimeCode()
	assert.Equal(t, uint8(25), fps)
	assert.Equal(t, uint8(40), ticks)
}
