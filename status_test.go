package smf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusRejectsDataBytes(t *testing.T) {
	for b := 0; b <= 0x7f; b++ {
		_, err := ParseStatus(byte(b))
		require.Error(t, err, "byte 0x%02x", b)
		assert.True(t, errors.Is(err, &Error{Kind: ErrInvalidStatusByte}),
			"byte 0x%02x", b)
	}
}

func TestStatusRoundTrip(t *testing.T) {
	for b := 0x80; b <= 0xff; b++ {
		status, err := ParseStatus(byte(b))
		require.NoError(t, err, "byte 0x%02x", b)
		assert.Equal(t, byte(b), status.Byte(), "byte 0x%02x", b)
	}
}

func TestStatusClassification(t *testing.T) {
	status, err := ParseStatus(0x93)
	require.NoError(t, err)
	kind, channel, ok := status.ChannelVoiceStatus()
	require.True(t, ok)
	assert.Equal(t, KindNoteOn, kind)
	assert.Equal(t, uint8(3), channel.Value())
	_, isSystem := status.SystemCommon()
	assert.False(t, isSystem)
	_, isRealTime := status.RealTime()
	assert.False(t, isRealTime)

	status, err = ParseStatus(0xf2)
	require.NoError(t, err)
	system, ok := status.SystemCommon()
	require.True(t, ok)
	assert.Equal(t, SongPositionPointer, system)
	_, _, isChannel := status.ChannelVoiceStatus()
	assert.False(t, isChannel)

	status, err = ParseStatus(0xfa)
	require.NoError(t, err)
	realTime, ok := status.RealTime()
	require.True(t, ok)
	assert.Equal(t, Start, realTime)
}

func TestStatusConstructors(t *testing.T) {
	channel, err := NewChannel(5)
	require.NoError(t, err)
	assert.Equal(t, byte(0xe5), ChannelStatus(KindPitchBend, channel).Byte())
	assert.Equal(t, byte(0xf6), SystemCommonStatus(TuneRequest).Byte())
	assert.Equal(t, byte(0xf8), RealTimeStatus(TimingClock).Byte())
}

func TestChannelEventKindRange(t *testing.T) {
	for code := 0; code <= 6; code++ {
		kind, err := NewChannelEventKind(uint8(code))
		require.NoError(t, err)
		assert.Equal(t, ChannelEventKind(code), kind)
	}
	_, err := NewChannelEventKind(7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Kind: ErrInvalidEvent}))
}

func TestSystemCommonEventRange(t *testing.T) {
	event, err := NewSystemCommonEvent(7)
	require.NoError(t, err)
	assert.Equal(t, EndOfSysEx, event)
	assert.Equal(t, byte(0xf7), event.StatusByte())

	_, err = NewSystemCommonEvent(8)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Kind: ErrInvalidSystemCommonEvent}))
}

func TestRealTimeMessageRange(t *testing.T) {
	message, err := NewRealTimeMessage(0xff)
	require.NoError(t, err)
	assert.Equal(t, SystemReset, message)

	_, err = NewRealTimeMessage(0xf7)
	require.Error(t, err)
	assert.True(t, errors.Is(err, &Error{Kind: ErrInvalidRealTimeMessage}))
}
