package smf

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Format selects the overall organization of an SMF file.
type Format uint16

const (
	// SingleTrack files contain exactly one track chunk.
	SingleTrack Format = 0
	// MultipleTrack files contain one or more simultaneous tracks.
	MultipleTrack Format = 1
	// MultipleSong files contain independent single-track sequences.
	MultipleSong Format = 2
)

// NewFormat validates a format field against {0, 1, 2}.
func NewFormat(value uint16) (Format, error) {
	if value > 2 {
		return 0, &Error{Kind: ErrInvalidFormat, Value: uint32(value)}
	}
	return Format(value), nil
}

// Division is the raw division field of the MThd chunk. Positive values
// give the number of ticks per quarter note. Negative values select SMPTE
// timing: the upper byte is the negated frame rate and the lower byte the
// number of ticks per frame. The library stores the field as-is and does
// not interpret SMPTE semantics beyond the split.
type Division int16

// TicksPerQuarterNote returns the tick rate, or 0 for SMPTE divisions.
func (d Division) TicksPerQuarterNote() uint16 {
	if d < 0 {
		return 0
	}
	return uint16(d)
}

// SMPTETimeCode returns the frames per second followed by the ticks per
// frame, or 0, 0 when the division is tick-based.
func (d Division) SMPTETimeCode() (uint8, uint8) {
	if d >= 0 {
		return 0, 0
	}
	fps := uint8(-int8(d >> 8))
	return fps, uint8(d & 0xff)
}

func (d Division) String() string {
	if ticks := d.TicksPerQuarterNote(); ticks != 0 {
		return fmt.Sprintf("%d ticks per quarter note", ticks)
	}
	fps, ticksPerFrame := d.SMPTETimeCode()
	return fmt.Sprintf("%d frames per second, %d ticks per frame", fps,
		ticksPerFrame)
}

// The MThd data section is always 6 bytes: format, track count and
// division, each 16 bits.
const headerChunkLength = 6

// headerByteCount is the encoded size of the whole chunk.
const headerByteCount = 14

// Header describes the MThd chunk that opens every SMF file.
type Header struct {
	format     Format
	trackCount uint16
	division   Division
}

// NewHeader builds a header, validating the format field. The track count
// and division are stored as given; consistency with the actual track
// list is the caller's responsibility.
func NewHeader(format Format, trackCount uint16, division Division) (Header,
	error) {
	if _, err := NewFormat(uint16(format)); err != nil {
		return Header{}, err
	}
	return Header{
		format:     format,
		trackCount: trackCount,
		division:   division,
	}, nil
}

func (h Header) Format() Format {
	return h.format
}

func (h Header) TrackCount() uint16 {
	return h.trackCount
}

func (h Header) Division() Division {
	return h.division
}

// Bytes returns the 14-byte MThd chunk with all fields big-endian.
func (h Header) Bytes() []byte {
	buf := make([]byte, 0, headerByteCount)
	buf = append(buf, headerChunkType[:]...)
	buf = binary.BigEndian.AppendUint32(buf, headerChunkLength)
	buf = binary.BigEndian.AppendUint16(buf, uint16(h.format))
	buf = binary.BigEndian.AppendUint16(buf, h.trackCount)
	buf = binary.BigEndian.AppendUint16(buf, uint16(h.division))
	return buf
}

// ParseHeader decodes an MThd chunk from the first 14 bytes of data.
// Shorter input, a wrong chunk type, a length field other than 6, or an
// out-of-range format all fail with ErrInvalidHeader.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < headerByteCount {
		return Header{}, &Error{Kind: ErrInvalidHeader}
	}
	if !bytes.Equal(data[0:4], headerChunkType[:]) {
		return Header{}, &Error{Kind: ErrInvalidHeader}
	}
	if binary.BigEndian.Uint32(data[4:8]) != headerChunkLength {
		return Header{}, &Error{Kind: ErrInvalidHeader}
	}
	format, err := NewFormat(binary.BigEndian.Uint16(data[8:10]))
	if err != nil {
		return Header{}, &Error{Kind: ErrInvalidHeader}
	}
	return Header{
		format:     format,
		trackCount: binary.BigEndian.Uint16(data[10:12]),
		division:   Division(int16(binary.BigEndian.Uint16(data[12:14]))),
	}, nil
}

func (h Header) String() string {
	return fmt.Sprintf("format %d, %d track(s), %s", h.format, h.trackCount,
		h.division)
}
