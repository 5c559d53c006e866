package smf

import "fmt"

// MetaEvent is a non-playable event carried inside a track chunk. A meta
// event serializes as the 0xFF marker, its 1-byte type code, the VLQ
// payload length, then the payload itself.
type MetaEvent interface {
	// MetaType returns the 1-byte meta-event type code.
	MetaType() byte
	String() string
	// payload returns the raw bytes following the length field.
	payload() []byte
	trackPayload()
}

// appendMetaEvent frames a meta event into buf.
func appendMetaEvent(buf []byte, eventType byte, data []byte) []byte {
	buf = append(buf, 0xff, eventType)
	buf = appendVql(buf, uint32(len(data)))
	return append(buf, data...)
}

// TrackName carries the 0x03 sequence/track name event.
type TrackName string

func (t TrackName) MetaType() byte {
	return 0x03
}

func (t TrackName) payload() []byte {
	return []byte(t)
}

func (t TrackName) String() string {
	return fmt.Sprintf("track name: %s", string(t))
}

func (t TrackName) trackPayload() {}

// EndOfTrack is the mandatory 0x2F event terminating a track chunk.
type EndOfTrack struct{}

func (e EndOfTrack) MetaType() byte {
	return 0x2f
}

func (e EndOfTrack) payload() []byte {
	return nil
}

func (e EndOfTrack) String() string {
	return "end of track"
}

func (e EndOfTrack) trackPayload() {}

// SetTempo holds the number of microseconds per quarter note. Only the
// low 24 bits are encoded; anything above them is dropped on emission.
type SetTempo uint32

// SetTempoBPM converts beats per minute into a SetTempo event. The caller
// must pass a positive tempo.
func SetTempoBPM(bpm float64) SetTempo {
	return SetTempo(60000000.0 / bpm)
}

func (t SetTempo) MetaType() byte {
	return 0x51
}

func (t SetTempo) payload() []byte {
	return []byte{byte(t >> 16), byte(t >> 8), byte(t)}
}

func (t SetTempo) String() string {
	return fmt.Sprintf("set tempo to %d us/quarter note (%.1f BPM)",
		uint32(t), 60000000.0/float64(t))
}

func (t SetTempo) trackPayload() {}

// TimeSignature is the 0x58 event. The denominator is stored as its
// base-2 logarithm, so only power-of-two denominators are representable.
type TimeSignature struct {
	numerator       uint8
	denominatorLog2 uint8
	// Number of MIDI clocks (24ths of a quarter note) per metronome tick.
	clocksPerTick uint8
	// Number of notated 32nd notes per MIDI quarter note, usually 8.
	notated32nds uint8
}

// NewTimeSignature builds a time signature from the notated numerator and
// denominator. Denominators that are not powers of two are rejected.
func NewTimeSignature(numerator, denominator, clocksPerTick,
	notated32nds uint8) (TimeSignature, error) {
	if denominator == 0 || denominator&(denominator-1) != 0 {
		return TimeSignature{}, errMidiValue("TimeSignatureDenominator",
			uint32(denominator))
	}
	var log2 uint8
	for d := denominator; d > 1; d >>= 1 {
		log2++
	}
	return TimeSignature{
		numerator:       numerator,
		denominatorLog2: log2,
		clocksPerTick:   clocksPerTick,
		notated32nds:    notated32nds,
	}, nil
}

func (t TimeSignature) Numerator() uint8 {
	return t.numerator
}

func (t TimeSignature) Denominator() uint8 {
	return 1 << t.denominatorLog2
}

func (t TimeSignature) MetaType() byte {
	return 0x58
}

func (t TimeSignature) payload() []byte {
	return []byte{t.numerator, t.denominatorLog2, t.clocksPerTick,
		t.notated32nds}
}

func (t TimeSignature) String() string {
	return fmt.Sprintf("time signature %d/%d, %d clocks per tick, %d 32nd "+
		"notes per quarter note", t.numerator, t.Denominator(),
		t.clocksPerTick, t.notated32nds)
}

func (t TimeSignature) trackPayload() {}

// KeySignature is the 0x59 event. Sharps holds the signed count of sharps
// (positive) or flats (negative).
type KeySignature struct {
	Sharps  int8
	IsMajor bool
}

func (k KeySignature) MetaType() byte {
	return 0x59
}

func (k KeySignature) payload() []byte {
	mode := byte(1)
	if k.IsMajor {
		mode = 0
	}
	return []byte{byte(k.Sharps), mode}
}

func (k KeySignature) String() string {
	count := k.Sharps
	accidental := "sharp(s)"
	if count < 0 {
		count = -count
		accidental = "flat(s)"
	}
	mode := "minor"
	if k.IsMajor {
		mode = "major"
	}
	return fmt.Sprintf("key signature: %d %s, %s", count, accidental, mode)
}

func (k KeySignature) trackPayload() {}

// UnknownMeta carries a meta event this package doesn't model, as an
// opaque type code and payload.
type UnknownMeta struct {
	EventType byte
	Data      []byte
}

func (u UnknownMeta) MetaType() byte {
	return u.EventType
}

func (u UnknownMeta) payload() []byte {
	return u.Data
}

func (u UnknownMeta) String() string {
	return fmt.Sprintf("meta event type 0x%02x, %d bytes", u.EventType,
		len(u.Data))
}

func (u UnknownMeta) trackPayload() {}
