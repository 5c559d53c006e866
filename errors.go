package smf

import "fmt"

// ErrorKind discriminates the validation failures this package reports.
type ErrorKind int

const (
	// ErrInvalidChannel means a channel byte was above 15.
	ErrInvalidChannel ErrorKind = iota
	// ErrInvalidMidiValue means a 7-bit quantity was out of range. The
	// error's ValueKind field names the primitive that rejected it.
	ErrInvalidMidiValue
	// ErrInvalidEvent means a channel-event kind code was outside 0..6.
	ErrInvalidEvent
	// ErrInvalidSystemCommonEvent means a system-common code was outside
	// 0..7.
	ErrInvalidSystemCommonEvent
	// ErrInvalidRealTimeMessage means a byte was outside 0xF8..0xFF.
	ErrInvalidRealTimeMessage
	// ErrInvalidStatusByte means the high bit of a status byte was clear.
	ErrInvalidStatusByte
	// ErrInvalidHeader means an MThd chunk was malformed.
	ErrInvalidHeader
	// ErrInvalidFormat means the SMF format field was outside {0, 1, 2}.
	ErrInvalidFormat
	// ErrInvalidVql means a variable-length quantity's source value was
	// above 0x0FFFFFFF, or a decoded one was not terminated within 4 bytes.
	ErrInvalidVql
	// ErrInvalidNote means a pitch string didn't name a valid note.
	ErrInvalidNote
)

// Error is the single error type returned by every validating constructor
// and decoder in this package. The Kind field identifies the failure;
// Value carries the rejected input where one exists.
type Error struct {
	Kind ErrorKind
	// ValueKind names the bounded primitive for ErrInvalidMidiValue.
	ValueKind string
	Value     uint32
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrInvalidChannel:
		return fmt.Sprintf("invalid channel: %d, must be from 0 to 15",
			e.Value)
	case ErrInvalidMidiValue:
		return fmt.Sprintf("invalid %s value: %d", e.ValueKind, e.Value)
	case ErrInvalidEvent:
		return fmt.Sprintf("invalid channel event kind: %d, must be from "+
			"0 to 6", e.Value)
	case ErrInvalidSystemCommonEvent:
		return fmt.Sprintf("invalid system common event code: %d", e.Value)
	case ErrInvalidRealTimeMessage:
		return fmt.Sprintf("invalid real time message byte: 0x%02x", e.Value)
	case ErrInvalidStatusByte:
		return "not a status byte: the high bit must be set"
	case ErrInvalidHeader:
		return "not a valid MThd header chunk"
	case ErrInvalidFormat:
		return fmt.Sprintf("invalid SMF format: %d, must be 0, 1 or 2",
			e.Value)
	case ErrInvalidVql:
		return fmt.Sprintf("invalid variable-length quantity: 0x%08x",
			e.Value)
	case ErrInvalidNote:
		return "not a valid note name"
	}
	return fmt.Sprintf("unknown MIDI error kind %d", int(e.Kind))
}

// Is matches any *Error carrying the same kind, so callers can check for a
// failure class with errors.Is(err, &Error{Kind: ErrInvalidChannel}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// errMidiValue builds the kind-tagged error for an out-of-range 7-bit
// quantity.
func errMidiValue(kind string, value uint32) error {
	return &Error{Kind: ErrInvalidMidiValue, ValueKind: kind, Value: value}
}
