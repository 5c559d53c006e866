package smf

import "fmt"

// This file defines the bounded value types that channel messages are
// assembled from. Each one wraps a byte whose range is checked once, at
// construction, so encoding never has to re-validate.

// Channel identifies one of the 16 MIDI channels.
type Channel struct {
	value uint8
}

// NewChannel validates that value is at most 15.
func NewChannel(value uint8) (Channel, error) {
	if value > 0x0f {
		return Channel{}, &Error{Kind: ErrInvalidChannel, Value: uint32(value)}
	}
	return Channel{value: value}, nil
}

func (c Channel) Value() uint8 {
	return c.value
}

// Note holds a MIDI note number. The values corresponding to keys on a
// standard keyboard are 21 (A0) through 108 (C8).
type Note struct {
	value uint8
}

// NewNote validates that value is at most 127.
func NewNote(value uint8) (Note, error) {
	if value > 0x7f {
		return Note{}, errMidiValue("Note", uint32(value))
	}
	return Note{value: value}, nil
}

func (n Note) Value() uint8 {
	return n.value
}

// String returns the pitch name of the note, e.g. "C4" for 60.
func (n Note) String() string {
	names := [...]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#",
		"A", "A#", "B"}
	return fmt.Sprintf("%s%d", names[n.value%12], int(n.value)/12-1)
}

// noteIndexes maps a pitch-class spelling to its semitone offset from C.
var noteIndexes = map[string]int{
	"C": 0, "C#": 1, "Db": 1,
	"D": 2, "D#": 3, "Eb": 3,
	"E": 4,
	"F": 5, "F#": 6, "Gb": 6,
	"G": 7, "G#": 8, "Ab": 8,
	"A": 9, "A#": 10, "Bb": 10,
	"B": 11,
}

// NoteFromName parses a pitch name such as "C4", "F#2" or "Bb1" into a
// Note. The trailing character is the octave digit; C4 is note 60. Names
// above note 127 are rejected like any other out-of-range note number.
func NoteFromName(name string) (Note, error) {
	if len(name) < 2 {
		return Note{}, &Error{Kind: ErrInvalidNote}
	}
	octaveChar := name[len(name)-1]
	if octaveChar < '0' || octaveChar > '9' {
		return Note{}, &Error{Kind: ErrInvalidNote}
	}
	index, ok := noteIndexes[name[:len(name)-1]]
	if !ok {
		return Note{}, &Error{Kind: ErrInvalidNote}
	}
	octave := int(octaveChar - '0')
	return NewNote(uint8((octave+1)*12 + index))
}

// Velocity is the strike or release strength of a note event.
type Velocity struct {
	value uint8
}

// NewVelocity validates that value is at most 127.
func NewVelocity(value uint8) (Velocity, error) {
	if value > 0x7f {
		return Velocity{}, errMidiValue("Velocity", uint32(value))
	}
	return Velocity{value: value}, nil
}

func (v Velocity) Value() uint8 {
	return v.value
}

// Pressure is an aftertouch amount, either polyphonic or channel-wide.
type Pressure struct {
	value uint8
}

// NewPressure validates that value is at most 127.
func NewPressure(value uint8) (Pressure, error) {
	if value > 0x7f {
		return Pressure{}, errMidiValue("Pressure", uint32(value))
	}
	return Pressure{value: value}, nil
}

func (p Pressure) Value() uint8 {
	return p.value
}

// Program is a patch number, usually selecting the instrument associated
// with a channel.
type Program struct {
	value uint8
}

// NewProgram validates that value is at most 127.
func NewProgram(value uint8) (Program, error) {
	if value > 0x7f {
		return Program{}, errMidiValue("Program", uint32(value))
	}
	return Program{value: value}, nil
}

func (p Program) Value() uint8 {
	return p.value
}

// Control is a controller number. Numbers 120-127 are reserved for channel
// mode messages.
type Control struct {
	value uint8
}

// NewControl validates that value is at most 127.
func NewControl(value uint8) (Control, error) {
	if value > 0x7f {
		return Control{}, errMidiValue("Control", uint32(value))
	}
	return Control{value: value}, nil
}

func (c Control) Value() uint8 {
	return c.value
}

// ControlValue is the 7-bit value operand of a control change message.
type ControlValue struct {
	value uint8
}

// NewControlValue validates that value is at most 127.
func NewControlValue(value uint8) (ControlValue, error) {
	if value > 0x7f {
		return ControlValue{}, errMidiValue("ControlValue", uint32(value))
	}
	return ControlValue{value: value}, nil
}

func (c ControlValue) Value() uint8 {
	return c.value
}
