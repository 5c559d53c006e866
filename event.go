package smf

import "fmt"

// EventPayload is the payload of a track event: a MIDI message, a meta
// event, or raw sysex bytes.
type EventPayload interface {
	String() string
	trackPayload()
}

// SysexData carries system-exclusive bytes that are emitted into the
// track untouched. The caller is responsible for including the 0xF0 lead
// byte, the VLQ length, and the trailing 0xF7 where the file needs them.
type SysexData []byte

func (s SysexData) String() string {
	return fmt.Sprintf("sysex data, %d bytes: % x", len(s), []byte(s))
}

func (s SysexData) trackPayload() {}

// TrackEvent pairs a delta time, in ticks since the previous event of the
// same track, with its payload.
type TrackEvent struct {
	Delta   Vql
	Payload EventPayload
}

// NewTrackEvent builds a track event from a delta time and payload.
func NewTrackEvent(delta Vql, payload EventPayload) TrackEvent {
	return TrackEvent{Delta: delta, Payload: payload}
}

// NewNoteOnEvent builds a note-on track event.
func NewNoteOnEvent(delta Vql, channel Channel, note Note,
	velocity Velocity) TrackEvent {
	return TrackEvent{Delta: delta, Payload: ChannelVoice{
		Channel: channel,
		Message: NoteOn{Note: note, Velocity: velocity},
	}}
}

// NewNoteOffEvent builds a note-off track event.
func NewNoteOffEvent(delta Vql, channel Channel, note Note,
	velocity Velocity) TrackEvent {
	return TrackEvent{Delta: delta, Payload: ChannelVoice{
		Channel: channel,
		Message: NoteOff{Note: note, Velocity: velocity},
	}}
}

// NewTrackNameEvent builds a zero-delta track name meta event.
func NewTrackNameEvent(name string) TrackEvent {
	return TrackEvent{Payload: TrackName(name)}
}

// NewEndOfTrackEvent builds the zero-delta event that must terminate a
// well-formed track.
func NewEndOfTrackEvent() TrackEvent {
	return TrackEvent{Payload: EndOfTrack{}}
}

// Bytes returns the track encoding of the event: the delta time as a VLQ,
// then the payload bytes. Channel messages always re-emit their status
// byte; there is no running status.
func (e TrackEvent) Bytes() []byte {
	return e.appendTo(make([]byte, 0, e.encodedSize()))
}

func (e TrackEvent) appendTo(buf []byte) []byte {
	buf = appendVql(buf, e.Delta.Value())
	switch p := e.Payload.(type) {
	case ChannelVoice:
		buf = append(buf, p.StatusByte())
		buf = p.Message.appendData(buf)
	case Message:
		// System common and real time messages are a lone status byte.
		buf = append(buf, p.StatusByte())
	case MetaEvent:
		buf = appendMetaEvent(buf, p.MetaType(), p.payload())
	case SysexData:
		buf = append(buf, p...)
	}
	return buf
}

// encodedSize returns the number of bytes appendTo will emit.
func (e TrackEvent) encodedSize() int {
	n := vqlSize(e.Delta.Value())
	switch p := e.Payload.(type) {
	case ChannelVoice:
		n += 1 + p.Message.Kind().dataLength()
	case Message:
		n++
	case MetaEvent:
		data := p.payload()
		n += 2 + vqlSize(uint32(len(data))) + len(data)
	case SysexData:
		n += len(p)
	}
	return n
}

func (e TrackEvent) String() string {
	return fmt.Sprintf("delta %d: %s", e.Delta.Value(), e.Payload)
}
