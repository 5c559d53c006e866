package smf

import "encoding/binary"

var (
	headerChunkType = [4]byte{'M', 'T', 'h', 'd'}
	trackChunkType  = [4]byte{'M', 'T', 'r', 'k'}
)

// Track is an ordered, append-only sequence of track events. A
// well-formed track's final event is EndOfTrack; the library never
// appends it automatically.
type Track struct {
	events []TrackEvent
}

// NewTrack builds a track over the given events. The slice is used
// directly, not copied.
func NewTrack(events []TrackEvent) *Track {
	return &Track{events: events}
}

// NewNamedTrack builds a track whose first event is a TrackName meta
// event carrying the given display name.
func NewNamedTrack(name string) *Track {
	return &Track{events: []TrackEvent{NewTrackNameEvent(name)}}
}

// AddEvent appends an event to the track.
func (t *Track) AddEvent(event TrackEvent) {
	t.events = append(t.events, event)
}

// Events returns the track's events in order.
func (t *Track) Events() []TrackEvent {
	return t.events
}

// EventCount returns the number of events in the track.
func (t *Track) EventCount() int {
	return len(t.events)
}

// Name returns the track's display name: the payload of a leading
// TrackName meta event, or the empty string if the track has none.
func (t *Track) Name() string {
	if len(t.events) == 0 {
		return ""
	}
	if name, ok := t.events[0].Payload.(TrackName); ok {
		return string(name)
	}
	return ""
}

// Length returns the number of bytes the track's encoded event content
// occupies, which is also the value of the MTrk chunk's length field.
func (t *Track) Length() int {
	n := 0
	for _, event := range t.events {
		n += event.encodedSize()
	}
	return n
}

// Bytes returns the complete MTrk chunk: the chunk type, the big-endian
// content length, then every event's bytes in order.
func (t *Track) Bytes() []byte {
	length := t.Length()
	buf := make([]byte, 0, 8+length)
	buf = append(buf, trackChunkType[:]...)
	buf = binary.BigEndian.AppendUint32(buf, uint32(length))
	for _, event := range t.events {
		buf = event.appendTo(buf)
	}
	return buf
}
