package smf

// ChannelEventKind is the 3-bit code identifying a channel voice message
// kind, carried in bits 4-6 of the status byte.
type ChannelEventKind uint8

const (
	KindNoteOff               ChannelEventKind = 0
	KindNoteOn                ChannelEventKind = 1
	KindPolyphonicKeyPressure ChannelEventKind = 2
	KindControlChange         ChannelEventKind = 3
	KindProgramChange         ChannelEventKind = 4
	KindChannelPressure       ChannelEventKind = 5
	KindPitchBend             ChannelEventKind = 6
)

// NewChannelEventKind validates a kind code against the 0..6 range.
func NewChannelEventKind(code uint8) (ChannelEventKind, error) {
	if code > 6 {
		return 0, &Error{Kind: ErrInvalidEvent, Value: uint32(code)}
	}
	return ChannelEventKind(code), nil
}

// dataLength returns the number of data bytes that follow a status byte of
// this kind.
func (k ChannelEventKind) dataLength() int {
	switch k {
	case KindProgramChange, KindChannelPressure:
		return 1
	}
	return 2
}

func (k ChannelEventKind) String() string {
	switch k {
	case KindNoteOff:
		return "note off"
	case KindNoteOn:
		return "note on"
	case KindPolyphonicKeyPressure:
		return "polyphonic key pressure"
	case KindControlChange:
		return "control change"
	case KindProgramChange:
		return "program change"
	case KindChannelPressure:
		return "channel pressure"
	case KindPitchBend:
		return "pitch bend"
	}
	return "invalid channel event kind"
}

type statusClass uint8

const (
	statusChannel statusClass = iota
	statusSystemCommon
	statusRealTime
)

// Status is the decoded form of a single status byte: either a channel
// voice event kind paired with its channel, a system common event, or a
// real time message. It converts back to exactly one byte.
type Status struct {
	class    statusClass
	kind     ChannelEventKind
	channel  Channel
	system   SystemCommonEvent
	realTime RealTimeMessage
}

// ParseStatus decodes a status byte. Bytes without the high bit set fail
// with ErrInvalidStatusByte; 0x80..0xEF decode as channel voice statuses,
// 0xF0..0xF7 as system common, and 0xF8..0xFF as real time.
func ParseStatus(b byte) (Status, error) {
	if b&0x80 == 0 {
		return Status{}, &Error{Kind: ErrInvalidStatusByte, Value: uint32(b)}
	}
	switch {
	case b <= 0xef:
		kind, err := NewChannelEventKind((b >> 4) & 0x07)
		if err != nil {
			return Status{}, err
		}
		channel, err := NewChannel(b & 0x0f)
		if err != nil {
			return Status{}, err
		}
		return ChannelStatus(kind, channel), nil
	case b <= 0xf7:
		system, err := NewSystemCommonEvent(b & 0x0f)
		if err != nil {
			return Status{}, err
		}
		return SystemCommonStatus(system), nil
	}
	realTime, err := NewRealTimeMessage(b)
	if err != nil {
		return Status{}, err
	}
	return RealTimeStatus(realTime), nil
}

// ChannelStatus builds the status for a channel voice event.
func ChannelStatus(kind ChannelEventKind, channel Channel) Status {
	return Status{class: statusChannel, kind: kind, channel: channel}
}

// SystemCommonStatus builds the status for a system common event.
func SystemCommonStatus(event SystemCommonEvent) Status {
	return Status{class: statusSystemCommon, system: event}
}

// RealTimeStatus builds the status for a real time message.
func RealTimeStatus(message RealTimeMessage) Status {
	return Status{class: statusRealTime, realTime: message}
}

// Byte encodes the status back into its single wire byte.
func (s Status) Byte() byte {
	switch s.class {
	case statusSystemCommon:
		return s.system.StatusByte()
	case statusRealTime:
		return s.realTime.StatusByte()
	}
	return 0x80 | (byte(s.kind) << 4) | s.channel.Value()
}

// ChannelVoiceStatus returns the event kind and channel if the status is a
// channel voice status.
func (s Status) ChannelVoiceStatus() (ChannelEventKind, Channel, bool) {
	if s.class != statusChannel {
		return 0, Channel{}, false
	}
	return s.kind, s.channel, true
}

// SystemCommon returns the system common event if the status is one.
func (s Status) SystemCommon() (SystemCommonEvent, bool) {
	if s.class != statusSystemCommon {
		return 0, false
	}
	return s.system, true
}

// RealTime returns the real time message if the status is one.
func (s Status) RealTime() (RealTimeMessage, bool) {
	if s.class != statusRealTime {
		return 0, false
	}
	return s.realTime, true
}
