package smf

import (
	"fmt"
	"io"
)

// Message is a complete MIDI message: a channel voice message paired with
// its channel, a system common event, or a real time message. Every
// message knows the single status byte that identifies it on the wire.
type Message interface {
	EventPayload
	StatusByte() byte
}

// ChannelVoice addresses a channel message to one of the 16 channels.
type ChannelVoice struct {
	Channel Channel
	Message ChannelMessage
}

// StatusByte assembles the status byte from the message kind and channel.
func (m ChannelVoice) StatusByte() byte {
	return 0x80 | (byte(m.Message.Kind()) << 4) | m.Channel.Value()
}

func (m ChannelVoice) String() string {
	return fmt.Sprintf("channel %d: %s", m.Channel.Value(), m.Message)
}

func (m ChannelVoice) trackPayload() {}

func (e SystemCommonEvent) trackPayload() {}

func (m RealTimeMessage) trackPayload() {}

// ParseMessage decodes the message starting at the front of data with its
// status byte, returning the message and the total number of bytes
// consumed, status byte included. Channel voice statuses consume one or
// two further data bytes; system common and real time messages are the
// status byte alone.
func ParseMessage(data []byte) (Message, int, error) {
	if len(data) == 0 {
		return nil, 0, io.ErrUnexpectedEOF
	}
	status, err := ParseStatus(data[0])
	if err != nil {
		return nil, 0, err
	}
	if kind, channel, ok := status.ChannelVoiceStatus(); ok {
		message, n, err := parseChannelData(kind, data[1:])
		if err != nil {
			return nil, 0, err
		}
		return ChannelVoice{Channel: channel, Message: message}, n + 1, nil
	}
	if system, ok := status.SystemCommon(); ok {
		return system, 1, nil
	}
	realTime, _ := status.RealTime()
	return realTime, 1, nil
}
