// Package smf builds standard MIDI files (SMF). It models MIDI messages,
// meta events and sysex payloads as typed values, assembles them into
// delta-timed track events, and encodes the whole as the MThd/MTrk chunk
// layout defined by the MIDI file specification. The package is
// encoder-first: decoding covers the header chunk, status bytes and
// single messages, not whole files. The smfgen directory contains a
// command-line tool built on top of the library.
package smf

import "io"

// File is a complete standard MIDI file: an MThd header followed by one
// or more MTrk track chunks. The header's track count is not checked
// against the track list.
type File struct {
	Header Header
	Tracks []*Track
}

// NewFile assembles a file from a header and its tracks.
func NewFile(header Header, tracks []*Track) *File {
	return &File{Header: header, Tracks: tracks}
}

// Bytes returns the encoded file: the header bytes followed by each
// track's chunk in insertion order.
func (f *File) Bytes() []byte {
	size := headerByteCount
	for _, track := range f.Tracks {
		size += 8 + track.Length()
	}
	buf := make([]byte, 0, size)
	buf = append(buf, f.Header.Bytes()...)
	for _, track := range f.Tracks {
		buf = append(buf, track.Bytes()...)
	}
	return buf
}

// WriteTo writes the encoded file to w, implementing io.WriterTo.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	return int64(n), err
}
