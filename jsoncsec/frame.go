package jsoncsec

import (
	"encoding/binary"
	"fmt"
	"io"
)

// MaxFrameSize bounds the length ReadFrame accepts.
const MaxFrameSize = 64 << 20

// WriteFrame writes payload prefixed with its uvarint length.
func WriteFrame(w io.Writer, payload []byte) error {
	var hdr [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(hdr[:], uint64(len(payload)))
	if _, err := w.Write(hdr[:n]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// FrameReader is what ReadFrame needs from its source.
type FrameReader interface {
	io.Reader
	io.ByteReader
}

// ReadFrame reads one frame written by WriteFrame.
func ReadFrame(r FrameReader) ([]byte, error) {
	n, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, err
	}
	if n > MaxFrameSize {
		return nil, fmt.Errorf("jsoncsec: frame of %d bytes exceeds limit", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf, nil
}
