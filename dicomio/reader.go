// Package dicomio provides the low-level, seek-based byte primitives the
// DICOM decoder builds on: a positioned reader with typed little-endian
// integer reads and peek-style undo, a matching writer for the file-meta
// round trip, and the specific-character-set string decoding DICOM
// requires for non-ASCII PN/LO values.
package dicomio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
)

// Reader is a positioned byte stream with typed integer reads and an
// undo-read (peek-style rewind) operation, matching spec.md §4.2's C4
// contract: "a positioned byte stream with operations open, seek, tell,
// read_bytes, read_u16_le, read_u32_le, read_string, and undo_read."
//
// Typed integer reads always decode little-endian wire bytes; byte-
// swapping to the stream's detected encoding is the decoder's
// responsibility (spec.md §4.4.5), not the reader's.
type Reader struct {
	src io.ReadSeeker
	pos int64

	// codingSystem, when set with SetCodingSystem, overrides the
	// 7-bit-ASCII default used by ReadString.
	codingSystem CodingSystem
}

// NewReader wraps src, which must support Seek, as the byte source for a
// decode.
func NewReader(src io.ReadSeeker) *Reader {
	return &Reader{src: src}
}

// NewBytesReader is a convenience constructor over an in-memory buffer,
// used throughout this package's tests and by dicom's Reader.ReadBytes.
func NewBytesReader(data []byte) *Reader {
	return NewReader(bytes.NewReader(data))
}

// SetCodingSystem overrides the decoder used when converting buffers to
// strings, following a SpecificCharacterSet element (PS3.5 §6.1.2.1).
func (r *Reader) SetCodingSystem(cs CodingSystem) {
	r.codingSystem = cs
}

// Tell returns the current byte offset from the start of the stream.
func (r *Reader) Tell() int64 {
	return r.pos
}

// Seek repositions the stream, mirroring io.Seeker's whence values.
func (r *Reader) Seek(offset int64, whence int) error {
	pos, err := r.src.Seek(offset, whence)
	if err != nil {
		return fmt.Errorf("dicomio: seek failed: %w", err)
	}
	r.pos = pos
	return nil
}

// UndoRead rewinds n bytes from the current position; equivalent to
// Seek(-n, io.SeekCurrent), but named to document peek-style use (spec.md
// §4.2).
func (r *Reader) UndoRead(n int) error {
	return r.Seek(-int64(n), io.SeekCurrent)
}

// ReadBytes reads exactly n bytes, returning the bytes actually read and
// an error if fewer than n were available (spec.md §4.2: "partial reads
// surface as n_read < n").
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	read, err := io.ReadFull(r.src, buf)
	r.pos += int64(read)
	if err != nil {
		return buf[:read], fmt.Errorf("dicomio: read %d bytes, wanted %d: %w", read, n, err)
	}
	return buf, nil
}

// ReadUint16LE reads two little-endian wire bytes as a uint16.
func (r *Reader) ReadUint16LE() (uint16, error) {
	b, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// ReadUint32LE reads four little-endian wire bytes as a uint32.
func (r *Reader) ReadUint32LE() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadString reads n bytes and decodes them as text, honoring the current
// SpecificCharacterSet coding system (default: the bytes are assumed to be
// 7-bit-clean ASCII/UTF-8).
func (r *Reader) ReadString(n int) (string, error) {
	b, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return decodeString(b, r.codingSystem.Ideographic)
}

func decodeString(b []byte, dec *encoding.Decoder) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	if dec == nil {
		return string(b), nil
	}
	decoded, err := dec.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("dicomio: charset decode failed: %w", err)
	}
	return string(decoded), nil
}
