package dicom

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/odincare/dcmlite/dicomio"
	"github.com/odincare/dcmlite/dicomlog"
	"github.com/odincare/dcmlite/dicomtag"
	"github.com/odincare/dcmlite/dicomvr"
)

// Reader drives a streaming decode against a Handler. It is not safe for
// concurrent use; independent Readers over distinct sources and handlers
// parallelize freely.
type Reader struct {
	handler       Handler
	dropPixelData bool
	lastErr       *DecodeError
}

// NewReader returns a Reader that dispatches parse events to handler.
func NewReader(handler Handler) *Reader {
	return &Reader{handler: handler}
}

// SetDropPixelData configures the Reader to skip materializing the
// PixelData (7FE0,0010) buffer: the element is still emitted with Length
// set but Buffer nil, and the bytes are seeked past rather than copied.
func (r *Reader) SetDropPixelData(drop bool) {
	r.dropPixelData = drop
}

// LastError returns the diagnostic recorded by the most recent ReadFile /
// ReadBytes call that returned false, or nil on success.
func (r *Reader) LastError() *DecodeError {
	return r.lastErr
}

// ReadFile opens path and decodes it. Returns false if the file could not be
// opened, if the stream is too short to probe its encoding, or if a
// malformed record aborted the decode; elements delivered to the handler
// before the failure remain valid. See LastError for the diagnostic.
func (r *Reader) ReadFile(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		r.lastErr = newDecodeError(IoError, dicomtag.Tag{}, 0, err)
		return false
	}
	defer f.Close()
	return r.decode(dicomio.NewReader(f))
}

// ReadBytes decodes an in-memory buffer, for callers that already hold the
// file contents (or synthetic fixtures in tests).
func (r *Reader) ReadBytes(data []byte) bool {
	return r.decode(dicomio.NewBytesReader(data))
}

type decodeState struct {
	endian        binary.ByteOrder
	endianChecked bool
	explicitVR    bool
	dropPixelData bool
}

func (r *Reader) decode(src *dicomio.Reader) bool {
	r.lastErr = nil
	if err := src.Seek(128, io.SeekStart); err != nil {
		r.lastErr = newDecodeError(IoError, dicomtag.Tag{}, 0, err)
		return false
	}

	prefix, prefixErr := src.ReadBytes(4)
	if prefixErr != nil || string(prefix) != "DICM" {
		// Preamble is omitted (or the stream is too short to hold one);
		// the open question in the design notes says to preserve this
		// unconditional rewind even when the first bytes happen to look
		// like a (0002,xxxx) meta tag. Seeking to 0 directly, rather than
		// undoing 132 bytes from wherever the short read left us, keeps
		// this correct even when src has fewer than 132 bytes total.
		if err := src.Seek(0, io.SeekStart); err != nil {
			r.lastErr = newDecodeError(IoError, dicomtag.Tag{}, src.Tell(), err)
			return false
		}
	}

	st := &decodeState{endian: binary.LittleEndian, dropPixelData: r.dropPixelData}

	explicit, err := probeExplicitVR(src)
	if err != nil {
		r.lastErr = newDecodeError(NotDicom, dicomtag.Tag{}, src.Tell(), err)
		return false
	}
	st.explicitVR = explicit
	r.handler.OnExplicitVR(explicit)

	if _, err := readElements(src, r.handler, st, UndefinedLength, true); err != nil {
		if de, ok := err.(*DecodeError); ok {
			r.lastErr = de
		} else {
			r.lastErr = newDecodeError(IoError, dicomtag.Tag{}, src.Tell(), err)
		}
		dicomlog.Vprintf(1, "dicom: decode aborted: %v", r.lastErr)
		return false
	}
	return true
}

// readElements is the recursive element loop (spec §4.4.2), consuming bytes
// from src via the handler's event protocol until max_length is exhausted,
// a scope-terminating delimiter is seen, or the handler requests a stop.
func readElements(src *dicomio.Reader, h Handler, st *decodeState, maxLength uint32, checkEndian bool) (uint32, error) {
	var readLength uint32

	for readLength < maxLength {
		if h.ShouldStop() {
			return readLength, nil
		}

		tagOffset := src.Tell()
		tag, err := readTag(src, st)
		if err != nil {
			// Clean end of stream at a scope boundary is not an error.
			return readLength, nil
		}

		if checkEndian && !st.endianChecked && tag.Group != dicomtag.MetadataGroup {
			if err := src.UndoRead(4); err != nil {
				return readLength, newDecodeError(IoError, tag, tagOffset, err)
			}
			endian, err := probeEndian(src)
			if err != nil {
				return readLength, newDecodeError(IoError, tag, tagOffset, err)
			}
			st.endian = endian
			h.OnEndian(endian)

			explicit, err := probeExplicitVR(src)
			if err != nil {
				return readLength, newDecodeError(IoError, tag, tagOffset, err)
			}
			st.explicitVR = explicit
			h.OnExplicitVR(explicit)

			st.endianChecked = true
			continue
		}

		readLength += 4

		switch tag {
		case dicomtag.SeqEnd:
			if _, err := src.ReadBytes(4); err != nil {
				return readLength, newDecodeError(Truncated, tag, tagOffset, err)
			}
			readLength += 4
			if h.OnElementStart(tag) {
				h.OnElementEnd(&Element{Tag: tag, VR: dicomvr.UNKNOWN, Endian: st.endian})
			}
			return readLength, nil

		case dicomtag.SeqItemEnd:
			if _, err := src.ReadBytes(4); err != nil {
				return readLength, newDecodeError(Truncated, tag, tagOffset, err)
			}
			readLength += 4
			if h.OnElementStart(tag) {
				h.OnElementEnd(&Element{Tag: tag, VR: dicomvr.UNKNOWN, Endian: st.endian})
			}
			continue

		case dicomtag.SeqItemPrefix:
			itemLength, err := readUint32(src, st)
			if err != nil {
				return readLength, newDecodeError(Truncated, tag, tagOffset, err)
			}
			readLength += 4
			if h.OnElementStart(tag) {
				h.OnElementEnd(&Element{Tag: tag, VR: dicomvr.UNKNOWN, Endian: st.endian, Length: itemLength})
			}
			continue
		}

		vr, err := resolveVR(src, st, tag)
		if err != nil {
			return readLength, err
		}
		if st.explicitVR {
			readLength += 2
		}

		length, lengthBytes, err := readValueLength(src, st, vr)
		if err != nil {
			return readLength, err
		}
		readLength += uint32(lengthBytes)

		if vr == dicomvr.SQ {
			ds := &Element{Tag: tag, VR: dicomvr.SQ, Endian: st.endian, Length: length, ExplicitVR: st.explicitVR}
			h.OnSeqElementStart(ds)
			if length > 0 {
				n, err := readElements(src, h, st, length, false)
				readLength += n
				if err != nil {
					h.OnSeqElementEnd(ds)
					return readLength, err
				}
			}
			h.OnSeqElementEnd(ds)
			continue
		}

		if length == UndefinedLength {
			return readLength, newDecodeError(UndefinedLengthOnScalar, tag, tagOffset, nil)
		}

		var buf []byte
		if st.dropPixelData && tag == dicomtag.PixelData {
			if err := src.Seek(int64(length), io.SeekCurrent); err != nil {
				return readLength, newDecodeError(Truncated, tag, tagOffset, err)
			}
		} else {
			buf, err = src.ReadBytes(int(length))
			if err != nil {
				return readLength, newDecodeError(Truncated, tag, tagOffset, err)
			}
		}
		readLength += length

		if h.OnElementStart(tag) {
			h.OnElementEnd(&Element{Tag: tag, VR: vr, Endian: st.endian, Length: length, Buffer: buf})
		}
	}

	return readLength, nil
}

func resolveVR(src *dicomio.Reader, st *decodeState, tag dicomtag.Tag) (dicomvr.VR, error) {
	if st.explicitVR {
		s, err := src.ReadString(2)
		if err != nil {
			return dicomvr.UNKNOWN, newDecodeError(Truncated, tag, src.Tell(), err)
		}
		vr, ok := dicomvr.Parse(s)
		if !ok {
			return dicomvr.UNKNOWN, newDecodeError(InvalidVR, tag, src.Tell(), fmt.Errorf("unrecognized VR code %q", s))
		}
		return vr, nil
	}

	if tag.Element == 0 {
		return dicomvr.UL, nil
	}
	entry, err := dicomtag.Find(tag)
	if err != nil {
		return dicomvr.UNKNOWN, newDecodeError(PrivateImplicit, tag, src.Tell(), err)
	}
	vr, ok := dicomvr.Parse(entry.VR)
	if !ok {
		return dicomvr.UNKNOWN, newDecodeError(InvalidVR, tag, src.Tell(), fmt.Errorf("dictionary VR %q unrecognized", entry.VR))
	}
	return vr, nil
}

// readValueLength returns the decoded value length and the number of wire
// bytes consumed to obtain it (2 for implicit is wrong — implicit VR always
// reads a 4-byte length; explicit VR reads a 2-byte length, plus a further
// 4-byte length whenever the initial 2 bytes were zero-filler on a
// long-form VR).
func readValueLength(src *dicomio.Reader, st *decodeState, vr dicomvr.VR) (length uint32, consumed int, err error) {
	if !st.explicitVR {
		v, err := readUint32(src, st)
		if err != nil {
			return 0, 0, newDecodeError(Truncated, dicomtag.Tag{}, src.Tell(), err)
		}
		return v, 4, nil
	}

	vl16, err := readUint16(src, st)
	if err != nil {
		return 0, 0, newDecodeError(Truncated, dicomtag.Tag{}, src.Tell(), err)
	}
	if vl16 != 0 {
		return uint32(vl16), 2, nil
	}
	if vr.IsLongForm() {
		v, err := readUint32(src, st)
		if err != nil {
			return 0, 2, newDecodeError(Truncated, dicomtag.Tag{}, src.Tell(), err)
		}
		return v, 6, nil
	}
	return 0, 2, nil
}

// readTag reads a 4-byte Tag as two endian-aware uint16 halves (spec §4.4.5).
func readTag(src *dicomio.Reader, st *decodeState) (dicomtag.Tag, error) {
	group, err := readUint16(src, st)
	if err != nil {
		return dicomtag.Tag{}, err
	}
	elem, err := readUint16(src, st)
	if err != nil {
		return dicomtag.Tag{}, err
	}
	return dicomtag.Tag{Group: group, Element: elem}, nil
}

// readUint16 / readUint32 always read little-endian wire bytes, then swap to
// host order iff the current stream endian differs from platform endian
// (spec §4.4.5).
func readUint16(src *dicomio.Reader, st *decodeState) (uint16, error) {
	v, err := src.ReadUint16LE()
	if err != nil {
		return 0, err
	}
	if needsSwap(st.endian) {
		v = swap16(v)
	}
	return v, nil
}

func readUint32(src *dicomio.Reader, st *decodeState) (uint32, error) {
	v, err := src.ReadUint32LE()
	if err != nil {
		return 0, err
	}
	if needsSwap(st.endian) {
		v = swap32(v)
	}
	return v, nil
}

func needsSwap(streamEndian binary.ByteOrder) bool {
	return streamEndian != dicomio.NativeByteOrder()
}

func swap16(v uint16) uint16 {
	return v<<8 | v>>8
}

func swap32(v uint32) uint32 {
	return v<<24 | (v&0xFF00)<<8 | (v&0xFF0000)>>8 | v>>24
}

// probeExplicitVR peeks the 2 bytes following a tag to decide whether the
// stream is explicit-VR, without consuming anything (spec §4.4.1 step 3,
// §4.4.4).
func probeExplicitVR(src *dicomio.Reader) (bool, error) {
	b, err := src.ReadBytes(6)
	if err != nil {
		// Restore whatever partial read occurred before surfacing the error.
		_ = src.UndoRead(len(b))
		return false, err
	}
	if err := src.UndoRead(6); err != nil {
		return false, err
	}
	_, ok := dicomvr.Parse(string(b[4:6]))
	return ok, nil
}

// probeEndian peeks the next 4 bytes and decides the stream's encoding by
// looking both byte-order interpretations up in the tag dictionary (spec
// §4.4.3). It uses dicomtag.LinearFind rather than Find because Find
// synthesizes a generic Group Length entry for any even-group element-0
// tag, which would defeat the "neither interpretation is a known tag"
// branch this heuristic depends on.
func probeEndian(src *dicomio.Reader) (binary.ByteOrder, error) {
	b, err := src.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	if err := src.UndoRead(4); err != nil {
		return nil, err
	}

	group := binary.LittleEndian.Uint16(b[0:2])
	elem := binary.LittleEndian.Uint16(b[2:4])
	tagL := dicomtag.Tag{Group: group, Element: elem}
	tagB := tagL.SwapBytes()

	_, foundL := dicomtag.LinearFind(tagL)
	_, foundB := dicomtag.LinearFind(tagB)

	groupHeuristic := func() binary.ByteOrder {
		if tagL.Group > 0xFF && tagB.Group <= 0xFF {
			return binary.BigEndian
		}
		return binary.LittleEndian
	}

	switch {
	case !foundL && !foundB:
		if elem == 0 {
			return groupHeuristic(), nil
		}
		return binary.LittleEndian, nil
	case !foundL:
		return binary.BigEndian, nil
	case !foundB:
		return binary.LittleEndian, nil
	default:
		return groupHeuristic(), nil
	}
}
