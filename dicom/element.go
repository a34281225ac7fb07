// Package dicom implements a streaming DICOM (PS3.10) decoder: tag/VR/length
// framing, encoding auto-detection, sequence recursion, and a handler-dispatch
// protocol that decouples parsing from in-memory representation.
package dicom

import (
	"encoding/binary"
	"math"
	"strings"

	"github.com/odincare/dcmlite/dicomio"
	"github.com/odincare/dcmlite/dicomtag"
	"github.com/odincare/dcmlite/dicomvr"
)

// UndefinedLength marks a length-prefixed field as delimiter-terminated
// rather than byte-counted, per PS3.5 §7.1.1.
const UndefinedLength = 0xFFFFFFFF

// Element is a parsed DICOM data element: a Tag/VR/Endian/Length quadruple
// plus an owned byte buffer (nil for SQ elements and delimiter markers, which
// carry no value of their own) and, for SQ elements, an ordered list of owned
// child elements. A root-level DataSet is simply an *Element with an empty
// Tag and VR == dicomvr.SQ; see NewDataSet.
type Element struct {
	Tag    dicomtag.Tag
	VR     dicomvr.VR
	Endian binary.ByteOrder
	Length uint32

	// Buffer holds the element's raw value bytes. Always nil for VR == SQ
	// and for the FFFE-group delimiter markers.
	Buffer []byte

	// Children holds this element's nested data set items. Non-nil only
	// when VR == dicomvr.SQ.
	Children []*Element

	// ExplicitVR records whether this element (or, for the root, the
	// dataset) was parsed under explicit-VR encoding. Meaningful mainly
	// on the root DataSet.
	ExplicitVR bool

	// codingSystem is the decoder used by AsString, copied from the parent
	// when the element is added. The built-in handlers install the coding
	// system of an observed SpecificCharacterSet (0008,0005) on the root
	// DataSet. Zero value decodes as 7-bit-clean ASCII/UTF-8.
	codingSystem dicomio.CodingSystem
}

// NewDataSet creates an empty root DataSet: an Element with an empty Tag,
// VR == SQ, and Length == UndefinedLength, matching PS3.10's "a DICOM file is
// a DataSet with an empty tag" framing.
func NewDataSet() *Element {
	return &Element{
		VR:     dicomvr.SQ,
		Length: UndefinedLength,
	}
}

// IsDelimiter reports whether e is one of the FFFE-group structural markers
// (item prefix, item delimiter, sequence delimiter) rather than a value-
// bearing element.
func (e *Element) IsDelimiter() bool {
	return e.Tag == dicomtag.SeqItemPrefix || e.Tag == dicomtag.SeqItemEnd || e.Tag == dicomtag.SeqEnd
}

// Add appends child to e's Children. Panics if e.VR != SQ, matching the
// invariant that only sequences (and the DataSet root) carry children.
func (e *Element) Add(child *Element) {
	if e.VR != dicomvr.SQ {
		panic("dicom: Add called on a non-SQ element")
	}
	child.codingSystem = e.codingSystem
	e.Children = append(e.Children, child)
}

// Get returns the first direct child whose Tag matches, or nil. Lookup is a
// linear scan, per spec: DataSet ordering is small enough that a dictionary
// index isn't worth the bookkeeping.
func (e *Element) Get(tag dicomtag.Tag) *Element {
	for _, c := range e.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// At returns the i'th direct child, or nil if i is out of range.
func (e *Element) At(i int) *Element {
	if i < 0 || i >= len(e.Children) {
		return nil
	}
	return e.Children[i]
}

// GetBuffer looks up tag among e's children and returns its raw buffer.
func (e *Element) GetBuffer(tag dicomtag.Tag) ([]byte, bool) {
	c := e.Get(tag)
	if c == nil {
		return nil, false
	}
	return c.Buffer, true
}

// GetString looks up tag and decodes it as a string.
func (e *Element) GetString(tag dicomtag.Tag) (string, bool) {
	c := e.Get(tag)
	if c == nil {
		return "", false
	}
	return c.AsString()
}

// GetUint16 looks up tag and decodes it as a uint16.
func (e *Element) GetUint16(tag dicomtag.Tag) (uint16, bool) {
	c := e.Get(tag)
	if c == nil {
		return 0, false
	}
	return c.AsUint16()
}

// GetUint32 looks up tag and decodes it as a uint32.
func (e *Element) GetUint32(tag dicomtag.Tag) (uint32, bool) {
	c := e.Get(tag)
	if c == nil {
		return 0, false
	}
	return c.AsUint32()
}

// GetInt16 looks up tag and decodes it as an int16.
func (e *Element) GetInt16(tag dicomtag.Tag) (int16, bool) {
	c := e.Get(tag)
	if c == nil {
		return 0, false
	}
	return c.AsInt16()
}

// GetInt32 looks up tag and decodes it as an int32.
func (e *Element) GetInt32(tag dicomtag.Tag) (int32, bool) {
	c := e.Get(tag)
	if c == nil {
		return 0, false
	}
	return c.AsInt32()
}

// GetFloat32 looks up tag and decodes it as a float32.
func (e *Element) GetFloat32(tag dicomtag.Tag) (float32, bool) {
	c := e.Get(tag)
	if c == nil {
		return 0, false
	}
	return c.AsFloat32()
}

// GetFloat64 looks up tag and decodes it as a float64.
func (e *Element) GetFloat64(tag dicomtag.Tag) (float64, bool) {
	c := e.Get(tag)
	if c == nil {
		return 0, false
	}
	return c.AsFloat64()
}

// SetCodingSystem overrides the decoder AsString uses for this element and
// any children added afterward, following an observed SpecificCharacterSet.
func (e *Element) SetCodingSystem(cs dicomio.CodingSystem) {
	e.codingSystem = cs
}

// AsString decodes Buffer as text, honoring the element's coding system, and
// trims DICOM's trailing space/NUL padding (PS3.5 §6.2).
func (e *Element) AsString() (string, bool) {
	if e.VR == dicomvr.SQ || e.Buffer == nil {
		return "", false
	}
	dec := e.codingSystem.Ideographic
	var s string
	if dec == nil {
		s = string(e.Buffer)
	} else {
		decoded, err := dec.Bytes(e.Buffer)
		if err != nil {
			return "", false
		}
		s = string(decoded)
	}
	return strings.TrimRight(s, " \x00"), true
}

// AsUint16 decodes Buffer as a single little/big-endian (per Endian) uint16.
func (e *Element) AsUint16() (uint16, bool) {
	if len(e.Buffer) != 2 || e.Endian == nil {
		return 0, false
	}
	return e.Endian.Uint16(e.Buffer), true
}

// AsUint32 decodes Buffer as a single uint32.
func (e *Element) AsUint32() (uint32, bool) {
	if len(e.Buffer) != 4 || e.Endian == nil {
		return 0, false
	}
	return e.Endian.Uint32(e.Buffer), true
}

// AsInt16 decodes Buffer as a signed 16-bit integer.
func (e *Element) AsInt16() (int16, bool) {
	v, ok := e.AsUint16()
	if !ok {
		return 0, false
	}
	return int16(v), true
}

// AsInt32 decodes Buffer as a signed 32-bit integer.
func (e *Element) AsInt32() (int32, bool) {
	v, ok := e.AsUint32()
	if !ok {
		return 0, false
	}
	return int32(v), true
}

// AsFloat32 decodes Buffer as an IEEE-754 single-precision float.
func (e *Element) AsFloat32() (float32, bool) {
	v, ok := e.AsUint32()
	if !ok {
		return 0, false
	}
	return math.Float32frombits(v), true
}

// AsFloat64 decodes Buffer as an IEEE-754 double-precision float.
func (e *Element) AsFloat64() (float64, bool) {
	if len(e.Buffer) != 8 || e.Endian == nil {
		return 0, false
	}
	return math.Float64frombits(e.Endian.Uint64(e.Buffer)), true
}

// Accept implements the read-side Visitor capability: leaves are dispatched
// to VisitDataElement; sequences (and the root DataSet) are dispatched to
// VisitDataSet, which is then responsible for visiting its own children —
// this mirrors the teacher's Accept/VisitDataSet pairing, where the visitor,
// not the tree, drives recursion.
func (e *Element) Accept(v Visitor) {
	if e.VR == dicomvr.SQ {
		v.VisitDataSet(e)
		return
	}
	v.VisitDataElement(e)
}

// Visitor is the sole read-side polymorphism over an assembled DataSet tree.
// Implementations that accumulate state across the tree are responsible for
// their own re-entrancy.
type Visitor interface {
	VisitDataSet(ds *Element)
	VisitDataElement(e *Element)
}

// WalkDataSet visits every node of ds in file order: each direct child is
// dispatched via Accept, and nested sequences are walked recursively. This
// is the standard way to drive a Visitor across a whole tree in one call.
func WalkDataSet(ds *Element, v Visitor) {
	for _, child := range ds.Children {
		child.Accept(v)
		if child.VR == dicomvr.SQ {
			WalkDataSet(child, v)
		}
	}
}
