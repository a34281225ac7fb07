package dicom_test

import (
	"encoding/binary"
	"testing"

	"github.com/odincare/dcmlite/dicom"
	"github.com/odincare/dcmlite/dicomio"
	"github.com/odincare/dcmlite/dicomtag"
	"github.com/odincare/dcmlite/dicomvr"
	"github.com/stretchr/testify/assert"
)

func TestNewDataSetIsEmptySQRoot(t *testing.T) {
	ds := dicom.NewDataSet()
	assert.Equal(t, dicomvr.SQ, ds.VR)
	assert.EqualValues(t, dicom.UndefinedLength, ds.Length)
	assert.Empty(t, ds.Children)
}

func TestAddPanicsOnNonSQTarget(t *testing.T) {
	leaf := &dicom.Element{Tag: dicomtag.Tag{Group: 1, Element: 1}, VR: dicomvr.CS}
	assert.Panics(t, func() {
		leaf.Add(&dicom.Element{})
	})
}

func TestAsStringTrimsPadding(t *testing.T) {
	e := &dicom.Element{VR: dicomvr.CS, Buffer: []byte("CT \x00")}
	s, ok := e.AsString()
	assert.True(t, ok)
	assert.Equal(t, "CT", s)
}

func TestAsStringFailsForSQOrNilBuffer(t *testing.T) {
	sq := &dicom.Element{VR: dicomvr.SQ, Buffer: []byte("x")}
	_, ok := sq.AsString()
	assert.False(t, ok)

	empty := &dicom.Element{VR: dicomvr.CS}
	_, ok = empty.AsString()
	assert.False(t, ok)
}

func TestAsUint16RejectsWrongLength(t *testing.T) {
	e := &dicom.Element{VR: dicomvr.US, Endian: binary.LittleEndian, Buffer: []byte{1, 2, 3}}
	_, ok := e.AsUint16()
	assert.False(t, ok)
}

func TestAsUint16DecodesPerEndian(t *testing.T) {
	e := &dicom.Element{VR: dicomvr.US, Endian: binary.LittleEndian, Buffer: []byte{0x34, 0x12}}
	v, ok := e.AsUint16()
	assert.True(t, ok)
	assert.EqualValues(t, 0x1234, v)
}

func TestAsFloat32RoundTrips(t *testing.T) {
	e := &dicom.Element{VR: dicomvr.FL, Endian: binary.LittleEndian, Buffer: []byte{0x00, 0x00, 0x80, 0x3F}}
	v, ok := e.AsFloat32()
	assert.True(t, ok)
	assert.Equal(t, float32(1.0), v)
}

func TestGetReturnsNilForMissingChild(t *testing.T) {
	ds := dicom.NewDataSet()
	assert.Nil(t, ds.Get(dicomtag.Tag{Group: 9, Element: 9}))
	_, ok := ds.GetString(dicomtag.Tag{Group: 9, Element: 9})
	assert.False(t, ok)
}

func TestAddPropagatesCodingSystemToNewChildren(t *testing.T) {
	ds := dicom.NewDataSet()
	cs, err := dicomio.ParseSpecificCharacterSet([]string{"ISO_IR 100"})
	assert.NoError(t, err)
	ds.SetCodingSystem(cs)

	child := &dicom.Element{Tag: dicomtag.Tag{Group: 1, Element: 2}, VR: dicomvr.CS, Buffer: []byte("y")}
	ds.Add(child)

	s, ok := child.AsString()
	assert.True(t, ok)
	assert.Equal(t, "y", s)
}

type walkRecorder struct {
	sets, leaves int
}

func (w *walkRecorder) VisitDataSet(ds *dicom.Element)    { w.sets++ }
func (w *walkRecorder) VisitDataElement(e *dicom.Element) { w.leaves++ }

func TestWalkDataSetVisitsNestedSequences(t *testing.T) {
	ds := dicom.NewDataSet()
	leaf := &dicom.Element{Tag: dicomtag.Tag{Group: 1, Element: 1}, VR: dicomvr.CS, Buffer: []byte("x")}
	ds.Add(leaf)

	seq := &dicom.Element{Tag: dicomtag.Tag{Group: 2, Element: 1}, VR: dicomvr.SQ}
	ds.Add(seq)
	inner := &dicom.Element{Tag: dicomtag.Tag{Group: 3, Element: 1}, VR: dicomvr.CS, Buffer: []byte("y")}
	seq.Add(inner)

	var rec walkRecorder
	dicom.WalkDataSet(ds, &rec)
	assert.Equal(t, 1, rec.sets)
	assert.Equal(t, 2, rec.leaves)
}
