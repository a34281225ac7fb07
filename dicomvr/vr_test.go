package dicomvr_test

import (
	"testing"

	"github.com/odincare/dcmlite/dicomvr"
	"github.com/stretchr/testify/assert"
)

func TestParseRoundTrips(t *testing.T) {
	for code, want := range map[string]dicomvr.VR{
		"AE": dicomvr.AE, "CS": dicomvr.CS, "SQ": dicomvr.SQ,
		"ow": dicomvr.OW, " UI ": dicomvr.UI,
	} {
		got, ok := dicomvr.Parse(code)
		assert.True(t, ok, code)
		assert.Equal(t, want, got, code)
	}
}

func TestParseRejectsUnknownCode(t *testing.T) {
	_, ok := dicomvr.Parse("ZZ")
	assert.False(t, ok)
}

func TestIsLongForm(t *testing.T) {
	long := []dicomvr.VR{dicomvr.OB, dicomvr.OD, dicomvr.OF, dicomvr.OL, dicomvr.OW,
		dicomvr.SQ, dicomvr.UN, dicomvr.UC, dicomvr.UR, dicomvr.UT}
	for _, vr := range long {
		assert.True(t, vr.IsLongForm(), vr.String())
	}

	short := []dicomvr.VR{dicomvr.AE, dicomvr.CS, dicomvr.DA, dicomvr.US, dicomvr.UL, dicomvr.PN}
	for _, vr := range short {
		assert.False(t, vr.IsLongForm(), vr.String())
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, vr := range []dicomvr.VR{dicomvr.AE, dicomvr.SQ, dicomvr.UT} {
		parsed, ok := dicomvr.Parse(vr.String())
		assert.True(t, ok)
		assert.Equal(t, vr, parsed)
	}
}
