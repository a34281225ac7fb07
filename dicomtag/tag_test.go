package dicomtag_test

import (
	"testing"

	"github.com/odincare/dcmlite/dicomtag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareOrdersByGroupThenElement(t *testing.T) {
	a := dicomtag.Tag{Group: 0x0008, Element: 0x0005}
	b := dicomtag.Tag{Group: 0x0008, Element: 0x0060}
	c := dicomtag.Tag{Group: 0x0010, Element: 0x0000}

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, b.Compare(c))
}

func TestSwapBytesIsInvolution(t *testing.T) {
	tag := dicomtag.Tag{Group: 0x0008, Element: 0x0005}
	swapped := tag.SwapBytes()
	assert.NotEqual(t, tag, swapped)
	assert.Equal(t, tag, swapped.SwapBytes())
}

func TestFindMatchesLinearSearch(t *testing.T) {
	cases := []dicomtag.Tag{
		dicomtag.PixelData,
		dicomtag.TransferSyntaxUID,
		dicomtag.SpecificCharacterSet,
		{Group: 0x0010, Element: 0x0010}, // PatientName
		{Group: 0x9999, Element: 0x0001}, // not in dictionary
		{Group: 0x0018, Element: 0x0000}, // synthetic group length
	}
	for _, tag := range cases {
		bsEntry, bsErr := dicomtag.Find(tag)
		lsEntry, lsOK := dicomtag.LinearFind(tag)
		if lsOK {
			require.NoError(t, bsErr)
			assert.Equal(t, lsEntry, bsEntry)
		}
	}
}

func TestFindSynthesizesGroupLength(t *testing.T) {
	e, err := dicomtag.Find(dicomtag.Tag{Group: 0x0018, Element: 0x0000})
	require.NoError(t, err)
	assert.Equal(t, "UL", e.VR)
	assert.Equal(t, "GenericGroupLength", e.Name)
}

func TestFindUnknownPrivateTagErrors(t *testing.T) {
	_, err := dicomtag.Find(dicomtag.Tag{Group: 0x0009, Element: 0x0001})
	assert.Error(t, err)
}

func TestFindByName(t *testing.T) {
	e, err := dicomtag.FindByName("PatientID")
	require.NoError(t, err)
	assert.Equal(t, dicomtag.Tag{Group: 0x0010, Element: 0x0020}, e.Tag)

	_, err = dicomtag.FindByName("DoesNotExist")
	assert.Error(t, err)
}

func TestDebugString(t *testing.T) {
	assert.Equal(t, "(0010,0020)[PatientID]", dicomtag.DebugString(dicomtag.Tag{Group: 0x0010, Element: 0x0020}))
	assert.Equal(t, "(0009,0001)[private]", dicomtag.DebugString(dicomtag.Tag{Group: 0x0009, Element: 0x0001}))
	assert.Equal(t, "(0008,ffff)[??]", dicomtag.DebugString(dicomtag.Tag{Group: 0x0008, Element: 0xffff}))
}

func TestParseTagString(t *testing.T) {
	tag, err := dicomtag.ParseTagString("(0010,0020)")
	require.NoError(t, err)
	assert.Equal(t, dicomtag.Tag{Group: 0x0010, Element: 0x0020}, tag)

	_, err = dicomtag.ParseTagString("not-a-tag")
	assert.Error(t, err)
}

func TestIsPrivate(t *testing.T) {
	assert.True(t, dicomtag.IsPrivate(0x0009))
	assert.False(t, dicomtag.IsPrivate(0x0008))
}
