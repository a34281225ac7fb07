package dicom_test

import (
	"testing"

	"github.com/odincare/dcmlite/dicom"
	"github.com/odincare/dcmlite/dicomtag"
	"github.com/stretchr/testify/assert"
)

func TestReadOptionsZeroValueIsValid(t *testing.T) {
	assert.NoError(t, dicom.ReadOptions{}.Validate())
}

func TestReadOptionsRejectsReturnTagsAndStopAtTagTogether(t *testing.T) {
	tag := dicomtag.Tag{Group: 1, Element: 1}
	opts := dicom.ReadOptions{
		ReturnTags: []dicomtag.Tag{tag},
		StopAtTag:  &tag,
	}
	assert.Error(t, opts.Validate())
}

func TestReadOptionsAllowsReturnTagsAlone(t *testing.T) {
	tag := dicomtag.Tag{Group: 1, Element: 1}
	opts := dicom.ReadOptions{ReturnTags: []dicomtag.Tag{tag}}
	assert.NoError(t, opts.Validate())
}

func TestReadOptionsAllowsStopAtTagAlone(t *testing.T) {
	tag := dicomtag.Tag{Group: 1, Element: 1}
	opts := dicom.ReadOptions{StopAtTag: &tag}
	assert.NoError(t, opts.Validate())
}
