package dicomio_test

import (
	"testing"

	"github.com/odincare/dcmlite/dicomio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpecificCharacterSetEmptyIsASCIIDefault(t *testing.T) {
	cs, err := dicomio.ParseSpecificCharacterSet(nil)
	require.NoError(t, err)
	assert.Nil(t, cs.Ideographic)
}

func TestParseSpecificCharacterSetSingleName(t *testing.T) {
	cs, err := dicomio.ParseSpecificCharacterSet([]string{"ISO_IR 100"})
	require.NoError(t, err)
	require.NotNil(t, cs.Ideographic)
	assert.Same(t, cs.Alphabetic, cs.Ideographic)
	assert.Same(t, cs.Ideographic, cs.Phonetic)
}

func TestParseSpecificCharacterSetRejectsUnknownName(t *testing.T) {
	_, err := dicomio.ParseSpecificCharacterSet([]string{"NOT-A-REAL-CHARSET"})
	assert.Error(t, err)
}

func TestParseSpecificCharacterSetTwoComponents(t *testing.T) {
	cs, err := dicomio.ParseSpecificCharacterSet([]string{"", "ISO 2022 IR 87"})
	require.NoError(t, err)
	assert.Nil(t, cs.Alphabetic)
	require.NotNil(t, cs.Ideographic)
}
