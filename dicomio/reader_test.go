package dicomio_test

import (
	"io"
	"testing"

	"github.com/odincare/dcmlite/dicomio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBytesAdvancesPosition(t *testing.T) {
	r := dicomio.NewBytesReader([]byte{1, 2, 3, 4, 5})
	b, err := r.ReadBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)
	assert.EqualValues(t, 3, r.Tell())
}

func TestUndoReadRewinds(t *testing.T) {
	r := dicomio.NewBytesReader([]byte{1, 2, 3, 4, 5})
	_, err := r.ReadBytes(4)
	require.NoError(t, err)
	require.NoError(t, r.UndoRead(2))
	assert.EqualValues(t, 2, r.Tell())
	b, err := r.ReadBytes(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4}, b)
}

func TestReadUint16LEAndUint32LE(t *testing.T) {
	r := dicomio.NewBytesReader([]byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})
	v16, err := r.ReadUint16LE()
	require.NoError(t, err)
	assert.EqualValues(t, 0x0201, v16)

	v32, err := r.ReadUint32LE()
	require.NoError(t, err)
	assert.EqualValues(t, 0x06050403, v32)
}

func TestReadBytesShortReadErrors(t *testing.T) {
	r := dicomio.NewBytesReader([]byte{1, 2})
	_, err := r.ReadBytes(4)
	require.Error(t, err)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestSeekAndTell(t *testing.T) {
	r := dicomio.NewBytesReader([]byte{1, 2, 3, 4, 5})
	require.NoError(t, r.Seek(2, io.SeekStart))
	assert.EqualValues(t, 2, r.Tell())
	b, err := r.ReadBytes(1)
	require.NoError(t, err)
	assert.Equal(t, []byte{3}, b)
}

func TestReadStringDefaultsToASCII(t *testing.T) {
	r := dicomio.NewBytesReader([]byte("ISO_IR 100"))
	s, err := r.ReadString(10)
	require.NoError(t, err)
	assert.Equal(t, "ISO_IR 100", s)
}
