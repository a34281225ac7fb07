package dicom

import (
	"fmt"

	"github.com/odincare/dcmlite/dicomio"
	"github.com/odincare/dcmlite/dicomtag"
	"github.com/odincare/dcmlite/dicomvr"
)

// WriteFileHeader writes the 128-byte preamble, the "DICM" magic, and the
// File Meta Information group (0002,xxxx), always explicit-VR little-endian
// per PS3.10 §7.1, regardless of the main dataset's encoding. meta must
// contain only Tag.Group == dicomtag.MetadataGroup elements; at minimum a
// TransferSyntaxUID is expected by downstream readers, though this function
// does not itself require one (full dataset writing beyond the file-meta
// group is out of scope).
func WriteFileHeader(w *dicomio.Writer, meta []*Element) error {
	body := dicomio.NewBytesWriter()
	for _, elem := range meta {
		if elem.Tag.Group != dicomtag.MetadataGroup {
			return fmt.Errorf("dicom: WriteFileHeader: %s is not in the File Meta group", elem.Tag)
		}
		if err := writeElement(body, elem); err != nil {
			return err
		}
	}
	if err := body.Error(); err != nil {
		return err
	}
	metaBytes := body.Bytes()

	w.WriteZeros(128)
	w.WriteString("DICM")

	groupLength := &Element{
		Tag:    dicomtag.FileMetaInformationGroupLength,
		VR:     dicomvr.UL,
		Length: 4,
		Buffer: encodeUint32LE(uint32(len(metaBytes))),
	}
	if err := writeElement(w, groupLength); err != nil {
		return err
	}
	w.WriteBytes(metaBytes)
	return w.Error()
}

// writeElement writes one element's Tag|VR|Length|Value framing, explicit-VR
// little-endian, matching the File Meta group's fixed encoding.
func writeElement(w *dicomio.Writer, elem *Element) error {
	w.WriteUint16LE(elem.Tag.Group)
	w.WriteUint16LE(elem.Tag.Element)
	w.WriteString(elem.VR.String())

	if elem.VR.IsLongForm() {
		w.WriteZeros(2)
		w.WriteUint32LE(elem.Length)
	} else {
		w.WriteUint16LE(uint16(elem.Length))
	}
	w.WriteBytes(elem.Buffer)
	return w.Error()
}

func encodeUint32LE(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}
