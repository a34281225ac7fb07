package dicomio

import (
	"fmt"

	"github.com/odincare/dcmlite/dicomlog"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// CodingSystem defines how raw element bytes decode into UTF-8 strings.
// DICOM's SpecificCharacterSet (PS3.5 §6.1.2.1) can name up to three
// component decoders used for the Alphabetic, Ideographic, and Phonetic
// representations of a PN (person name) value; every other VR uses only
// the Ideographic decoder.
type CodingSystem struct {
	Alphabetic  *encoding.Decoder
	Ideographic *encoding.Decoder
	Phonetic    *encoding.Decoder
}

// CodingSystemType selects which of a CodingSystem's component decoders to
// use; the distinction only matters for PN values.
type CodingSystemType int

const (
	AlphabeticCodingSystem CodingSystemType = iota
	IdeographicCodingSystem
	PhoneticCodingSystem
)

// htmlEncodingNames maps a DICOM-standard character set name (PS3.3 Annex
// C.12.1.1.2) to the golang.org/x/text/encoding/htmlindex name that
// decodes it. An empty value means 7-bit ASCII, the nil decoder.
var htmlEncodingNames = map[string]string{
	"":                "",
	"ISO 2022 IR 6":   "iso-8859-1",
	"ISO_IR 13":       "shift_jis",
	"ISO 2022 IR 13":  "shift_jis",
	"ISO_IR 100":      "iso-8859-1",
	"ISO 2022 IR 100": "iso-8859-1",
	"ISO_IR 101":      "iso-8859-2",
	"ISO 2022 IR 101": "iso-8859-2",
	"ISO_IR 109":      "iso-8859-3",
	"ISO 2022 IR 109": "iso-8859-3",
	"ISO_IR 110":      "iso-8859-4",
	"ISO 2022 IR 110": "iso-8859-4",
	"ISO_IR 126":      "iso-ir-126",
	"ISO 2022 IR 126": "iso-ir-126",
	"ISO_IR 127":      "iso-ir-127",
	"ISO 2022 IR 127": "iso-ir-127",
	"ISO_IR 138":      "iso-ir-138",
	"ISO 2022 IR 138": "iso-ir-138",
	"ISO_IR 144":      "iso-ir-144",
	"ISO 2022 IR 144": "iso-ir-144",
	"ISO_IR 148":      "iso-ir-148",
	"ISO 2022 IR 148": "iso-ir-148",
	"ISO 2022 IR 149": "euc-kr",
	"ISO 2022 IR 159": "iso-2022-jp",
	"ISO_IR 166":      "iso-ir-166",
	"ISO 2022 IR 166": "iso-ir-166",
	"ISO 2022 IR 87":  "iso-2022-jp",
	"ISO_IR 192":      "utf-8",
	"GB18030":         "utf-8",
}

// ParseSpecificCharacterSet resolves the names found in a
// SpecificCharacterSet element into a CodingSystem. An unrecognized name
// is reported as an error rather than silently falling back to utf-8, so
// callers can decide whether to proceed with the default 7-bit decoder.
func ParseSpecificCharacterSet(encodingNames []string) (CodingSystem, error) {
	var decoders []*encoding.Decoder

	for _, name := range encodingNames {
		var dec *encoding.Decoder
		dicomlog.Vprintf(1, "dicomio.ParseSpecificCharacterSet: using coding system %s", name)

		htmlName, ok := htmlEncodingNames[name]
		if !ok {
			return CodingSystem{}, fmt.Errorf("dicomio: unknown specific character set %q", name)
		}
		if htmlName != "" {
			enc, err := htmlindex.Get(htmlName)
			if err != nil {
				return CodingSystem{}, fmt.Errorf("dicomio: encoding %q (for %q) not registered: %w", htmlName, name, err)
			}
			dec = enc.NewDecoder()
		}

		decoders = append(decoders, dec)
	}

	switch len(decoders) {
	case 0:
		return CodingSystem{}, nil
	case 1:
		return CodingSystem{Alphabetic: decoders[0], Ideographic: decoders[0], Phonetic: decoders[0]}, nil
	case 2:
		return CodingSystem{Alphabetic: decoders[0], Ideographic: decoders[1], Phonetic: decoders[1]}, nil
	default:
		return CodingSystem{Alphabetic: decoders[0], Ideographic: decoders[1], Phonetic: decoders[2]}, nil
	}
}
