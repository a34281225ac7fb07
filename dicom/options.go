package dicom

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/odincare/dcmlite/dicomtag"
)

// ReadOptions configures a decode pass. The zero value reads every element
// of every tag, equivalent to the teacher's full-read default.
type ReadOptions struct {
	// DropPixelData skips materializing the PixelData (7FE0,0010) buffer;
	// the element is still emitted with Length set but Buffer nil.
	DropPixelData bool

	// ReturnTags, if non-empty, restricts full-read decode to these tags
	// plus anything needed to reach them (sequence framing). Mutually
	// exclusive with StopAtTag.
	ReturnTags []dicomtag.Tag `validate:"excluded_with=StopAtTag"`

	// StopAtTag halts the decode as soon as this tag (at any depth) has
	// been delivered. Mutually exclusive with ReturnTags.
	StopAtTag *dicomtag.Tag `validate:"excluded_with=ReturnTags"`
}

var optionsValidator = validator.New()

// Validate checks ReadOptions's cross-field rules with
// go-playground/validator rather than hand-rolled if-chains: ReturnTags and
// StopAtTag express two different early-termination strategies and
// combining them has no defined meaning.
func (o ReadOptions) Validate() error {
	if err := optionsValidator.Struct(o); err != nil {
		return fmt.Errorf("dicom: invalid ReadOptions: %w", err)
	}
	return nil
}
