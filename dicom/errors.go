package dicom

import (
	"fmt"

	"github.com/odincare/dcmlite/dicomtag"
)

// ErrorKind classifies a decode failure, matching the diagnostic side
// channel a caller can inspect after Reader.ReadFile / ReadBytes returns
// false.
type ErrorKind int

const (
	// IoError reports a failure in the underlying byte stream.
	IoError ErrorKind = iota
	// NotDicom reports a missing "DICM" magic with no recoverable fallback.
	NotDicom
	// InvalidVR reports an explicit-VR code outside the known enumeration.
	InvalidVR
	// PrivateImplicit reports a private tag under implicit VR with no
	// extension dictionary to resolve it.
	PrivateImplicit
	// UndefinedLengthOnScalar reports a non-SQ element declared with
	// UndefinedLength, which is only legal for sequences.
	UndefinedLengthOnScalar
	// Truncated reports a value shorter than its declared length.
	Truncated
)

func (k ErrorKind) String() string {
	switch k {
	case IoError:
		return "IoError"
	case NotDicom:
		return "NotDicom"
	case InvalidVR:
		return "InvalidVR"
	case PrivateImplicit:
		return "PrivateImplicit"
	case UndefinedLengthOnScalar:
		return "UndefinedLengthOnScalar"
	case Truncated:
		return "Truncated"
	default:
		return "Unknown"
	}
}

// DecodeError reports a decode failure with enough context to locate it: the
// kind, the tag being processed (zero value if none), the byte offset it was
// encountered at, and the underlying cause.
type DecodeError struct {
	Kind   ErrorKind
	Tag    dicomtag.Tag
	Offset int64
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("dicom: %s at offset %d (tag %s): %v", e.Kind, e.Offset, e.Tag, e.Err)
	}
	return fmt.Sprintf("dicom: %s at offset %d (tag %s)", e.Kind, e.Offset, e.Tag)
}

// Unwrap exposes the underlying cause for errors.Is/errors.As.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Cause returns the underlying cause, or e itself if none was recorded —
// mirroring the pkg/errors-style Cause() accessor used elsewhere in the pack
// for chains that predate Go's native %w wrapping.
func (e *DecodeError) Cause() error {
	if e.Err != nil {
		return e.Err
	}
	return e
}

func newDecodeError(kind ErrorKind, tag dicomtag.Tag, offset int64, err error) *DecodeError {
	return &DecodeError{Kind: kind, Tag: tag, Offset: offset, Err: err}
}
