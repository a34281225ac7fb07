package dicom

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/odincare/dcmlite/dicomtag"
	"github.com/odincare/dcmlite/dicomvr"
)

// Query checks whether ds satisfies the C-FIND-style match condition
// described by filter (PS3.4 §C.2.2.2). A filter whose value is empty, or
// is an all-"*" glob, is a universal match. On a match, the matched element
// (nil if the tag was absent and the filter was itself universal) is
// returned alongside ok=true.
func Query(ds *Element, filter *Element) (ok bool, matched *Element, err error) {
	if filter.Tag == dicomtag.QueryRetrieveLevel || filter.Tag == dicomtag.SpecificCharacterSet {
		return true, nil, nil
	}

	elem := ds.Get(filter.Tag)

	match, err := queryElement(elem, filter)
	if err != nil {
		return false, nil, err
	}
	if !match {
		return false, nil, nil
	}
	return true, elem, nil
}

func queryElement(elem *Element, filter *Element) (bool, error) {
	if isUniversalMatch(filter) {
		return true, nil
	}

	if filter.VR == dicomvr.SQ {
		// Sequence matching (PS3.4 C.2.2.2.3, nested item matching) is not
		// implemented; treat any non-universal SQ filter as a pass-through
		// match, matching the teacher's querySequence stub.
		return true, nil
	}

	if elem == nil {
		return false, nil
	}

	if filter.VR != elem.VR {
		return false, fmt.Errorf("dicom: query VR mismatch on %s: filter %s, element %s", filter.Tag, filter.VR, elem.VR)
	}

	if filter.VR == dicomvr.UI {
		want, ok := filter.AsString()
		if !ok {
			return false, nil
		}
		got, ok := elem.AsString()
		return ok && got == want, nil
	}

	switch filter.VR {
	case dicomvr.US, dicomvr.SS:
		want, ok := filter.AsUint16()
		if !ok {
			return false, nil
		}
		got, ok := elem.AsUint16()
		return ok && got == want, nil
	case dicomvr.UL, dicomvr.SL, dicomvr.AT:
		want, ok := filter.AsUint32()
		if !ok {
			return false, nil
		}
		got, ok := elem.AsUint32()
		return ok && got == want, nil
	case dicomvr.FL:
		want, ok := filter.AsFloat32()
		if !ok {
			return false, nil
		}
		got, ok := elem.AsFloat32()
		return ok && got == want, nil
	case dicomvr.FD:
		want, ok := filter.AsFloat64()
		if !ok {
			return false, nil
		}
		got, ok := elem.AsFloat64()
		return ok && got == want, nil
	default:
		pattern, ok := filter.AsString()
		if !ok {
			return false, fmt.Errorf("dicom: query filter %s has no decodable value", filter.Tag)
		}
		value, ok := elem.AsString()
		if !ok {
			return false, nil
		}
		return matchString(pattern, value)
	}
}

// matchString evaluates a PS3.4 wildcard pattern ('*' any run, '?' single
// char) against value using github.com/gobwas/glob.
func matchString(pattern, value string) (bool, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("dicom: invalid query pattern %q: %w", pattern, err)
	}
	return g.Match(value), nil
}

// isUniversalMatch reports whether filter expresses "match anything": no
// buffer, an empty string, or a glob pattern made entirely of '*' (PS3.4
// §C.2.2.2.4).
func isUniversalMatch(filter *Element) bool {
	if len(filter.Buffer) == 0 {
		return true
	}
	switch filter.VR {
	case dicomvr.SQ:
		return false
	default:
		s, ok := filter.AsString()
		if !ok {
			return false
		}
		if s == "" {
			return true
		}
		return isAllGlobStar(s)
	}
}

func isAllGlobStar(s string) bool {
	return s == strings.Repeat("*", len(s))
}
