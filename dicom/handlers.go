package dicom

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"github.com/odincare/dcmlite/dicomio"
	"github.com/odincare/dcmlite/dicomlog"
	"github.com/odincare/dcmlite/dicomtag"
)

// applySpecificCharacterSet inspects e: if it is a SpecificCharacterSet
// (0008,0005) element, it parses the (possibly backslash-separated, PS3.5
// §6.1.2.1) value and installs the resulting CodingSystem on root, so every
// PN/LO/... string decoded afterward honors it. Elements already attached
// to the tree keep whatever coding system was in effect when they were
// added; DICOM requires SpecificCharacterSet to precede the values it
// governs, so this is the ordering a conforming file produces.
func applySpecificCharacterSet(root *Element, e *Element) {
	if e.Tag != dicomtag.SpecificCharacterSet {
		return
	}
	raw, ok := e.AsString()
	if !ok {
		return
	}
	names := strings.Split(raw, "\\")
	cs, err := dicomio.ParseSpecificCharacterSet(names)
	if err != nil {
		dicomlog.Vprintf(1, "dicom: ignoring unrecognized SpecificCharacterSet %q: %v", raw, err)
		return
	}
	root.SetCodingSystem(cs)
}

// Handler is the capability set the decoder dispatches parse events to (C7).
// The decoder owns no constructed elements: OnElementEnd and
// OnSeqElementEnd transfer ownership of the newly built node to the
// handler, which decides whether to attach it to a target tree, print it,
// or discard it. OnElementStart returning false skips construction of that
// element entirely (the wire bytes are still consumed).
type Handler interface {
	ShouldStop() bool
	OnExplicitVR(explicit bool)
	OnEndian(endian binary.ByteOrder)
	OnElementStart(tag dicomtag.Tag) bool
	OnElementEnd(e *Element)
	OnSeqElementStart(ds *Element)
	OnSeqElementEnd(ds *Element)
}

// FullReadHandler retains every element, appending it to Root in file order
// (nested sequences attach their own children directly, since the decoder
// hands a *Element sequence node to OnSeqElementStart and expects children
// appended to it directly via Add during the recursive call).
type FullReadHandler struct {
	Root  *Element
	stack []*Element
}

// NewFullReadHandler returns a handler that builds its tree under root.
func NewFullReadHandler(root *Element) *FullReadHandler {
	return &FullReadHandler{Root: root, stack: []*Element{root}}
}

func (h *FullReadHandler) top() *Element {
	return h.stack[len(h.stack)-1]
}

func (h *FullReadHandler) ShouldStop() bool { return false }

func (h *FullReadHandler) OnExplicitVR(explicit bool) {
	h.Root.ExplicitVR = explicit
}

func (h *FullReadHandler) OnEndian(endian binary.ByteOrder) {
	h.Root.Endian = endian
}

func (h *FullReadHandler) OnElementStart(tag dicomtag.Tag) bool { return true }

func (h *FullReadHandler) OnElementEnd(e *Element) {
	h.top().Add(e)
	applySpecificCharacterSet(h.Root, e)
}

func (h *FullReadHandler) OnSeqElementStart(ds *Element) {
	h.top().Add(ds)
	h.stack = append(h.stack, ds)
}

func (h *FullReadHandler) OnSeqElementEnd(ds *Element) {
	h.stack = h.stack[:len(h.stack)-1]
}

// TagFilterHandler retains only elements whose tag is in Wanted, skipping
// construction of everything else. Once every wanted tag has been seen,
// ShouldStop reports true as an optimization (not required for correctness:
// the decoder may still be mid-sequence and will simply exit its current
// scope cleanly).
type TagFilterHandler struct {
	Root   *Element
	Wanted map[dicomtag.Tag]bool

	stack []*Element
	seen  map[dicomtag.Tag]bool
}

// NewTagFilterHandler returns a handler that retains only wanted tags,
// attaching matches under root.
func NewTagFilterHandler(root *Element, wanted []dicomtag.Tag) *TagFilterHandler {
	w := make(map[dicomtag.Tag]bool, len(wanted))
	for _, t := range wanted {
		w[t] = true
	}
	return &TagFilterHandler{Root: root, Wanted: w, stack: []*Element{root}, seen: map[dicomtag.Tag]bool{}}
}

func (h *TagFilterHandler) top() *Element {
	return h.stack[len(h.stack)-1]
}

func (h *TagFilterHandler) ShouldStop() bool {
	return len(h.seen) >= len(h.Wanted)
}

func (h *TagFilterHandler) OnExplicitVR(explicit bool) {
	h.Root.ExplicitVR = explicit
}

func (h *TagFilterHandler) OnEndian(endian binary.ByteOrder) {
	h.Root.Endian = endian
}

func (h *TagFilterHandler) OnElementStart(tag dicomtag.Tag) bool {
	return h.Wanted[tag]
}

func (h *TagFilterHandler) OnElementEnd(e *Element) {
	h.seen[e.Tag] = true
	h.top().Add(e)
	applySpecificCharacterSet(h.Root, e)
}

func (h *TagFilterHandler) OnSeqElementStart(ds *Element) {
	h.top().Add(ds)
	h.stack = append(h.stack, ds)
}

func (h *TagFilterHandler) OnSeqElementEnd(ds *Element) {
	h.stack = h.stack[:len(h.stack)-1]
}

// DumpHandler writes a textual rendering of each element to Out (defaulting
// to the process's dicomlog sink) as it is parsed; it retains nothing.
type DumpHandler struct {
	Out   io.Writer
	depth int
}

// NewDumpHandler returns a handler that writes to out, or through
// dicomlog at verbosity level 1 if out is nil.
func NewDumpHandler(out io.Writer) *DumpHandler {
	return &DumpHandler{Out: out}
}

func (h *DumpHandler) printf(format string, args ...interface{}) {
	if h.Out != nil {
		fmt.Fprintf(h.Out, format, args...)
		return
	}
	dicomlog.Vprintf(1, format, args...)
}

func (h *DumpHandler) ShouldStop() bool { return false }

func (h *DumpHandler) OnExplicitVR(explicit bool) {
	h.printf("explicit VR: %v\n", explicit)
}

func (h *DumpHandler) OnEndian(endian binary.ByteOrder) {
	h.printf("endian: %v\n", endian)
}

func (h *DumpHandler) OnElementStart(tag dicomtag.Tag) bool { return true }

func (h *DumpHandler) OnElementEnd(e *Element) {
	h.printf("%s%s %s len=%d\n", indent(h.depth), e.Tag, e.VR, e.Length)
}

func (h *DumpHandler) OnSeqElementStart(ds *Element) {
	h.printf("%s%s SQ\n", indent(h.depth), ds.Tag)
	h.depth++
}

func (h *DumpHandler) OnSeqElementEnd(ds *Element) {
	h.depth--
}

func indent(depth int) string {
	b := make([]byte, depth*2)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
