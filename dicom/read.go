package dicom

import (
	"github.com/odincare/dcmlite/dicomtag"
)

// ReadDataSetFromFile opens and fully decodes path, honoring opts, returning
// the root DataSet. This is the friendly entry point most callers want;
// Reader/Handler remain available for callers who need the lower-level
// event-driven protocol (e.g. a genuinely streaming consumer).
func ReadDataSetFromFile(path string, opts ReadOptions) (*Element, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	root := NewDataSet()
	r := newOptionReader(root, opts)
	if !r.ReadFile(path) {
		return root, r.LastError()
	}
	return root, nil
}

// ReadDataSetFromBytes is ReadDataSetFromFile for an in-memory buffer.
func ReadDataSetFromBytes(data []byte, opts ReadOptions) (*Element, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	root := NewDataSet()
	r := newOptionReader(root, opts)
	if !r.ReadBytes(data) {
		return root, r.LastError()
	}
	return root, nil
}

// newOptionReader builds the Reader + Handler stack implied by opts: a
// full-read or tag-filter build handler, decorated with a stop-at-tag
// early exit, with pixel-data dropping wired into the Reader itself.
func newOptionReader(root *Element, opts ReadOptions) *Reader {
	var h Handler
	if len(opts.ReturnTags) > 0 {
		h = NewTagFilterHandler(root, opts.ReturnTags)
	} else {
		h = NewFullReadHandler(root)
	}
	if opts.StopAtTag != nil {
		h = &stopAtTagHandler{Handler: h, target: *opts.StopAtTag}
	}
	r := NewReader(h)
	r.SetDropPixelData(opts.DropPixelData)
	return r
}

// stopAtTagHandler decorates a Handler so ShouldStop reports true once the
// given tag has been delivered, implementing ReadOptions.StopAtTag without
// any decoder-level special-casing.
type stopAtTagHandler struct {
	Handler
	target  dicomtag.Tag
	stopped bool
}

func (h *stopAtTagHandler) OnElementEnd(e *Element) {
	h.Handler.OnElementEnd(e)
	if e.Tag == h.target {
		h.stopped = true
	}
}

func (h *stopAtTagHandler) OnSeqElementEnd(ds *Element) {
	h.Handler.OnSeqElementEnd(ds)
	if ds.Tag == h.target {
		h.stopped = true
	}
}

func (h *stopAtTagHandler) ShouldStop() bool {
	return h.stopped || h.Handler.ShouldStop()
}
