package dom

import (
	"strconv"
	"sync/atomic"
)

// Recorder forwards writes to an inner sink and emits a Patch for each one.
type Recorder struct {
	inner Sink
	hid   string
	emit  func(Patch)
}

var _ Sink = (*Recorder)(nil)

// NewRecorder wraps inner. Patches are addressed to hid and passed to emit
// after the inner write.
func NewRecorder(inner Sink, hid string, emit func(Patch)) *Recorder {
	return &Recorder{inner: inner, hid: hid, emit: emit}
}

// Unwrap returns the inner sink.
func (r *Recorder) Unwrap() Sink { return r.inner }

// HID returns the ID patches are addressed to.
func (r *Recorder) HID() string { return r.hid }

func (r *Recorder) SetAttribute(name, value string) {
	r.inner.SetAttribute(name, value)
	r.emit(Patch{Op: PatchSetAttr, HID: r.hid, Key: name, Value: value})
}

func (r *Recorder) RemoveAttribute(name string) {
	r.inner.RemoveAttribute(name)
	r.emit(Patch{Op: PatchRemoveAttr, HID: r.hid, Key: name})
}

func (r *Recorder) SetStyleProperty(name, value string) {
	r.inner.SetStyleProperty(name, value)
	r.emit(Patch{Op: PatchSetStyle, HID: r.hid, Key: name, Value: value})
}

func (r *Recorder) RemoveStyleProperty(name string) {
	r.inner.RemoveStyleProperty(name)
	r.emit(Patch{Op: PatchRemoveStyle, HID: r.hid, Key: name})
}

func (r *Recorder) SetText(text string) {
	r.inner.SetText(text)
	r.emit(Patch{Op: PatchSetText, HID: r.hid, Value: text})
}

// AppendChild forwards to the inner sink when it is a Container.
func (r *Recorder) AppendChild(child Sink) {
	if c, ok := r.inner.(Container); ok {
		c.AppendChild(child)
	}
	r.emit(Patch{Op: PatchInsertNode, HID: HIDOf(child), ParentID: r.hid})
}

// RecordingFactory wraps every sink created by an inner factory in a
// Recorder and reports element creation and mounting.
type RecordingFactory struct {
	inner   Factory
	emit    func(Patch)
	counter atomic.Uint32
}

// NewRecordingFactory wraps inner.
func NewRecordingFactory(inner Factory, emit func(Patch)) *RecordingFactory {
	return &RecordingFactory{inner: inner, emit: emit}
}

// CreateElement creates an inner sink and wraps it. The inner hydration ID
// is reused when there is one.
func (f *RecordingFactory) CreateElement(tag string) Sink {
	s := f.inner.CreateElement(tag)
	hid := HIDOf(s)
	if hid == "" {
		hid = "r" + strconv.FormatUint(uint64(f.counter.Add(1)), 10)
	}
	f.emit(Patch{Op: PatchCreateNode, HID: hid, Key: tag})
	return NewRecorder(s, hid, f.emit)
}

// AppendChild mounts child at the top level.
func (f *RecordingFactory) AppendChild(child Sink) {
	if c, ok := f.inner.(Container); ok {
		c.AppendChild(child)
	}
	f.emit(Patch{Op: PatchInsertNode, HID: HIDOf(child)})
}

// Observer returns the inner factory's observer.
func (f *RecordingFactory) Observer() Observer {
	if p, ok := f.inner.(interface{ Observer() Observer }); ok {
		return p.Observer()
	}
	return nil
}
