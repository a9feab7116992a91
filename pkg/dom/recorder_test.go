package dom

import (
	"testing"

	"github.com/vango-dev/vbind/pkg/reactive"
)

func TestRecorderForwardsAndEmits(t *testing.T) {
	doc := NewDocument()
	var b Batcher
	f := NewRecordingFactory(doc, b.Add)

	parent := NewElement(f, "div")
	child := NewElement(f, "span")
	parent.Append(child)
	parent.Mount(f)

	w := reactive.NewCell("1px")
	BindStyle(parent, widthEntry, w)
	BindText(child, reactive.Static("hi"))
	w.Set("")

	batch, ok := b.Flush()
	if !ok || batch.Seq != 1 {
		t.Fatalf("Flush = %v, %v", batch.Seq, ok)
	}
	want := []Patch{
		{Op: PatchCreateNode, HID: "h1", Key: "div"},
		{Op: PatchCreateNode, HID: "h2", Key: "span"},
		{Op: PatchInsertNode, HID: "h2", ParentID: "h1"},
		{Op: PatchInsertNode, HID: "h1"},
		{Op: PatchSetStyle, HID: "h1", Key: "width", Value: "1px"},
		{Op: PatchSetText, HID: "h2", Value: "hi"},
		{Op: PatchRemoveStyle, HID: "h1", Key: "width"},
	}
	if len(batch.Patches) != len(want) {
		t.Fatalf("got %d patches, want %d: %+v", len(batch.Patches), len(want), batch.Patches)
	}
	for i := range want {
		if batch.Patches[i] != want[i] {
			t.Errorf("patch %d = %+v, want %+v", i, batch.Patches[i], want[i])
		}
	}

	if got := doc.String(); got != "<div><span>hi</span></div>" {
		t.Errorf("inner document = %q", got)
	}
	if _, ok := b.Flush(); ok {
		t.Error("second Flush returned a batch")
	}
}

func TestBatchEncoding(t *testing.T) {
	in := PatchBatch{Seq: 7, Patches: []Patch{
		{Op: PatchSetAttr, HID: "h3", Key: "title", Value: "x"},
		{Op: PatchRemoveAttr, HID: "h3", Key: "hidden"},
	}}
	data, err := in.Encode()
	if err != nil {
		t.Fatal(err)
	}
	out, err := DecodeBatch(data)
	if err != nil {
		t.Fatal(err)
	}
	if out.Seq != 7 || len(out.Patches) != 2 || out.Patches[1] != in.Patches[1] {
		t.Errorf("decoded = %+v", out)
	}
}

func TestHIDOf(t *testing.T) {
	doc := NewDocument()
	s := doc.CreateElement("div")
	r := NewRecorder(s, "outer", func(Patch) {})
	if HIDOf(s) != "h1" {
		t.Errorf("HIDOf(memory) = %q", HIDOf(s))
	}
	if HIDOf(r) != "outer" {
		t.Errorf("HIDOf(recorder) = %q", HIDOf(r))
	}
	if HIDOf(nil) != "" {
		t.Error("HIDOf(nil) should be empty")
	}
}
