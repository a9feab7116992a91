package main

import (
	"errors"
	"strings"
	"testing"

	vberrors "github.com/vango-dev/vbind/internal/errors"
	"github.com/vango-dev/vbind/pkg/dom"
)

func TestRenderDemoHTML(t *testing.T) {
	data, ext, err := renderDemo("html", 2)
	if err != nil {
		t.Fatalf("renderDemo: %v", err)
	}
	if ext != ".html" {
		t.Errorf("ext = %q", ext)
	}
	if !strings.Contains(string(data), "tick 2") {
		t.Errorf("render missing step count:\n%s", data)
	}
}

func TestRenderDemoMsgpack(t *testing.T) {
	data, ext, err := renderDemo("msgpack", 0)
	if err != nil {
		t.Fatalf("renderDemo: %v", err)
	}
	if ext != ".msgpack" {
		t.Errorf("ext = %q", ext)
	}
	batch, err := dom.DecodeBatch(data)
	if err != nil {
		t.Fatalf("DecodeBatch: %v", err)
	}
	if !batch.Reset || len(batch.Patches) == 0 {
		t.Errorf("batch = reset %v with %d patches", batch.Reset, len(batch.Patches))
	}
}

func TestRenderDemoUnknownFormat(t *testing.T) {
	_, _, err := renderDemo("pdf", 0)
	if !errors.Is(err, vberrors.New("E141")) {
		t.Errorf("err = %v, want E141", err)
	}
}
