package dom

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText     PatchOp = 0x01 // Update text content
	PatchSetAttr     PatchOp = 0x02 // Set/update attribute
	PatchRemoveAttr  PatchOp = 0x03 // Remove attribute
	PatchInsertNode  PatchOp = 0x04 // Append node to parent
	PatchSetStyle    PatchOp = 0x05 // Set/update style property
	PatchRemoveStyle PatchOp = 0x06 // Remove style property
	PatchCreateNode  PatchOp = 0x07 // Create detached element
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchInsertNode:
		return "InsertNode"
	case PatchSetStyle:
		return "SetStyle"
	case PatchRemoveStyle:
		return "RemoveStyle"
	case PatchCreateNode:
		return "CreateNode"
	default:
		return "Unknown"
	}
}

// Patch represents a single DOM operation to apply.
type Patch struct {
	Op       PatchOp `msgpack:"o"`           // Operation type
	HID      string  `msgpack:"h"`           // Target element's hydration ID
	Key      string  `msgpack:"k,omitempty"` // Attribute/property name, or tag for CreateNode
	Value    string  `msgpack:"v,omitempty"` // New value
	ParentID string  `msgpack:"p,omitempty"` // Parent for InsertNode; empty means the document root
}

// PatchBatch is a group of patches sent together.
type PatchBatch struct {
	Seq     uint64  `msgpack:"s"`
	Patches []Patch `msgpack:"p"`

	// Reset batches rebuild the client's tree from scratch.
	Reset bool `msgpack:"r,omitempty"`
}

// Encode returns the msgpack encoding of the batch.
func (b PatchBatch) Encode() ([]byte, error) {
	return msgpack.Marshal(b)
}

// DecodeBatch decodes a batch produced by Encode.
func DecodeBatch(data []byte) (PatchBatch, error) {
	var b PatchBatch
	err := msgpack.Unmarshal(data, &b)
	return b, err
}

// Batcher accumulates patches until they are flushed.
// It is safe for concurrent use.
type Batcher struct {
	mu      sync.Mutex
	pending []Patch
	seq     uint64
}

// Add queues p. Its signature matches the emit callback of a Recorder.
func (b *Batcher) Add(p Patch) {
	b.mu.Lock()
	b.pending = append(b.pending, p)
	b.mu.Unlock()
}

// Len returns the number of queued patches.
func (b *Batcher) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Flush returns the queued patches as a numbered batch. It returns false when
// nothing is queued; sequence numbers are only consumed by non-empty batches.
func (b *Batcher) Flush() (PatchBatch, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) == 0 {
		return PatchBatch{}, false
	}
	b.seq++
	batch := PatchBatch{Seq: b.seq, Patches: b.pending}
	b.pending = nil
	return batch, true
}

// Seq returns the sequence number of the last flushed batch.
func (b *Batcher) Seq() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.seq
}
