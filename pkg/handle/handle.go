// Package handle maps engine-owned objects to inert integer tokens for
// a host environment that cannot represent native pointers. Handles
// carry a slot index and a generation counter, so a handle that
// outlives its object is detected instead of silently resolving to
// whatever object reused the slot.
package handle

import "sync"

// Kind tags the object type a handle refers to. Resolving a handle
// with the wrong kind fails the same way a stale handle does.
type Kind uint8

const (
	KindWorkbook Kind = iota + 1
	KindWorksheet
	KindChartsheet
	KindChart
	KindSeries
	KindAxis
	KindErrorBars
	KindFormat
)

// Handle layout: low bits index the slot, high bits hold the
// generation. 20 index bits allow ~1M live objects, far beyond what a
// single workbook session creates.
const (
	indexBits = 20
	indexMask = 1<<indexBits - 1
)

type slot struct {
	value interface{}
	kind  Kind
	gen   uintptr
	live  bool
}

// Table issues and resolves handles. The zero value is ready to use.
// Safe for concurrent use; the host may call in from multiple threads.
type Table struct {
	mu    sync.RWMutex
	slots []slot
	free  []int
}

// Put registers value and returns its handle. Handle 0 is never
// issued: slot 0 is burned on first use so a zero handle, the host's
// conventional "null", always fails to resolve.
func (t *Table) Put(kind Kind, value interface{}) uintptr {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(t.slots) == 0 {
		t.slots = append(t.slots, slot{})
	}

	var idx int
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		t.slots = append(t.slots, slot{})
		idx = len(t.slots) - 1
	}

	s := &t.slots[idx]
	s.value = value
	s.kind = kind
	s.gen++
	s.live = true

	return s.gen<<indexBits | uintptr(idx)
}

// Get resolves a handle. It returns nil for handle 0, a stale
// generation, a recycled slot, or a kind mismatch.
func (t *Table) Get(kind Kind, h uintptr) interface{} {
	t.mu.RLock()
	defer t.mu.RUnlock()

	idx := int(h & indexMask)
	gen := h >> indexBits
	if idx == 0 || idx >= len(t.slots) {
		return nil
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen || s.kind != kind {
		return nil
	}
	return s.value
}

// Delete invalidates a handle and releases its slot for reuse. The
// slot's generation survives, so the old handle stays dead after
// reuse. Deleting an invalid handle is a no-op.
func (t *Table) Delete(h uintptr) {
	t.mu.Lock()
	defer t.mu.Unlock()

	idx := int(h & indexMask)
	gen := h >> indexBits
	if idx == 0 || idx >= len(t.slots) {
		return
	}
	s := &t.slots[idx]
	if !s.live || s.gen != gen {
		return
	}
	s.value = nil
	s.live = false
	t.free = append(t.free, idx)
}

// Len reports the number of live handles.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := 0
	for i := range t.slots {
		if t.slots[i].live {
			n++
		}
	}
	return n
}
