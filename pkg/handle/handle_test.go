package handle

import "testing"

func TestPutGet(t *testing.T) {
	var tbl Table

	type workbook struct{ name string }
	wb := &workbook{name: "report"}

	h := tbl.Put(KindWorkbook, wb)
	if h == 0 {
		t.Fatal("Put returned handle 0")
	}

	got := tbl.Get(KindWorkbook, h)
	if got != wb {
		t.Errorf("Get returned %v, want %v", got, wb)
	}
	if tbl.Len() != 1 {
		t.Errorf("Len = %d, want 1", tbl.Len())
	}
}

func TestZeroHandleNeverResolves(t *testing.T) {
	var tbl Table

	if got := tbl.Get(KindWorkbook, 0); got != nil {
		t.Errorf("Get(0) on empty table = %v, want nil", got)
	}

	tbl.Put(KindWorkbook, "first")
	if got := tbl.Get(KindWorkbook, 0); got != nil {
		t.Errorf("Get(0) after Put = %v, want nil", got)
	}
}

func TestKindMismatch(t *testing.T) {
	var tbl Table

	h := tbl.Put(KindChart, "chart")
	if got := tbl.Get(KindWorksheet, h); got != nil {
		t.Errorf("Get with wrong kind = %v, want nil", got)
	}
	if got := tbl.Get(KindChart, h); got != "chart" {
		t.Errorf("Get with right kind = %v, want chart", got)
	}
}

func TestDeleteInvalidates(t *testing.T) {
	var tbl Table

	h := tbl.Put(KindFormat, "bold")
	tbl.Delete(h)

	if got := tbl.Get(KindFormat, h); got != nil {
		t.Errorf("Get after Delete = %v, want nil", got)
	}
	if tbl.Len() != 0 {
		t.Errorf("Len after Delete = %d, want 0", tbl.Len())
	}

	// Deleting again must not corrupt the free list.
	tbl.Delete(h)
	if tbl.Len() != 0 {
		t.Errorf("Len after double Delete = %d, want 0", tbl.Len())
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	var tbl Table

	old := tbl.Put(KindSeries, "series1")
	tbl.Delete(old)

	// The freed slot is reused with a bumped generation.
	fresh := tbl.Put(KindSeries, "series2")
	if old == fresh {
		t.Fatal("reused slot produced an identical handle")
	}

	if got := tbl.Get(KindSeries, old); got != nil {
		t.Errorf("stale handle resolved to %v, want nil", got)
	}
	if got := tbl.Get(KindSeries, fresh); got != "series2" {
		t.Errorf("fresh handle = %v, want series2", got)
	}
}

func TestManyHandles(t *testing.T) {
	var tbl Table

	handles := make([]uintptr, 1000)
	for i := range handles {
		handles[i] = tbl.Put(KindFormat, i)
	}
	for i, h := range handles {
		if got := tbl.Get(KindFormat, h); got != i {
			t.Fatalf("handle %d resolved to %v, want %d", i, got, i)
		}
	}
	if tbl.Len() != 1000 {
		t.Errorf("Len = %d, want 1000", tbl.Len())
	}
}
