package mtr

import (
	"testing"

	"github.com/ehrlich-b/mtrstudy/mtrtest"
)

func TestCanonicalizeSortsAndDedupes(t *testing.T) {
	in := []mtrtest.Kind{mtrtest.Array, mtrtest.Alloc, mtrtest.Array, mtrtest.Len(16)}
	got := canonicalize(in)

	if len(got) != 3 {
		t.Fatalf("expected 3 canonical labels, got %d: %v", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Less(got[i-1]) {
			t.Fatalf("canonical labels not sorted: %v", got)
		}
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	in := []mtrtest.Kind{mtrtest.Vector, mtrtest.Alloc, mtrtest.Len(32)}
	once := canonicalize(in)
	twice := canonicalize(once)

	if len(once) != len(twice) {
		t.Fatalf("canonicalize not idempotent: once=%v twice=%v", once, twice)
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Fatalf("canonicalize not idempotent at %d: once=%v twice=%v", i, once, twice)
		}
	}
}

func TestCanonicalizePermutationsEqual(t *testing.T) {
	a := canonicalize([]mtrtest.Kind{mtrtest.Alloc, mtrtest.Array, mtrtest.Len(16)})
	b := canonicalize([]mtrtest.Kind{mtrtest.Len(16), mtrtest.Array, mtrtest.Alloc})

	if len(a) != len(b) {
		t.Fatalf("permutations canonicalized to different lengths: %v vs %v", a, b)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("permutations canonicalized unequal at %d: %v vs %v", i, a, b)
		}
	}
}

func TestFindKind(t *testing.T) {
	tags := []mtrtest.Kind{mtrtest.Alloc, mtrtest.Len(16)}

	if got, ok := findKind(tags, mtrtest.Len(0)); !ok || got != mtrtest.Len(16) {
		t.Fatalf("expected to find Len(16), got %v ok=%v", got, ok)
	}
	if _, ok := findKind(tags, mtrtest.Threads(0)); ok {
		t.Fatal("expected no Threads kind present")
	}
}

func TestCloneExceptKind(t *testing.T) {
	tags := []mtrtest.Kind{mtrtest.Alloc, mtrtest.Array, mtrtest.Len(16)}
	got := cloneExceptKind(tags, mtrtest.Len(0))

	for _, k := range got {
		if k.KindEq(mtrtest.Len(0)) {
			t.Fatalf("expected Len kind removed, got %v", got)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 remaining labels, got %d: %v", len(got), got)
	}
}

func TestJoinLabels(t *testing.T) {
	tags := []mtrtest.Kind{mtrtest.Alloc, mtrtest.Array}
	if got := joinLabels(tags, ","); got != "Alloc,Array" {
		t.Fatalf("unexpected join: %q", got)
	}
	if got := joinLabels(tags, ""); got != "Alloc,Array" {
		t.Fatalf("expected default separator, got %q", got)
	}
}

func TestSortByKind(t *testing.T) {
	type item struct {
		tags []mtrtest.Kind
	}
	items := []item{
		{tags: []mtrtest.Kind{mtrtest.Alloc, mtrtest.Len(64)}},
		{tags: []mtrtest.Kind{mtrtest.Alloc, mtrtest.Len(16)}},
		{tags: []mtrtest.Kind{mtrtest.Alloc, mtrtest.Len(32)}},
	}
	sortByKind(items, func(it item) []mtrtest.Kind { return it.tags }, mtrtest.Len(0))

	want := []uint32{16, 32, 64}
	for i, it := range items {
		lbl, ok := findKind(it.tags, mtrtest.Len(0))
		if !ok {
			t.Fatalf("at %d: expected a Len tag", i)
		}
		payload, _ := lbl.Payload()
		if payload != want[i] {
			t.Fatalf("at %d expected payload %d, got %d", i, want[i], payload)
		}
	}
}
