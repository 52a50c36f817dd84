// Package mtr is a CPU-cycle microbenchmark study engine.
//
// Callers insert tagged closures into a Set, then run a Query against
// it to select, time, group, transpose, and compare the results. The
// engine measures elapsed processor cycles per closure invocation; it
// does not parse CLI flags, generate closures, or render tables — those
// are left to the caller.
package mtr

import "sort"

// Label is the capability contract a caller's tag enumeration must
// satisfy to be used with this package. It plays the role Rust's
// `Label` trait plays in the original implementation this engine is
// modeled on: a totally ordered, hashable, default-able, displayable
// tag, optionally carrying an integer payload that distinguishes
// parametric labels (Len(16), Threads(4)) from plain ones (Array,
// Read).
//
// L is self-referential (Label[L] is satisfied by L itself) because
// Go methods cannot introduce their own type parameters; this is the
// same pattern used by constraints like sort.Interface's generic
// successors.
type Label[L any] interface {
	comparable
	String() string

	// Less reports whether the receiver sorts before other. Used to
	// order Run and Grp results when a Query names a sort label.
	Less(other L) bool

	// KindEq reports whether the receiver and other are the same
	// label "variant", ignoring any payload. It stands in for Rust's
	// mem::discriminant comparison: Len(16).KindEq(Len(32)) is true,
	// Len(16).KindEq(Array) is false.
	KindEq(other L) bool

	// Payload returns the label's integer payload, if it has one.
	// Plain labels (Array, Read) return (0, false).
	Payload() (value uint32, ok bool)
}

// canonicalize returns a sorted, adjacent-deduplicated copy of lbls.
// Canonical form is what makes two logically-equal tag lists compare
// equal and hash the same way once used as map keys.
func canonicalize[L Label[L]](lbls []L) []L {
	out := append([]L(nil), lbls...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return dedupSorted(out)
}

// mergeSorted merges two already-arbitrary label lists into one
// canonical (sorted, deduplicated) list.
func mergeSorted[L Label[L]](a, b []L) []L {
	out := make([]L, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return dedupSorted(out)
}

func dedupSorted[L Label[L]](sorted []L) []L {
	if len(sorted) == 0 {
		return sorted
	}
	out := sorted[:1]
	for _, v := range sorted[1:] {
		if out[len(out)-1] != v {
			out = append(out, v)
		}
	}
	return out
}

// findKind returns the label in lbls whose kind matches want, if any.
// This is the Go analogue of the original's mem::discriminant-based
// `find`.
func findKind[L Label[L]](lbls []L, want L) (L, bool) {
	for _, l := range lbls {
		if l.KindEq(want) {
			return l, true
		}
	}
	var zero L
	return zero, false
}

// cloneExceptKind returns a copy of lbls with the first label whose
// kind matches drop removed.
func cloneExceptKind[L Label[L]](lbls []L, drop L) []L {
	out := make([]L, 0, len(lbls))
	removed := false
	for _, l := range lbls {
		if !removed && l.KindEq(drop) {
			removed = true
			continue
		}
		out = append(out, l)
	}
	return out
}

// joinLabels renders a label list as a separator-joined string, used
// for both error context strings and Grp/Ser names.
func joinLabels[L Label[L]](lbls []L, sep string) string {
	if sep == "" {
		sep = ","
	}
	s := ""
	for i, l := range lbls {
		if i > 0 {
			s += sep
		}
		s += l.String()
	}
	return s
}

// sortByKind sorts dats in place by the element of each tag list whose
// kind matches sortLabel, falling back to the label type's zero value
// when a Dat's tags don't carry that kind. The sort is stable with
// respect to insertion order when keys compare equal.
func sortByKind[L Label[L], T any](items []T, tagsOf func(T) []L, sortLabel L) {
	sort.SliceStable(items, func(i, j int) bool {
		ki, okI := findKind(tagsOf(items[i]), sortLabel)
		kj, okJ := findKind(tagsOf(items[j]), sortLabel)
		if !okI {
			var zero L
			ki = zero
		}
		if !okJ {
			var zero L
			kj = zero
		}
		return ki.Less(kj)
	})
}
