package mtr

import (
	"github.com/ehrlich-b/mtrstudy/internal/timer"
)

// wrapper pairs a tag set with a closure erased to the engine's
// uniform measurement signature.
type wrapper[L Label[L]] struct {
	tags []L
	fn   func() uint64
}

// Set is the root store: an inverted index from tags to closure ids
// plus the id-to-wrapper table. It is constructed once by the caller
// and treated as immutable during querying; insertion is the only
// mutating operation.
type Set[L Label[L]] struct {
	nextID      uint16
	tagToIDs    map[L]map[uint16]struct{}
	idToWrapper map[uint16]wrapper[L]

	// Metrics, if non-nil, receives engine activity counters for
	// every Query run against this Set.
	Metrics *StudyMetrics
}

// NewSet returns an empty closure store.
func NewSet[L Label[L]]() *Set[L] {
	return &Set[L]{
		tagToIDs:    make(map[L]map[uint16]struct{}),
		idToWrapper: make(map[uint16]wrapper[L]),
	}
}

func (s *Set[L]) insert(tags []L, fn func() uint64) error {
	if len(tags) == 0 {
		return newError("insert", ErrCodeMissingLabels, "parameter 'tags' is empty")
	}

	canon := canonicalize(tags)
	id := s.nextID

	for _, t := range canon {
		ids, ok := s.tagToIDs[t]
		if !ok {
			ids = make(map[uint16]struct{})
			s.tagToIDs[t] = ids
		}
		ids[id] = struct{}{}
	}

	s.idToWrapper[id] = wrapper[L]{tags: canon, fn: fn}
	s.nextID++
	return nil
}

// Insert registers an auto-timed closure under tags. The closure is
// invoked inside the optimization barrier and timed by the package's
// Timer; its return value is discarded after being sunk into the
// barrier. Insert is a free function, not a method, because Go
// methods cannot introduce a type parameter (O) beyond the
// receiver's own.
func Insert[L Label[L], O any](s *Set[L], tags []L, f func() O) error {
	fn := func() uint64 {
		start := timer.ReadStart()
		blackBox(f())
		return timer.ReadStop() - start
	}
	return s.insert(tags, fn)
}

// InsertManual registers a closure that brackets its own measured
// region with the shared Cell handle it receives, for benchmarks
// that need unmeasured setup (allocating randomized input, spinning
// up a worker pool) before the timed region begins.
func InsertManual[L Label[L], O any](s *Set[L], tags []L, f func(*timer.Cell) O) error {
	fn := func() uint64 {
		cell := &timer.Cell{}
		blackBox(f(cell))
		return cell.Elapsed()
	}
	return s.insert(tags, fn)
}

// Section is a scoped inserter that prepends a fixed, canonicalized
// tag prefix to every closure inserted through it. It holds a
// non-owning reference back to its parent Set.
type Section[L Label[L]] struct {
	tags []L
	set  *Set[L]
}

// Section returns a scoped inserter over tags, useful for appending
// a redundant prefix (e.g. {Alloc, Array}) to a batch of inserts.
func (s *Set[L]) Section(tags ...L) *Section[L] {
	return &Section[L]{tags: canonicalize(tags), set: s}
}

// InsertInto inserts an auto-timed closure through a Section,
// merging the section's prefix with the call's own tags.
func InsertInto[L Label[L], O any](sec *Section[L], tags []L, f func() O) error {
	return Insert(sec.set, mergeSorted(sec.tags, tags), f)
}

// InsertManualInto inserts a manual-timed closure through a Section.
func InsertManualInto[L Label[L], O any](sec *Section[L], tags []L, f func(*timer.Cell) O) error {
	return InsertManual(sec.set, mergeSorted(sec.tags, tags), f)
}

// Filter selects wrappers matching queryTags: the outer list is a
// disjunction, each inner list a conjunction. It reports false when
// the overall result is empty (the NoMatch condition — non-fatal by
// design, so callers branch on the bool rather than an error).
func (s *Set[L]) Filter(queryTags [][]L) (*Frm[L], bool) {
	frm := &Frm[L]{queryTags: queryTags}

	for _, tags := range queryTags {
		if len(tags) == 0 {
			continue
		}

		idSets := make([]map[uint16]struct{}, 0, len(tags))
		for _, t := range tags {
			ids, ok := s.tagToIDs[t]
			if !ok {
				idSets = nil
				break
			}
			idSets = append(idSets, ids)
		}
		if len(idSets) != len(tags) || len(idSets) == 0 {
			continue
		}

		matched := intersectIDs(idSets)
		if len(matched) == 0 {
			continue
		}

		for id := uint16(0); id < s.nextID; id++ {
			if _, ok := matched[id]; !ok {
				continue
			}
			if w, ok := s.idToWrapper[id]; ok {
				frm.matched = append(frm.matched, w)
			}
		}
	}

	if len(frm.matched) == 0 {
		return nil, false
	}
	return frm, true
}

// intersectIDs intersects a list of id sets, starting from the
// smallest set for speed, matching the reference intersection
// strategy.
func intersectIDs(sets []map[uint16]struct{}) map[uint16]struct{} {
	smallest := 0
	for i := 1; i < len(sets); i++ {
		if len(sets[i]) < len(sets[smallest]) {
			smallest = i
		}
	}

	out := make(map[uint16]struct{}, len(sets[smallest]))
	for id := range sets[smallest] {
		in := true
		for i, s := range sets {
			if i == smallest {
				continue
			}
			if _, ok := s[id]; !ok {
				in = false
				break
			}
		}
		if in {
			out[id] = struct{}{}
		}
	}
	return out
}
