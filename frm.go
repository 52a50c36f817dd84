package mtr

import (
	"github.com/ehrlich-b/mtrstudy/internal/timer"
)

// Stat names a statistical reducer applied to a closure's raw
// samples after measurement.
type Stat int

const (
	// StatMedian takes the itr/2'th element after a partial sort.
	StatMedian Stat = iota
	// StatMin takes the minimum sample.
	StatMin
	// StatMax takes the maximum sample.
	StatMax
	// StatMean takes the integer-saturating average.
	StatMean
)

// Dat is one closure's tagged measurement: either itr raw samples or
// a single reduced statistic, depending on whether Run was asked to
// apply one.
type Dat[L Label[L]] struct {
	Tags    []L
	Samples []uint64
}

// Frm holds closures matched by a Filter call, awaiting measurement.
type Frm[L Label[L]] struct {
	queryTags [][]L
	matched   []wrapper[L]
}

// Run is the measured output of a Frm: one Dat per matched closure.
type Run[L Label[L]] struct {
	Results []Dat[L]
}

// Run executes every matched closure itr times, optionally reduces
// each closure's samples with stat, and optionally sorts the results
// by sortLabel. itr must be at least 1.
func (f *Frm[L]) Run(itr uint32, sortLabel *L, stat *Stat) (*Run[L], error) {
	if itr < 1 {
		return nil, newError("run", ErrCodeInvalidQuery, "itr must be >= 1")
	}

	overhead := timer.MeasureOverhead()

	results := make([]Dat[L], 0, len(f.matched))
	for _, w := range f.matched {
		vals := timer.GetSamples(int(itr))
		for i := uint32(0); i < itr; i++ {
			elapsed := w.fn()
			vals = append(vals, saturatingSub(elapsed, overhead))
		}

		if stat != nil {
			reduced := reduce(vals, *stat)
			timer.PutSamples(vals)
			vals = []uint64{reduced}
		}

		results = append(results, Dat[L]{Tags: w.tags, Samples: vals})
	}

	if sortLabel != nil {
		sortByKind(results, func(d Dat[L]) []L { return d.Tags }, *sortLabel)
	}

	return &Run[L]{Results: results}, nil
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}

func reduce(vals []uint64, stat Stat) uint64 {
	switch stat {
	case StatMin:
		m := vals[0]
		for _, v := range vals[1:] {
			if v < m {
				m = v
			}
		}
		return m
	case StatMax:
		m := vals[0]
		for _, v := range vals[1:] {
			if v > m {
				m = v
			}
		}
		return m
	case StatMean:
		var sum uint64
		for _, v := range vals {
			sum += v
		}
		return sum / uint64(len(vals))
	case StatMedian:
		fallthrough
	default:
		return median(vals)
	}
}

// median returns the itr/2'th smallest element via partial
// selection, matching the reference's select_nth_unstable use.
func median(vals []uint64) uint64 {
	cp := append([]uint64(nil), vals...)
	k := len(cp) / 2
	nthElement(cp, k)
	return cp[k]
}

// nthElement performs a quickselect partition so that cp[k] holds
// the element that would occupy index k in sorted order.
func nthElement(cp []uint64, k int) {
	lo, hi := 0, len(cp)-1
	for lo < hi {
		p := partition(cp, lo, hi)
		switch {
		case p == k:
			return
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

func partition(cp []uint64, lo, hi int) int {
	pivot := cp[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if cp[j] < pivot {
			cp[i], cp[j] = cp[j], cp[i]
			i++
		}
	}
	cp[i], cp[hi] = cp[hi], cp[i]
	return i
}
