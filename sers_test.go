package mtr

import (
	"testing"

	"github.com/ehrlich-b/mtrstudy/mtrtest"
)

func arrayVectorSet(t *testing.T) *Set[mtrtest.Kind] {
	t.Helper()
	set := NewSet[mtrtest.Kind]()
	for _, n := range []uint32{16, 32, 64} {
		n := n
		if err := Insert(set, []mtrtest.Kind{mtrtest.Alloc, mtrtest.Array, mtrtest.Len(n)}, func() []int {
			return make([]int, n)
		}); err != nil {
			t.Fatal(err)
		}
		if err := Insert(set, []mtrtest.Kind{mtrtest.Alloc, mtrtest.Vector, mtrtest.Len(n)}, func() []int {
			var s []int
			for i := uint32(0); i < n; i++ {
				s = append(s, int(i))
			}
			return s
		}); err != nil {
			t.Fatal(err)
		}
	}
	return set
}

func groupedCompareRun(t *testing.T) *Grps[mtrtest.Kind] {
	t.Helper()
	set := arrayVectorSet(t)
	frm, ok := set.Filter([][]mtrtest.Kind{{mtrtest.Alloc, mtrtest.Array}, {mtrtest.Alloc, mtrtest.Vector}})
	if !ok {
		t.Fatal("expected a match")
	}
	stat := StatMedian
	sortLabel := mtrtest.Len(0)
	run, err := frm.Run(8, &sortLabel, &stat)
	if err != nil {
		t.Fatal(err)
	}
	grps, err := run.Group([][]mtrtest.Kind{{mtrtest.Alloc, mtrtest.Array}, {mtrtest.Alloc, mtrtest.Vector}}, &sortLabel)
	if err != nil {
		t.Fatal(err)
	}
	return grps
}

func TestTransposeProducesAxisAndOneSeriesPerGroup(t *testing.T) {
	grps := groupedCompareRun(t)

	sers, err := grps.Transpose(mtrtest.Len(0))
	if err != nil {
		t.Fatal(err)
	}
	if len(sers.Series) != 1+len(grps.Groups) {
		t.Fatalf("expected 1+%d series, got %d", len(grps.Groups), len(sers.Series))
	}
	axis := sers.Series[0]
	if len(axis.Values) != 3 || axis.Values[0] != 16 || axis.Values[1] != 32 || axis.Values[2] != 64 {
		t.Fatalf("expected axis [16,32,64], got %v", axis.Values)
	}
	for _, ser := range sers.Series[1:] {
		if len(ser.Values) != len(axis.Values) {
			t.Fatalf("expected series aligned to axis length, got %d vs %d", len(ser.Values), len(axis.Values))
		}
	}
}

func TestTransposeMissingLabelErrors(t *testing.T) {
	grps := groupedCompareRun(t)

	_, err := grps.Transpose(mtrtest.Threads(0))
	if !IsErrorCode(err, ErrCodeMissingTransposeLabel) {
		t.Fatalf("expected ErrCodeMissingTransposeLabel, got %v", err)
	}
}

func TestTransposeRejectsMultiSampleRows(t *testing.T) {
	set := arrayVectorSet(t)
	frm, _ := set.Filter([][]mtrtest.Kind{{mtrtest.Alloc, mtrtest.Array}})
	// No stat: each Dat keeps itr raw samples, violating Transpose's
	// one-sample-per-row requirement.
	run, err := frm.Run(4, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	grps, err := run.Group([][]mtrtest.Kind{{mtrtest.Alloc, mtrtest.Array}}, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = grps.Transpose(mtrtest.Len(0))
	if !IsErrorCode(err, ErrCodeWrongRowCount) {
		t.Fatalf("expected ErrCodeWrongRowCount, got %v", err)
	}
}
