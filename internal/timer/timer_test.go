package timer

import "testing"

func TestReadStartReadStopMonotonic(t *testing.T) {
	start := ReadStart()
	stop := ReadStop()
	if stop < start {
		t.Fatalf("expected ReadStop >= ReadStart, got start=%d stop=%d", start, stop)
	}
}

func TestMeasureOverheadIsSmallAndStable(t *testing.T) {
	first := MeasureOverhead()
	second := MeasureOverhead()

	lo, hi := first, second
	if hi < lo {
		lo, hi = hi, lo
	}
	if lo > 0 && hi > lo*50 {
		t.Fatalf("expected overhead measurements within a generous multiplicative factor, got %d and %d", first, second)
	}
}

func TestCellStartStopRecordsElapsed(t *testing.T) {
	var cell Cell
	cell.Start()
	cell.Stop()
	// Elapsed must not panic and is always representable as a uint64;
	// a fresh start/stop bracket around nothing measures a tiny or
	// zero span.
	_ = cell.Elapsed()
}

func TestCellZeroValueElapsedIsZero(t *testing.T) {
	var cell Cell
	if got := cell.Elapsed(); got != 0 {
		t.Fatalf("expected zero-value Cell to report Elapsed()=0, got %d", got)
	}
}

func TestGetSamplesReturnsZeroLengthWithCapacity(t *testing.T) {
	vals := GetSamples(10)
	if len(vals) != 0 {
		t.Fatalf("expected zero-length slice, got len=%d", len(vals))
	}
	if cap(vals) < 10 {
		t.Fatalf("expected capacity >= 10, got %d", cap(vals))
	}
}

func TestPutSamplesRoundTripsThroughPool(t *testing.T) {
	vals := GetSamples(4)
	vals = append(vals, 1, 2, 3, 4)
	PutSamples(vals)

	reused := GetSamples(4)
	if len(reused) != 0 {
		t.Fatalf("expected a fresh zero-length slice from the pool, got len=%d", len(reused))
	}
}

func TestBucketForRoundsUpToNearestBucket(t *testing.T) {
	if got := bucketFor(1); got != 8 {
		t.Fatalf("bucketFor(1) = %d, want 8", got)
	}
	if got := bucketFor(8); got != 8 {
		t.Fatalf("bucketFor(8) = %d, want 8", got)
	}
	if got := bucketFor(9); got != 16 {
		t.Fatalf("bucketFor(9) = %d, want 16", got)
	}
	if got := bucketFor(5000); got != 5000 {
		t.Fatalf("bucketFor(5000) = %d, want 5000 (beyond largest bucket)", got)
	}
}
