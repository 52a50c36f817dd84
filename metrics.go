package mtr

import (
	"sync/atomic"
	"time"
)

// IterationBuckets defines the iteration-count histogram buckets.
// Buckets cover from 1 to 100,000 iterations with logarithmic
// spacing, mirroring small-to-large benchmark repetition counts.
var IterationBuckets = []uint64{1, 10, 100, 1_000, 10_000, 100_000}

const numIterationBuckets = 6

// StudyMetrics tracks engine-level activity across queries: how many
// queries ran, how many closures were measured, how many raw samples
// were collected, and a histogram of per-closure iteration counts.
type StudyMetrics struct {
	QueriesRun       atomic.Uint64
	ClosuresMeasured atomic.Uint64
	SamplesCollected atomic.Uint64
	CyclesMeasured   atomic.Uint64

	GroupsBuilt      atomic.Uint64
	SeriesBuilt      atomic.Uint64
	ComparisonsBuilt atomic.Uint64

	QueryErrors atomic.Uint64

	// IterationHistogram[i] counts closures run with itr <=
	// IterationBuckets[i] (cumulative, like a latency histogram).
	IterationHistogram [numIterationBuckets]atomic.Uint64

	StartTime atomic.Int64
}

// NewStudyMetrics returns a fresh, zeroed metrics instance stamped
// with the current time.
func NewStudyMetrics() *StudyMetrics {
	m := &StudyMetrics{}
	m.StartTime.Store(time.Now().UnixNano())
	return m
}

// RecordRun records one Frm.Run call: the number of closures matched,
// the iteration count applied to each, and totalCycles, which is added
// to CyclesMeasured as given. Set.Run passes the sum of the Run's Dat
// samples, so when a Stat reduced each closure to one value,
// totalCycles is the sum of those reduced values rather than of every
// raw sample.
func (m *StudyMetrics) RecordRun(closures int, itr uint32, totalCycles uint64) {
	m.ClosuresMeasured.Add(uint64(closures))
	m.SamplesCollected.Add(uint64(closures) * uint64(itr))
	m.CyclesMeasured.Add(totalCycles)

	for i, bucket := range IterationBuckets {
		if uint64(itr) <= bucket {
			m.IterationHistogram[i].Add(uint64(closures))
		}
	}
}

// RecordQuery records the completion of one Query, successful or not.
func (m *StudyMetrics) RecordQuery(err error) {
	m.QueriesRun.Add(1)
	if err != nil {
		m.QueryErrors.Add(1)
	}
}

// RecordGroup records one successful Group call.
func (m *StudyMetrics) RecordGroup() { m.GroupsBuilt.Add(1) }

// RecordSeries records one successful Transpose call.
func (m *StudyMetrics) RecordSeries() { m.SeriesBuilt.Add(1) }

// RecordComparison records one successful Compare call.
func (m *StudyMetrics) RecordComparison() { m.ComparisonsBuilt.Add(1) }

// StudyMetricsSnapshot is a point-in-time, non-atomic copy of
// StudyMetrics suitable for logging or rendering.
type StudyMetricsSnapshot struct {
	QueriesRun       uint64
	ClosuresMeasured uint64
	SamplesCollected uint64
	CyclesMeasured   uint64
	GroupsBuilt      uint64
	SeriesBuilt      uint64
	ComparisonsBuilt uint64
	QueryErrors      uint64

	IterationHistogram [numIterationBuckets]uint64

	UptimeNs        uint64
	AvgCyclesPerDat float64
}

// Snapshot takes a point-in-time copy of m.
func (m *StudyMetrics) Snapshot() StudyMetricsSnapshot {
	snap := StudyMetricsSnapshot{
		QueriesRun:       m.QueriesRun.Load(),
		ClosuresMeasured: m.ClosuresMeasured.Load(),
		SamplesCollected: m.SamplesCollected.Load(),
		CyclesMeasured:   m.CyclesMeasured.Load(),
		GroupsBuilt:      m.GroupsBuilt.Load(),
		SeriesBuilt:      m.SeriesBuilt.Load(),
		ComparisonsBuilt: m.ComparisonsBuilt.Load(),
		QueryErrors:      m.QueryErrors.Load(),
		UptimeNs:         uint64(time.Now().UnixNano() - m.StartTime.Load()),
	}
	for i := 0; i < numIterationBuckets; i++ {
		snap.IterationHistogram[i] = m.IterationHistogram[i].Load()
	}
	if snap.ClosuresMeasured > 0 {
		snap.AvgCyclesPerDat = float64(snap.CyclesMeasured) / float64(snap.ClosuresMeasured)
	}
	return snap
}
