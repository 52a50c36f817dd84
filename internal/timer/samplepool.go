package timer

import "sync"

// samplePools buckets []uint64 sample buffers by rounded-up capacity,
// avoiding a fresh allocation per matched closure on every Run call.
// Bucket boundaries are powers of two, mirroring a byte-size-bucketed
// buffer pool generalized to itr-count buckets.
var samplePools = map[int]*sync.Pool{}
var samplePoolsMu sync.Mutex

var bucketSizes = []int{8, 16, 32, 64, 128, 256, 512, 1024, 4096}

func bucketFor(itr int) int {
	for _, b := range bucketSizes {
		if itr <= b {
			return b
		}
	}
	return itr
}

func poolFor(bucket int) *sync.Pool {
	samplePoolsMu.Lock()
	defer samplePoolsMu.Unlock()
	p, ok := samplePools[bucket]
	if !ok {
		b := bucket
		p = &sync.Pool{New: func() any {
			s := make([]uint64, 0, b)
			return &s
		}}
		samplePools[bucket] = p
	}
	return p
}

// GetSamples returns a zero-length []uint64 with capacity for at
// least itr elements, reused from the bucket pool when available.
func GetSamples(itr int) []uint64 {
	bucket := bucketFor(itr)
	p := poolFor(bucket)
	sp := p.Get().(*[]uint64)
	return (*sp)[:0]
}

// PutSamples returns a sample buffer to its bucket pool for reuse.
// Callers must not use vals after calling PutSamples.
func PutSamples(vals []uint64) {
	bucket := bucketFor(cap(vals))
	p := poolFor(bucket)
	v := vals[:0]
	p.Put(&v)
}
