//go:build !(amd64 && linux && cgo)

package timer

import "time"

// epoch anchors the fallback clock. time.Since uses the monotonic
// reading carried by epoch, so values never step backwards when the
// wall clock is adjusted.
var epoch = time.Now()

// ReadStart and ReadStop fall back to a monotonic nanosecond clock on
// platforms without the cgo RDTSC/RDTSCP path. time.Now's call itself
// is the serializing operation here: it cannot be reordered around by
// the Go compiler the way bare instructions could be, so it gives an
// equivalent (if coarser) ordering guarantee to the x86 fence pair.
func ReadStart() uint64 {
	return uint64(time.Since(epoch))
}

// ReadStop mirrors ReadStart on the fallback path.
func ReadStop() uint64 {
	return uint64(time.Since(epoch))
}
