//go:build amd64 && linux && cgo

package timer

/*
#include <stdint.h>

// Full memory fence followed by a load fence, then read the
// processor timestamp counter. The fences prevent earlier
// instructions from being reordered past the read.
static inline uint64_t read_start_impl(void) {
    __asm__ __volatile__("mfence" ::: "memory");
    __asm__ __volatile__("lfence" ::: "memory");
    uint32_t lo, hi;
    __asm__ __volatile__("rdtsc" : "=a"(lo), "=d"(hi));
    return ((uint64_t)hi << 32) | lo;
}

// RDTSCP waits for all prior instructions to retire and all prior
// loads to be globally visible before reading the counter, then a
// load fence prevents later instructions from being reordered before
// the read.
static inline uint64_t read_stop_impl(void) {
    uint32_t lo, hi, aux;
    __asm__ __volatile__("rdtscp" : "=a"(lo), "=d"(hi), "=c"(aux));
    __asm__ __volatile__("lfence" ::: "memory");
    return ((uint64_t)hi << 32) | lo;
}
*/
import "C"

// ReadStart returns a starting timestamp from the processor,
// serialized so earlier instructions cannot be reordered past the
// read. Pair with ReadStop around the region being measured.
func ReadStart() uint64 {
	return uint64(C.read_start_impl())
}

// ReadStop returns an ending timestamp using the serializing RDTSCP
// variant, which guarantees the measured region has fully retired.
func ReadStop() uint64 {
	return uint64(C.read_stop_impl())
}
