package mtr

// sink receives every closure's return value so the compiler must
// treat the call as escaping and cannot prove the body dead. This
// mirrors Rust's core::hint::black_box: a logical no-op whose only
// job is to defeat dead-code elimination, not to allocate or do real
// work of its own.
var sink any

//go:noinline
func blackBox(v any) {
	sink = v
}
