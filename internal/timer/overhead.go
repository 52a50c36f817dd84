package timer

// MeasureOverhead runs four back-to-back start/stop pairs around an
// empty region and returns the minimum elapsed value, estimating the
// irreducible cost of the measurement instructions themselves.
// Minimum, not mean, because the instructions' variability is
// one-sided above a floor: any given pair either hits the floor or
// gets delayed by scheduling noise, never comes in under it.
func MeasureOverhead() uint64 {
	fst := ReadStart()
	overhead := ReadStop() - fst

	for i := 0; i < 3; i++ {
		fst = ReadStart()
		if d := ReadStop() - fst; d < overhead {
			overhead = d
		}
	}
	return overhead
}
