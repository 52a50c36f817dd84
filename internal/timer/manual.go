package timer

// Cell is a single-field manual timer: Start captures a fresh
// timestamp, Stop replaces the field with the elapsed span. Calling
// Stop without a prior Start fails silently, leaving Elapsed at the
// sentinel zero value, matching the reference implementation's
// behavior for a misused manual-timed closure.
type Cell struct {
	elapsed uint64
}

// Start captures the current timestamp.
func (c *Cell) Start() {
	c.elapsed = ReadStart()
}

// Stop replaces the cell's field with the elapsed span since Start.
// Without a prior Start the field still holds the zero sentinel, and
// Stop leaves it there.
func (c *Cell) Stop() {
	if c.elapsed == 0 {
		return
	}
	c.elapsed = ReadStop() - c.elapsed
}

// Elapsed returns the measured span recorded by the last Start/Stop
// pair.
func (c *Cell) Elapsed() uint64 {
	return c.elapsed
}
