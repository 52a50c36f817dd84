package timer

import (
	"github.com/ehrlich-b/mtrstudy/internal/logging"
	"golang.org/x/sys/cpu"
)

// init logs, at Debug level, the CPU feature-detection state the
// cycle reader is running under. golang.org/x/sys/cpu doesn't expose
// an invariant-TSC bit directly, so this reports the AVX/RDRAND
// feature bits it does expose plus whether detection ran at all —
// enough signal to flag "this host's feature probe didn't run" when
// cycle counts look unexpectedly noisy across core migrations. It
// does not gate any engine behavior.
func init() {
	logging.Debug("timer: cpu feature probe",
		"detected", cpu.Initialized,
		"avx", cpu.X86.HasAVX,
		"avx2", cpu.X86.HasAVX2,
		"rdrand", cpu.X86.HasRDRAND,
	)
}
