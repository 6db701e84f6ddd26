package biosimd

import "golang.org/x/sys/cpu"

// useAVX2 is latched once at process start; the kernels below never
// re-check it mid-run, so a run's capability choice cannot change
// partway through (spec §9 requires identical PartialMetrics regardless
// of which path ran).
var useAVX2 = cpu.X86.HasAVX2
