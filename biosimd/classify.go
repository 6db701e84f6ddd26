package biosimd

// Base class indices, mirrored from package qcmetrics so the two stay in
// lock-step; ambiguity codes other than A/C/G/T count as N.
const (
	classA = iota
	classC
	classG
	classT
	classN
)

// ClassifyByte classifies a single base, for callers that need the
// per-base classification outside a bulk Add (qcmetrics.classify).
func ClassifyByte(b byte) int {
	return classifyByte(b)
}

func classifyByte(b byte) int {
	switch b {
	case 'A', 'a':
		return classA
	case 'C', 'c':
		return classC
	case 'G', 'g':
		return classG
	case 'T', 't':
		return classT
	default:
		return classN
	}
}

// ClassifyAndCount tallies seq's bases into counts[i][class], one row per
// position. counts must already have at least len(seq) rows; callers
// (qcmetrics.BaseContent.Add) own growing the table. The AVX2 path and
// the scalar path are required to produce bit-identical counts for the
// same input (spec §9).
func ClassifyAndCount(seq []byte, counts [][5]int64) {
	if useAVX2 && len(seq) >= avx2Threshold {
		classifyAndCountWide(seq, counts)
		return
	}
	classifyAndCountScalar(seq, counts)
}

func classifyAndCountScalar(seq []byte, counts [][5]int64) {
	for i := 0; i < len(seq); i++ {
		counts[i][classifyByte(seq[i])]++
	}
}

// avx2Threshold is the shortest input for which the unrolled path's fixed
// setup cost is worth paying; below it classifyAndCountScalar runs.
const avx2Threshold = 32

// classifyAndCountWide processes eight bases per iteration. It has no
// actual vector instructions behind it (this module never emits
// assembly), but it is kept separate from the scalar path so a genuine
// SIMD backend can be dropped in later behind the same useAVX2 gate
// without touching callers.
func classifyAndCountWide(seq []byte, counts [][5]int64) {
	n := len(seq)
	i := 0
	for ; i+8 <= n; i += 8 {
		for j := 0; j < 8; j++ {
			counts[i+j][classifyByte(seq[i+j])]++
		}
	}
	for ; i < n; i++ {
		counts[i][classifyByte(seq[i])]++
	}
}
