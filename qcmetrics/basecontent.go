package qcmetrics

import "github.com/grailbio/fastqc/biosimd"

// Base class indices into a position's 5-wide counter row (spec §3: "table
// of shape (positions x 5)"); must match biosimd's class* constants.
const (
	baseA = iota
	baseC
	baseG
	baseT
	baseN
)

// BaseContent holds per-position base-class counts (C5 "per-base sequence
// content"). Add dispatches to package biosimd, which picks between a
// scalar loop and an AVX2-gated wide loop at its own package init.
type BaseContent struct {
	Counts [][5]int64
}

// Add tallies seq's bases into their position rows, growing Counts as
// needed.
func (b *BaseContent) Add(seq []byte) {
	b.growTo(len(seq))
	biosimd.ClassifyAndCount(seq, b.Counts[:len(seq)])
}

// classify maps a sequence byte to its counting class, for the callers in
// this package (gc.go, ncontent.go, aggregate.go) that need a single-byte
// answer rather than a bulk Add. It defers to biosimd so the two never
// drift apart (biosimd's class* constants share baseA..baseN's order).
func classify(b byte) int {
	return biosimd.ClassifyByte(b)
}

func (b *BaseContent) growTo(n int) {
	if len(b.Counts) >= n {
		return
	}
	grown := make([][5]int64, n)
	copy(grown, b.Counts)
	b.Counts = grown
}

// Merge adds other's counts into b, zero-extending the shorter table
// first (spec §3: "extendable on merge").
func (b *BaseContent) Merge(other *BaseContent) {
	if other == nil {
		return
	}
	b.growTo(len(other.Counts))
	for i, row := range other.Counts {
		for c := 0; c < 5; c++ {
			b.Counts[i][c] += row[c]
		}
	}
}

// DepthAt returns the number of reads with length > p, i.e. the sum of all
// five classes at position p (spec §3 invariant).
func (b *BaseContent) DepthAt(p int) int64 {
	if p >= len(b.Counts) {
		return 0
	}
	var d int64
	for _, c := range b.Counts[p] {
		d += c
	}
	return d
}
