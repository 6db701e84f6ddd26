package qcmetrics

// NContent holds the per-read N-fraction histogram (spec §4.8: "in
// long-read mode ... per-read N content is added"). Long-read mode always
// allocates it; short-read mode allocates it when the PerBaseN toggle is
// on. The per-position N fraction is derived from BaseContent instead
// (PerBaseFraction), so NContent keeps no per-position state.
type NContent struct {
	Hist [101]int64
}

// Add tallies one read's N percentage.
func (n *NContent) Add(seq []byte) {
	if len(seq) == 0 {
		return
	}
	var nn int64
	for _, b := range seq {
		if classify(b) == baseN {
			nn++
		}
	}
	pct := roundHalfToEven(nn*100, int64(len(seq)))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	n.Hist[pct]++
}

// Merge adds other's histogram into n.
func (n *NContent) Merge(other *NContent) {
	if other == nil {
		return
	}
	for i, c := range other.Hist {
		n.Hist[i] += c
	}
}

// PerBaseFraction returns, for short-read mode, the fraction of reads that
// carry an N at position p (spec §4.5: "per-position count of N divided
// by depth at that position").
func PerBaseFraction(base *BaseContent, p int) float64 {
	depth := base.DepthAt(p)
	if depth == 0 {
		return 0
	}
	return float64(base.Counts[p][baseN]) / float64(depth)
}
