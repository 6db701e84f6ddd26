package qcmetrics

import "sort"

// Length holds the sequence-length distribution: an exact sparse
// histogram in short-read mode, or a log-binned one in long-read mode
// (spec §3, §4.5).
type Length struct {
	Long bool
	Hist map[int]int64 // short-read: keyed by exact length; long-read: keyed by bin edge
	Min  int
	Max  int
	n    int64
}

// NewLength constructs an empty Length aggregator for the given mode.
func NewLength(long bool) *Length {
	return &Length{Long: long, Hist: make(map[int]int64)}
}

// Add tallies one read's length.
func (l *Length) Add(n int) {
	key := n
	if l.Long {
		key = logBinEdge(n)
	}
	l.Hist[key]++
	if l.n == 0 || n < l.Min {
		l.Min = n
	}
	if n > l.Max {
		l.Max = n
	}
	l.n++
}

// Merge unions other's histogram into l, summing counts for shared keys
// (spec §4.7: "union of keys with summed values; log-bin edges identical
// across partials").
func (l *Length) Merge(other *Length) {
	if other == nil {
		return
	}
	for k, c := range other.Hist {
		l.Hist[k] += c
	}
	if other.n > 0 && (l.n == 0 || other.Min < l.Min) {
		l.Min = other.Min
	}
	if other.Max > l.Max {
		l.Max = other.Max
	}
	l.n += other.n
}

// logBinEdge returns the largest bin edge floor(1.5^i), i>=0, that is <=
// n, deduplicating adjacent edges that floor to the same integer (spec
// §4.5: "bin edges floor(1.5^i) for i>=0 deduplicated").
func logBinEdge(n int) int {
	if n < 1 {
		return n
	}
	edge := 0
	x := 1.0
	for {
		v := int(x)
		if v > n {
			break
		}
		edge = v
		x *= 1.5
	}
	return edge
}

// N50N90 computes the N50 and N90 statistics from the length histogram:
// the length L such that reads of length >= L account for 50%/90% of
// total bases (spec §4.5, GLOSSARY). For long-read mode, bin edges are
// used as the representative length of everything in that bin, which is
// an approximation inherent to log-binning.
func (l *Length) N50N90() (n50, n90 int) {
	keys := make([]int, 0, len(l.Hist))
	for k := range l.Hist {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	var totalBases int64
	for _, k := range keys {
		totalBases += int64(k) * l.Hist[k]
	}
	if totalBases == 0 {
		return 0, 0
	}

	var cum int64
	n50Target := (totalBases + 1) / 2
	n90Target := (totalBases*9 + 9) / 10
	n50Set, n90Set := false, false
	for _, k := range keys {
		cum += int64(k) * l.Hist[k]
		if !n50Set && cum >= n50Target {
			n50 = k
			n50Set = true
		}
		if !n90Set && cum >= n90Target {
			n90 = k
			n90Set = true
		}
		if n50Set && n90Set {
			break
		}
	}
	return n50, n90
}
