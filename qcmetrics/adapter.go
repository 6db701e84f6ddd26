package qcmetrics

import (
	"bytes"
	"sort"

	"github.com/grailbio/fastqc/catalog"
)

// Adapter is the C6 adapter-content aggregator (spec §4.6). It tracks, per
// catalog adapter, how many reads have their first occurrence of the
// adapter at each position; Report accumulates these into cumulative
// fractions.
type Adapter struct {
	byName map[string][]int64
}

// NewAdapter constructs an empty Adapter aggregator.
func NewAdapter() *Adapter {
	return &Adapter{byName: make(map[string][]int64)}
}

// Add scans seq for every adapter in the catalog. The 8-byte prefilter is
// the byte loop below: only positions whose first 8 bases match an
// adapter's prefix pay the cost of a full exact compare (spec §4.6). Each
// adapter is counted at most once per read, at its first occurrence.
func (a *Adapter) Add(seq []byte, adapters []catalog.Adapter) {
	for _, ad := range adapters {
		n := len(ad.Sequence)
		if n == 0 || n > len(seq) {
			continue
		}
		prefix := ad.Prefix8()
		hasPrefix := n >= 8
		counts := a.byName[ad.Name]
		for pos := 0; pos+n <= len(seq); pos++ {
			if hasPrefix {
				match := true
				for i := 0; i < 8; i++ {
					if seq[pos+i] != prefix[i] {
						match = false
						break
					}
				}
				if !match {
					continue
				}
			}
			if !bytes.Equal(seq[pos:pos+n], ad.Sequence) {
				continue
			}
			if pos >= len(counts) {
				grown := make([]int64, pos+1)
				copy(grown, counts)
				counts = grown
			}
			counts[pos]++
			break
		}
		a.byName[ad.Name] = counts
	}
}

// Merge adds other's per-adapter counts into a.
func (a *Adapter) Merge(other *Adapter) {
	if other == nil {
		return
	}
	for name, counts := range other.byName {
		cur := a.byName[name]
		if len(counts) > len(cur) {
			grown := make([]int64, len(counts))
			copy(grown, cur)
			cur = grown
		}
		for i, c := range counts {
			cur[i] += c
		}
		a.byName[name] = cur
	}
}

// AdapterCurve is one adapter's cumulative contamination fraction: the
// fraction of reads carrying the adapter starting at or before each
// position (spec §4.6: "cumulative fraction <= p of reads containing that
// adapter at some position <= p").
type AdapterCurve struct {
	Name     string
	PerBase  []float64
}

// Report returns every tracked adapter's cumulative curve, normalized by
// totalReads.
func (a *Adapter) Report(totalReads int64) []AdapterCurve {
	if totalReads == 0 {
		return nil
	}
	out := make([]AdapterCurve, 0, len(a.byName))
	for name, counts := range a.byName {
		curve := make([]float64, len(counts))
		var cum int64
		for i, c := range counts {
			cum += c
			curve[i] = float64(cum) / float64(totalReads)
		}
		out = append(out, AdapterCurve{Name: name, PerBase: curve})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
