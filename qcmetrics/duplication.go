package qcmetrics

import "sort"

const (
	dupCMSWidth = 1 << 17 // w=2^17, spec §3
	dupTopK     = 100
)

// fingerprintVariant bundles the sketch and heavy-hitter set for one of
// the duplication estimator's two fingerprint spaces (spec §3: "'first 50
// bp' and 'full-length' variants").
type fingerprintVariant struct {
	CMS  *CMS
	TopK *TopK
}

func newFingerprintVariant() *fingerprintVariant {
	return &fingerprintVariant{CMS: NewCMS(dupCMSWidth), TopK: NewTopK(dupTopK)}
}

func (v *fingerprintVariant) add(fp uint64, payload []byte) {
	v.CMS.Add(fp, 1)
	v.TopK.Offer(fp, uint64(v.CMS.Estimate(fp)), payload)
}

func (v *fingerprintVariant) merge(other *fingerprintVariant) {
	if other == nil {
		return
	}
	v.CMS.Merge(other.CMS)
	v.TopK = MergeTopK(dupTopK, v.CMS, v.TopK, other.TopK)
}

// Duplication is the C6 duplication-level estimator (spec §4.6).
type Duplication struct {
	First50 *fingerprintVariant
	Full    *fingerprintVariant
}

// NewDuplication constructs an empty Duplication aggregator.
func NewDuplication() *Duplication {
	return &Duplication{First50: newFingerprintVariant(), Full: newFingerprintVariant()}
}

// Add tallies one read, returning the full-sequence fingerprint and its
// post-update CMS estimate so the caller (Overrepresented) can reuse the
// same fingerprint space without rehashing or holding a second sketch.
func (d *Duplication) Add(seq []byte) (fpFull uint64, estFull uint32) {
	d.First50.add(fingerprintFirst50(seq), nil)
	fpFull = fingerprintFull(seq)
	d.Full.add(fpFull, firstN(seq, 50))
	return fpFull, d.Full.CMS.Estimate(fpFull)
}

func firstN(b []byte, n int) []byte {
	if len(b) <= n {
		out := make([]byte, len(b))
		copy(out, b)
		return out
	}
	out := make([]byte, n)
	copy(out, b[:n])
	return out
}

// Merge combines other into d.
func (d *Duplication) Merge(other *Duplication) {
	if other == nil {
		return
	}
	d.First50.merge(other.First50)
	d.Full.merge(other.Full)
}

// DuplicationLevel is one row of the reported duplication curve: the
// estimated fraction of reads belonging to a group observed count times
// larger than a single occurrence.
type DuplicationLevel struct {
	Count    int
	Fraction float64
}

// Curve derives the duplication-level curve from the full-length top-K
// plus a Good-Turing-style tail for everything not captured by it (spec
// §4.6: "derived from the top-K plus a Good-Turing-style tail using total
// reads minus heavy-hitter mass").
func (d *Duplication) Curve(totalReads int64) []DuplicationLevel {
	if totalReads == 0 {
		return nil
	}
	entries := d.Full.TopK.Entries()
	var heavyReads int64
	byCount := make(map[int]int64)
	for _, e := range entries {
		c := int(e.Count)
		if c < 1 {
			c = 1
		}
		byCount[c]++
		heavyReads += e.Count
	}
	remaining := totalReads - heavyReads
	if remaining < 0 {
		remaining = 0
	}
	// Good-Turing-style tail: everything not captured by the top-K is
	// treated as a population of singletons, the standard assumption when
	// no further structure is observed.
	if remaining > 0 {
		byCount[1] += remaining
	}

	counts := make([]int, 0, len(byCount))
	for c := range byCount {
		counts = append(counts, c)
	}
	sort.Ints(counts)

	levels := make([]DuplicationLevel, 0, len(counts))
	for _, c := range counts {
		groups := byCount[c]
		readsInGroup := int64(c) * groups
		levels = append(levels, DuplicationLevel{
			Count:    c,
			Fraction: float64(readsInGroup) / float64(totalReads),
		})
	}
	return levels
}
