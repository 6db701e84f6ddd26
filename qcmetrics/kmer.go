package qcmetrics

import farm "github.com/dgryski/go-farm"

const (
	kmerK        = 7
	kmerCMSWidth = 1 << 15 // w=2^15, spec §4.6
	kmerTopK     = 20
)

// Kmer is the C6 k-mer content aggregator (k=7, short-read only; spec
// §4.6). It is toggled at run time: a run with mode.Toggles.Kmer off, or in
// long-read mode, never constructs or updates one. No build tag removes it
// from the binary.
type Kmer struct {
	CMS  *CMS
	TopK *TopK
	n    int64 // total k-mers observed, for the expected-frequency model
}

// NewKmer constructs an empty Kmer aggregator.
func NewKmer() *Kmer {
	return &Kmer{CMS: NewCMS(kmerCMSWidth), TopK: NewTopK(kmerTopK)}
}

// Add tallies every valid 7-mer of seq using a rolling 2-bit-per-base
// code; a run is broken (and restarted) at any non-ACGT byte (spec §4.6:
// "Ns break runs").
func (k *Kmer) Add(seq []byte) {
	var code uint32
	var run int
	const mask = 1<<(2*kmerK) - 1
	for _, b := range seq {
		v, ok := base2bit(b)
		if !ok {
			run = 0
			code = 0
			continue
		}
		code = ((code << 2) | uint32(v)) & mask
		run++
		if run >= kmerK {
			fp := farm.Hash64WithSeed(encode7mer(code), 0)
			k.CMS.Add(fp, 1)
			k.TopK.Offer(fp, uint64(k.CMS.Estimate(fp)), encode7mer(code))
			k.n++
		}
	}
}

func base2bit(b byte) (byte, bool) {
	switch b {
	case 'A', 'a':
		return 0, true
	case 'C', 'c':
		return 1, true
	case 'G', 'g':
		return 2, true
	case 'T', 't':
		return 3, true
	default:
		return 0, false
	}
}

var bitBase = [4]byte{'A', 'C', 'G', 'T'}

// encode7mer decodes the rolling 2-bit code back into its ASCII bases, for
// reporting and as the TopK payload.
func encode7mer(code uint32) []byte {
	out := make([]byte, kmerK)
	for i := kmerK - 1; i >= 0; i-- {
		out[i] = bitBase[code&3]
		code >>= 2
	}
	return out
}

// Merge combines other into k.
func (k *Kmer) Merge(other *Kmer) {
	if other == nil {
		return
	}
	k.CMS.Merge(other.CMS)
	k.TopK = MergeTopK(kmerTopK, k.CMS, k.TopK, other.TopK)
	k.n += other.n
}

// KmerEntry is one reported row: a k-mer, its observed/expected ratio.
type KmerEntry struct {
	Kmer     string
	Count    uint64
	Ratio    float64
}

// Report returns the top-K k-mers ranked by observed/expected ratio, where
// expected is derived from mono's per-base frequencies (spec §4.6:
// "empirical mononucleotide frequencies"). mono must sum to 1.
func (k *Kmer) Report(mono [4]float64) []KmerEntry {
	if k.n == 0 {
		return nil
	}
	entries := k.TopK.Entries()
	out := make([]KmerEntry, 0, len(entries))
	for _, e := range entries {
		expectedFreq := 1.0
		code := e.Payload
		for _, b := range code {
			v, _ := base2bit(b)
			expectedFreq *= mono[v]
		}
		expectedCount := expectedFreq * float64(k.n)
		ratio := 0.0
		if expectedCount > 0 {
			ratio = float64(e.Count) / expectedCount
		}
		out = append(out, KmerEntry{Kmer: string(code), Count: e.Count, Ratio: ratio})
	}
	// Re-rank by ratio descending; TopK admission was by raw CMS count, so
	// the two orders can differ once the expected-frequency model is
	// applied.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1].Ratio < out[j].Ratio; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
