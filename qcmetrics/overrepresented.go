package qcmetrics

import "github.com/grailbio/fastqc/catalog"

const (
	overrepTopK          = 20
	overrepMinFraction   = 0.001 // 0.1% of reads, spec §4.6
	overrepMinCount      = 100
)

// Overrepresented is the C6 overrepresented-sequence aggregator (spec
// §4.6). It tracks its own top-K=20 over the same full-sequence
// fingerprint space as Duplication.Full, reusing that CMS rather than
// keeping a second identical sketch.
type Overrepresented struct {
	TopK *TopK
}

// NewOverrepresented constructs an empty Overrepresented aggregator.
func NewOverrepresented() *Overrepresented {
	return &Overrepresented{TopK: NewTopK(overrepTopK)}
}

// Add admits a read's full-sequence fingerprint, already computed and
// estimated by the caller's Duplication aggregator.
func (o *Overrepresented) Add(fp uint64, estimate uint32, payload []byte) {
	o.TopK.Offer(fp, uint64(estimate), payload)
}

// Merge combines other into o, re-estimating every surviving fingerprint
// against fullCMS (the merged Duplication.Full sketch).
func (o *Overrepresented) Merge(other *Overrepresented, fullCMS *CMS) {
	ks := []*TopK{o.TopK}
	if other != nil {
		ks = append(ks, other.TopK)
	}
	o.TopK = MergeTopK(overrepTopK, fullCMS, ks...)
}

// OverrepresentedEntry is one reported row: a representative sequence,
// its estimated frequency, and the best catalog match.
type OverrepresentedEntry struct {
	Sequence string
	Count    uint64
	Fraction float64
	Match    string
}

// Report returns the overrepresented sequences that clear the
// qualification thresholds, tagged against the built-in contaminant
// catalog (spec §4.6, §9 open question (b)).
func (o *Overrepresented) Report(totalReads int64) []OverrepresentedEntry {
	if totalReads == 0 {
		return nil
	}
	var out []OverrepresentedEntry
	for _, e := range o.TopK.Entries() {
		frac := float64(e.Count) / float64(totalReads)
		if frac < overrepMinFraction || e.Count < overrepMinCount {
			continue
		}
		out = append(out, OverrepresentedEntry{
			Sequence: string(e.Payload),
			Count:    e.Count,
			Fraction: frac,
			Match:    catalog.Match(e.Payload),
		})
	}
	return out
}
