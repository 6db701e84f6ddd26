// Package catalog holds the built-in adapter and contaminant reference
// data used to tag overrepresented sequences and to scan for adapter
// read-through (spec §4.6, §9 open question (b): "the contaminant catalog
// ... is data, not code; its version must be recorded in FinalMetrics
// provenance").
package catalog

// Version identifies the catalog revision embedded in this build. It is
// carried into FinalMetrics provenance so a report can be traced back to
// the exact reference data that produced it.
const Version = "fastqc-catalog-2024.1"

// Adapter is one entry of the built-in, per-mode adapter catalog (spec
// §4.6).
type Adapter struct {
	Name     string
	Sequence []byte
}

// Contaminant is one entry of the built-in contaminant table used to tag
// overrepresented sequences (spec §4.6).
type Contaminant struct {
	Name     string
	Sequence []byte
}

// Prefix8 returns the first 8 bytes of a's sequence, padded with 'N' if
// shorter, for the adapter prefilter's packed compare (spec §4.6).
func (a Adapter) Prefix8() [8]byte {
	var p [8]byte
	for i := range p {
		if i < len(a.Sequence) {
			p[i] = a.Sequence[i]
		} else {
			p[i] = 'N'
		}
	}
	return p
}
