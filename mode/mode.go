// Package mode implements C8, the mode gate: it selects which aggregators
// run and which modules appear in the final result (spec §4.8).
package mode

// Mode selects the read-length regime the run is tuned for.
type Mode int

const (
	// Short is Illumina-style short-read mode (the default).
	Short Mode = iota
	// Long is ONT/PacBio-style long-read mode.
	Long
)

func (m Mode) String() string {
	if m == Long {
		return "long"
	}
	return "short"
}

// Toggles enumerates which optional modules run, defaulted by Mode and
// overridable by the driver (spec §6: "module_toggles enumerated:
// {duplication, overrepresented, adapter, kmer, per_base_*}").
type Toggles struct {
	Duplication     bool
	Overrepresented bool
	Adapter         bool
	Kmer            bool
	PerBaseQuality  bool
	PerBaseContent  bool
	PerBaseN        bool
}

// Defaults returns the module set enabled by m before any explicit
// override (spec §4.8): long-read mode turns off per-base quality,
// per-base content, per-base N, duplication, overrepresented, and k-mer;
// it adds per-read N content in their place (NContent aggregator) and
// switches length distribution to log-binned with N50/N90, which is
// unconditional rather than a toggle.
func Defaults(m Mode) Toggles {
	if m == Long {
		return Toggles{
			Duplication:     false,
			Overrepresented: false,
			Adapter:         true,
			Kmer:            false,
			PerBaseQuality:  false,
			PerBaseContent:  false,
			PerBaseN:        false,
		}
	}
	return Toggles{
		Duplication:     true,
		Overrepresented: true,
		Adapter:         true,
		Kmer:            true,
		PerBaseQuality:  true,
		PerBaseContent:  true,
		PerBaseN:        true,
	}
}
