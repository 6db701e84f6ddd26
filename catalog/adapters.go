package catalog

// shortReadAdapters is the built-in adapter set used in short-read mode,
// covering the Illumina universal and Nextera transposase sequences most
// commonly seen as 3' read-through (spec §4.6).
var shortReadAdapters = []Adapter{
	{Name: "Illumina Universal Adapter", Sequence: []byte("AGATCGGAAGAGC")},
	{Name: "Illumina Small RNA 3' Adapter", Sequence: []byte("TGGAATTCTCGG")},
	{Name: "Illumina Small RNA 5' Adapter", Sequence: []byte("GATCGTCGGACT")},
	{Name: "Nextera Transposase Sequence", Sequence: []byte("CTGTCTCTTATACACATCT")},
	{Name: "SOLID Small RNA Adapter", Sequence: []byte("CGCCTTGGCCGT")},
	{Name: "PolyA", Sequence: []byte("AAAAAAAAAAAAAAAAAAAAAAA")},
	{Name: "PolyG", Sequence: []byte("GGGGGGGGGGGGGGGGGGGGGGG")},
}

// longReadAdapters is the adapter set used in long-read mode, where the
// signal of interest is sequencing-adapter read-through at either end of
// an ONT/PacBio read rather than short Illumina 3' adapters.
var longReadAdapters = []Adapter{
	{Name: "ONT Ligation Adapter", Sequence: []byte("AATGTACTTCGTTCAGTTACGTATTGCT")},
	{Name: "ONT Rapid Adapter", Sequence: []byte("GTTTTCGCATTTATCGTGAAACGCTTTCGCGTTTTTCGTGCGCCGCTTCA")},
	{Name: "PacBio SMRTbell Adapter", Sequence: []byte("ATCTCTCTCAACAACAACAACGGAGGAGGAGGAAAAGAGAGAGAT")},
}

// Adapters returns the built-in adapter catalog for the given mode. long
// selects the long-read set.
func Adapters(long bool) []Adapter {
	if long {
		return longReadAdapters
	}
	return shortReadAdapters
}
