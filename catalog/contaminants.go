package catalog

// contaminants is the built-in reference table consulted when tagging an
// overrepresented sequence (spec §4.6). It intentionally reuses the
// adapter sequences most likely to dominate an overrepresented list, plus
// a handful of common vector/primer fragments.
var contaminants = []Contaminant{
	{Name: "Illumina Universal Adapter", Sequence: []byte("AGATCGGAAGAGCACACGTCTGAACTCCAGTCA")},
	{Name: "Illumina Paired End Adapter", Sequence: []byte("AGATCGGAAGAGCGTCGTGTAGGGAAAGAGTGT")},
	{Name: "Nextera Transposase Sequence", Sequence: []byte("CTGTCTCTTATACACATCTCCGAGCCCACGAGAC")},
	{Name: "SOLID Small RNA Adapter", Sequence: []byte("CGCCTTGGCCGTACAGCAG")},
	{Name: "PhiX Sequencing Control", Sequence: []byte("GGAGGCTTCAGTACCTTCTCTAGGTAACTAGTTCG")},
	{Name: "PolyA", Sequence: []byte("AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA")},
	{Name: "PolyG (NovaSeq/NextSeq dark-cycle)", Sequence: []byte("GGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGGG")},
}

// Contaminants returns the built-in contaminant table. The table is the
// same for both modes; long reads are simply less likely to match it.
func Contaminants() []Contaminant { return contaminants }
