package qcmetrics

import (
	"github.com/grailbio/fastqc/catalog"
	"github.com/grailbio/fastqc/fastq"
	"github.com/grailbio/fastqc/mode"
)

// Aggregate is the mergeable state shared by PartialMetrics (one per
// chunk) and the reducer's running FinalMetrics (spec §3). GC and Length
// are always allocated; every other module pointer is optional: a module
// whose toggle is off for this run is left nil and contributes nothing to
// Merge or to the final report.
type Aggregate struct {
	NReads   int64
	NBases   int64
	NBasesN  int64
	MaxLen   int

	Quality  *Quality
	Base     *BaseContent
	GC       *GC
	NPerRead *NContent
	Length   *Length

	Dup     *Duplication
	Overrep *Overrepresented
	Adapt   *Adapter
	Kmer    *Kmer

	Phred33Votes int64
	Phred64Votes int64

	// ChecksumSum is the running sum of per-read content checksums
	// (spec §9 open question (b): a provenance value a caller can use to
	// confirm two runs over the same input agree, independent of chunking
	// or worker count since addition is commutative).
	ChecksumSum uint64
}

// New constructs an empty Aggregate configured for m and toggles.
func New(m mode.Mode, toggles mode.Toggles) *Aggregate {
	a := &Aggregate{
		GC:     &GC{},
		Length: NewLength(m == mode.Long),
	}
	if toggles.PerBaseQuality {
		a.Quality = &Quality{}
	}
	if toggles.PerBaseContent {
		a.Base = &BaseContent{}
	}
	if toggles.PerBaseN {
		a.NPerRead = &NContent{}
	}
	if m == mode.Long {
		// Per-read N content replaces per-base N content in long-read
		// mode regardless of the PerBaseN toggle (spec §4.8).
		a.NPerRead = &NContent{}
	}
	if toggles.Duplication {
		a.Dup = NewDuplication()
	}
	if toggles.Overrepresented {
		a.Overrep = NewOverrepresented()
	}
	if toggles.Adapter {
		a.Adapt = NewAdapter()
	}
	if toggles.Kmer && m == mode.Short {
		a.Kmer = NewKmer()
	}
	return a
}

// AddRead folds one parsed read into the aggregate. phredBase is the
// already-probed Phred offset (spec §4.5, §4.6).
func (a *Aggregate) AddRead(r *fastq.Read, phredBase int, adapters []catalog.Adapter) {
	a.NReads++
	a.NBases += int64(len(r.Seq))
	a.ChecksumSum += readChecksum(r.Seq, r.Qual)
	if len(r.Seq) > a.MaxLen {
		a.MaxLen = len(r.Seq)
	}
	for _, b := range r.Seq {
		if classify(b) == baseN {
			a.NBasesN++
		}
	}

	if a.Quality != nil {
		a.Quality.Add(r.Qual, phredBase)
	}
	if a.Base != nil {
		a.Base.Add(r.Seq)
	}
	a.GC.Add(r.Seq)
	if a.NPerRead != nil {
		a.NPerRead.Add(r.Seq)
	}
	a.Length.Add(len(r.Seq))

	if a.Dup != nil {
		fp, est := a.Dup.Add(r.Seq)
		if a.Overrep != nil {
			a.Overrep.Add(fp, est, firstN(r.Seq, 50))
		}
	}
	if a.Adapt != nil {
		a.Adapt.Add(r.Seq, adapters)
	}
	if a.Kmer != nil {
		a.Kmer.Add(r.Seq)
	}

	for _, q := range r.Qual {
		if int(q)-33 < 0 {
			continue
		}
		if q < 59 {
			a.Phred33Votes++
		} else if q >= 64 {
			a.Phred64Votes++
		}
	}
}

// Merge combines other into a, in place. Callers (the reducer) must invoke
// this only in ascending chunk-index order (spec §4.7, §9).
func (a *Aggregate) Merge(other *Aggregate) {
	if other == nil {
		return
	}
	a.NReads += other.NReads
	a.NBases += other.NBases
	a.NBasesN += other.NBasesN
	if other.MaxLen > a.MaxLen {
		a.MaxLen = other.MaxLen
	}
	a.Phred33Votes += other.Phred33Votes
	a.Phred64Votes += other.Phred64Votes
	a.ChecksumSum += other.ChecksumSum

	if a.Quality != nil {
		a.Quality.Merge(other.Quality)
	}
	if a.Base != nil {
		a.Base.Merge(other.Base)
	}
	a.GC.Merge(other.GC)
	if a.NPerRead != nil {
		a.NPerRead.Merge(other.NPerRead)
	}
	a.Length.Merge(other.Length)

	if a.Dup != nil {
		a.Dup.Merge(other.Dup)
	}
	if a.Overrep != nil && a.Dup != nil {
		var otherOverrep *Overrepresented
		if other != nil {
			otherOverrep = other.Overrep
		}
		a.Overrep.Merge(otherOverrep, a.Dup.Full.CMS)
	}
	if a.Adapt != nil {
		a.Adapt.Merge(other.Adapt)
	}
	if a.Kmer != nil {
		a.Kmer.Merge(other.Kmer)
	}
}
