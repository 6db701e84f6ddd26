package qcmetrics

import "github.com/grailbio/fastqc/mode"

// Provenance records the run parameters that FinalMetrics is a pure
// function of, so a report can always be traced back to exactly what
// produced it (spec §3 invariant: "Final outputs are a pure function of
// (input bytes, mode, Phred offset policy, module toggles)"; spec §6:
// "provenance (offset detected, chunk count, input bytes)"; spec §9 open
// question (b)).
type Provenance struct {
	InputPath             string
	InputBytes            int64
	ChunkCount            int64
	DetectedOffset        int
	Mode                  mode.Mode
	Toggles               mode.Toggles
	ContaminantCatalogVer string
	AdapterCatalogVer     string
	ContentChecksum       uint64
}

// FinalMetrics is the result of merging every PartialMetrics in ascending
// chunk_index order (spec §3). It is handed to the external renderer
// unchanged.
type FinalMetrics struct {
	Agg        *Aggregate
	Basic      BasicStats
	Verdicts   ModuleVerdicts
	Provenance Provenance
}

// PartialMetrics is the per-chunk mergeable aggregate produced by a
// worker after running C4 through C6 over one Chunk (spec §3).
type PartialMetrics struct {
	ChunkIndex int64
	Agg        *Aggregate
}

// Finalize computes BasicStats and ModuleVerdicts from a fully merged
// Aggregate and attaches provenance, producing the value the driver
// returns to its caller.
func Finalize(agg *Aggregate, prov Provenance) FinalMetrics {
	basic := ComputeBasicStats(agg, prov.DetectedOffset)
	verdicts := ComputeVerdicts(agg, basic)
	prov.ContentChecksum = agg.ChecksumSum
	return FinalMetrics{Agg: agg, Basic: basic, Verdicts: verdicts, Provenance: prov}
}
