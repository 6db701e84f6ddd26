package schedule

import (
	"github.com/grailbio/fastqc/catalog"
	"github.com/grailbio/fastqc/fastq"
	"github.com/grailbio/fastqc/qcmetrics"
)

// processChunk runs C4 through C6 over one Chunk, producing its
// PartialMetrics. A parse or validation failure here is fatal to the
// whole run (spec §4.4: "A malformed chunk fails the whole run").
func processChunk(chunk fastq.Chunk, opts Options, adapters []catalog.Adapter) (qcmetrics.PartialMetrics, error) {
	agg := qcmetrics.New(opts.Mode, opts.Toggles)

	scanner := fastq.NewScanner(chunk)
	var r fastq.Read
	for scanner.Scan(&r) {
		// r.ID aliases chunk.Data, so the capacity difference is the
		// record's byte offset within the chunk.
		offset := int64(cap(chunk.Data) - cap(r.ID))
		if err := fastq.ValidateQuality(r.Qual, opts.PhredBase, chunk.Index, offset); err != nil {
			return qcmetrics.PartialMetrics{}, err
		}
		agg.AddRead(&r, opts.PhredBase, adapters)
	}
	if err := scanner.Err(); err != nil {
		return qcmetrics.PartialMetrics{}, err
	}

	return qcmetrics.PartialMetrics{ChunkIndex: chunk.Index, Agg: agg}, nil
}
