// Package fastqc implements the streaming FASTQ quality-control data
// plane: C1 through C9 wired into a single entry point, Run (spec §6).
package fastqc

import (
	"context"

	"github.com/grailbio/base/log"

	"github.com/grailbio/fastqc/catalog"
	"github.com/grailbio/fastqc/fastq"
	"github.com/grailbio/fastqc/mode"
	"github.com/grailbio/fastqc/qcmetrics"
	"github.com/grailbio/fastqc/schedule"
)

// PhredPolicy mirrors fastq.PhredPolicy at the package boundary so callers
// outside package fastq do not need to import it directly.
type PhredPolicy = fastq.PhredPolicy

const (
	PhredAuto    = fastq.PhredAuto
	PhredForce33 = fastq.PhredForce33
	PhredForce64 = fastq.PhredForce64
)

// Options configures a Run (spec §6: "run(input_path, mode, phred_policy,
// thread_count, module_toggles, sample_name)").
type Options struct {
	InputPath   string
	Mode        mode.Mode
	PhredPolicy PhredPolicy
	ThreadCount int
	// Toggles selects the modules that run and is used exactly as given;
	// it is not merged with mode.Defaults(Mode). Pass mode.Defaults(Mode)
	// to run the mode's default module set.
	Toggles mode.Toggles
	// SampleName is accepted but not used: Run does not copy it into
	// FinalMetrics.
	SampleName string
	// RingCapBytes overrides the gzip streaming source's compaction
	// threshold; <= 0 selects fastq.DefaultRingCap.
	RingCapBytes int
	// ChunkBytes overrides the chunker's target chunk size; <= 0 selects
	// the fastq package default for the detected source kind.
	ChunkBytes int
	// StrictPhred makes an ambiguous auto-probe a fatal error instead of
	// defaulting to Phred+33 (spec §7: EncodingAmbiguous).
	StrictPhred bool
}

// Run executes the full C1-C9 pipeline over opts.InputPath and returns the
// reduced FinalMetrics, or the first fatal error encountered by any stage
// (spec §6, §7).
func Run(ctx context.Context, opts Options) (qcmetrics.FinalMetrics, error) {
	src, err := fastq.Open(ctx, opts.InputPath, opts.RingCapBytes)
	if err != nil {
		return qcmetrics.FinalMetrics{}, err
	}
	defer func() {
		if err := src.Close(); err != nil {
			log.Error.Printf("fastqc: closing %s: %v", opts.InputPath, err)
		}
	}()

	offset, err := fastq.Probe(src, opts.PhredPolicy, fastq.ProbeOpts{Strict: opts.StrictPhred})
	if err != nil {
		return qcmetrics.FinalMetrics{}, err
	}
	log.Debug.Printf("fastqc: detected Phred+%d offset for %s", offset, opts.InputPath)

	schedOpts := schedule.Options{
		PhredBase:  offset,
		Mode:       opts.Mode,
		Toggles:    opts.Toggles,
		Workers:    opts.ThreadCount,
		ChunkBytes: opts.ChunkBytes,
	}
	agg, chunkCount, err := schedule.Run(ctx, src, schedOpts)
	if err != nil {
		return qcmetrics.FinalMetrics{}, err
	}

	inputBytes := int64(len(src.Bytes()))
	prov := qcmetrics.Provenance{
		InputPath:             opts.InputPath,
		InputBytes:            inputBytes,
		ChunkCount:            chunkCount,
		DetectedOffset:        offset,
		Mode:                  opts.Mode,
		Toggles:               opts.Toggles,
		ContaminantCatalogVer: catalog.Version,
		AdapterCatalogVer:     catalog.Version,
	}
	return qcmetrics.Finalize(agg, prov), nil
}
