// bio-fastqc runs the streaming FASTQ quality-control pipeline over a
// single input file and prints a summary of the computed verdicts.
// Report rendering (HTML/LaTeX/ZIP) is out of scope for the core and is
// not implemented by this driver (spec §1).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"

	"github.com/grailbio/fastqc"
	"github.com/grailbio/fastqc/mode"
)

func main() {
	var (
		input       = flag.String("input", "", "path to a FASTQ file, plain or gzip-compressed")
		longMode    = flag.Bool("long-read", false, "use long-read mode (ONT/PacBio) instead of short-read mode")
		phred       = flag.String("phred", "auto", "quality encoding: auto, 33, or 64")
		threads     = flag.Int("threads", 0, "worker count; 0 selects the logical CPU count")
		sampleName  = flag.String("sample", "", "sample name (accepted; not recorded in the output)")
		strictPhred = flag.Bool("strict-phred", false, "fail instead of defaulting to Phred+33 when auto-detection is ambiguous")
	)
	shutdown := grail.Init()
	defer shutdown()

	if *input == "" {
		log.Fatalf("bio-fastqc: -input is required")
	}

	m := mode.Short
	if *longMode {
		m = mode.Long
	}

	var policy fastqc.PhredPolicy
	switch *phred {
	case "auto":
		policy = fastqc.PhredAuto
	case "33":
		policy = fastqc.PhredForce33
	case "64":
		policy = fastqc.PhredForce64
	default:
		log.Fatalf("bio-fastqc: -phred must be auto, 33, or 64, got %q", *phred)
	}

	opts := fastqc.Options{
		InputPath:   *input,
		Mode:        m,
		PhredPolicy: policy,
		ThreadCount: *threads,
		Toggles:     mode.Defaults(m),
		SampleName:  *sampleName,
		StrictPhred: *strictPhred,
	}

	final, err := fastqc.Run(vcontext.Background(), opts)
	if err != nil {
		log.Fatalf("bio-fastqc: %v", err)
	}

	fmt.Fprintf(os.Stdout, "%s: %d reads, %d bases, %.1f%% GC, Phred+%d, chunks=%d, checksum=%016x\n",
		*input, final.Basic.TotalReads, final.Basic.TotalBases, final.Basic.GCPercent,
		final.Basic.PhredOffset, final.Provenance.ChunkCount, final.Provenance.ContentChecksum)
	fmt.Fprintf(os.Stdout, "per_base_quality\t%s\n", final.Verdicts.PerBaseQuality)
	fmt.Fprintf(os.Stdout, "per_seq_quality\t%s\n", final.Verdicts.PerSeqQuality)
	fmt.Fprintf(os.Stdout, "per_base_content\t%s\n", final.Verdicts.PerBaseContent)
	fmt.Fprintf(os.Stdout, "per_seq_gc\t%s\n", final.Verdicts.PerSeqGC)
	fmt.Fprintf(os.Stdout, "per_base_n\t%s\n", final.Verdicts.PerBaseN)
	fmt.Fprintf(os.Stdout, "seq_length\t%s\n", final.Verdicts.SeqLength)
	fmt.Fprintf(os.Stdout, "duplication\t%s\n", final.Verdicts.Duplication)
	fmt.Fprintf(os.Stdout, "overrepresented\t%s\n", final.Verdicts.Overrepresented)
	fmt.Fprintf(os.Stdout, "adapter\t%s\n", final.Verdicts.Adapter)
}
