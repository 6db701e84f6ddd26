// Package schedule implements C9, the work scheduler: a single producer
// (the chunker) feeding a bounded queue, a worker pool running C4 through
// C6 per chunk, and an ordered sink (the reducer) merging results in
// strict chunk-index order (spec §4.9, §5). The goroutine/channel/
// WaitGroup/errors.Once shape follows the worker pool in
// markduplicates.SetupAndMark.
package schedule

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"

	"github.com/grailbio/fastqc/catalog"
	"github.com/grailbio/fastqc/fastq"
	"github.com/grailbio/fastqc/mode"
	"github.com/grailbio/fastqc/qcmetrics"
	"github.com/grailbio/fastqc/reduce"
)

// Options configures Run.
type Options struct {
	PhredBase int
	Mode      mode.Mode
	Toggles   mode.Toggles
	// Workers is the worker-pool size; <= 0 selects runtime.NumCPU().
	Workers int
	// ChunkBytes overrides the Chunker's target chunk size; <= 0 selects
	// the fastq package default for src's kind.
	ChunkBytes int
}

// Run drives the full pipeline over src: chunking, parsing, per-chunk
// aggregation, and ordered reduction. It returns the merged Aggregate and
// the number of chunks processed, or the first fatal error encountered by
// any stage (spec §4.9, §7: "a worker failure cancels siblings").
func Run(ctx context.Context, src fastq.Source, opts Options) (*qcmetrics.Aggregate, int64, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers < 1 {
		workers = 1
	}

	queue := make(chan fastq.Chunk, 2*workers)
	results := make(chan qcmetrics.PartialMetrics, 2*workers)

	var cancelled int32
	var failure errors.Once
	adapters := catalog.Adapters(opts.Mode == mode.Long)

	var workerWG sync.WaitGroup
	workerWG.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer workerWG.Done()
			for chunk := range queue {
				if atomic.LoadInt32(&cancelled) != 0 {
					continue
				}
				partial, err := processChunk(chunk, opts, adapters)
				if err != nil {
					log.Error.Printf("schedule: chunk %d failed: %v", chunk.Index, err)
					failure.Set(err)
					atomic.StoreInt32(&cancelled, 1)
					continue
				}
				results <- partial
			}
		}()
	}

	chunker := fastq.NewChunker(src, opts.ChunkBytes)
	go func() {
		defer close(queue)
		for {
			if atomic.LoadInt32(&cancelled) != 0 {
				return
			}
			chunk, ok, err := chunker.Next()
			if err != nil {
				failure.Set(err)
				atomic.StoreInt32(&cancelled, 1)
				return
			}
			if !ok {
				return
			}
			select {
			case queue <- chunk:
			case <-ctx.Done():
				failure.Set(ctx.Err())
				atomic.StoreInt32(&cancelled, 1)
				return
			}
		}
	}()

	go func() {
		workerWG.Wait()
		close(results)
	}()

	reducer := reduce.NewReducer(qcmetrics.New(opts.Mode, opts.Toggles))
	for p := range results {
		reducer.Offer(p)
	}

	if err := failure.Err(); err != nil {
		return nil, 0, err
	}
	if reducer.Pending() != 0 {
		log.Panicf("schedule: reducer finished with %d partials still pending", reducer.Pending())
	}
	return reducer.Total(), reducer.ChunkCount(), nil
}
