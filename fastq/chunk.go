package fastq

import "io"

const (
	// DefaultPlainChunkBytes and DefaultGzipChunkBytes are the target chunk
	// sizes for memory-mapped plain input and streaming-inflated gzip
	// input respectively (spec §4.3): gzip chunks are smaller because
	// inflate is the bottleneck and smaller chunks keep the worker pool
	// fed sooner.
	DefaultPlainChunkBytes = 1 << 20
	DefaultGzipChunkBytes  = 512 << 10
)

// Chunk is a contiguous, record-aligned slice of the input: Data begins at
// a read header and ends exactly after a complete record, except for the
// final chunk, which may end mid-record if the input is truncated (spec
// §4.3, §4.4). Index is strictly increasing from 0 regardless of how many
// workers later process chunks concurrently (spec §5).
type Chunk struct {
	Index int64
	Data  []byte
	// Last is true for the final chunk produced by a Chunker.
	Last bool
}

// Chunker splits a Source into record-aligned Chunks of approximately
// targetSize bytes (C3, spec §4.3). Next is the only method a producer
// goroutine should call; it is not safe for concurrent use.
type Chunker struct {
	src    Source
	target int
	pos    int64 // absolute offset of the next chunk's start
	next   int64 // next chunk index to hand out
	done   bool
}

// NewChunker constructs a Chunker reading from src in targetSize-ish
// pieces. targetSize <= 0 selects DefaultPlainChunkBytes or
// DefaultGzipChunkBytes depending on src.Mapped().
func NewChunker(src Source, targetSize int) *Chunker {
	if targetSize <= 0 {
		if src.Mapped() {
			targetSize = DefaultPlainChunkBytes
		} else {
			targetSize = DefaultGzipChunkBytes
		}
	}
	return &Chunker{src: src, target: targetSize}
}

// Next returns the next Chunk, or ok=false once the input is exhausted.
func (c *Chunker) Next() (Chunk, bool, error) {
	if c.done {
		return Chunk{}, false, nil
	}

	want := c.pos + int64(c.target)
	growErr := c.src.Grow(want)
	if growErr != nil && growErr != io.EOF {
		return Chunk{}, false, growErr
	}

	localStart := int(c.pos - c.src.WindowStart())
	end, ok := c.searchBoundary(localStart)
	for !ok && growErr != io.EOF {
		// The search window ran out before a boundary was confirmed (the
		// separator line for a candidate record fell right at the edge of
		// what's buffered); ask for another target's worth of bytes past
		// the end of the window and try again.
		want = c.src.WindowStart() + int64(len(c.src.Bytes())) + int64(c.target)
		growErr = c.src.Grow(want)
		if growErr != nil && growErr != io.EOF {
			return Chunk{}, false, growErr
		}
		end, ok = c.searchBoundary(localStart)
	}

	b := c.src.Bytes()
	if !ok {
		// EOF reached with no further boundary: whatever remains is the
		// final, possibly truncated, chunk.
		end = len(b)
	}

	if end <= localStart {
		c.done = true
		return Chunk{}, false, nil
	}

	data := b[localStart:end]
	idx := c.next
	c.next++
	c.pos = c.src.WindowStart() + int64(end)
	c.src.Release(c.pos)

	last := !ok
	if !last {
		// The boundary we found is the start of the *next* record; confirm
		// there is at least one more byte beyond it, otherwise this was
		// actually the last chunk.
		if probeErr := c.src.Grow(c.pos + 1); probeErr == io.EOF {
			last = true
		}
	}
	if last {
		c.done = true
	}
	return Chunk{Index: idx, Data: data, Last: last}, true, nil
}

// searchBoundary looks for a record boundary at or after target bytes past
// localStart within the currently buffered window, returning its local
// offset. It returns ok=false if the window ends before a boundary could
// be confirmed.
func (c *Chunker) searchBoundary(localStart int) (int, bool) {
	b := c.src.Bytes()
	min := localStart + c.target
	if min > len(b) {
		min = len(b)
	}
	return findRecordBoundary(b, min)
}
