// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package fastq

import (
	"context"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/file"
	"github.com/grailbio/fastqc/circular"
	"github.com/klauspost/compress/gzip"
)

// gzipMagic is the two-byte RFC 1952 gzip header (spec §1, §4.1).
var gzipMagic = [2]byte{0x1f, 0x8b}

// DefaultRingCap is the default compaction threshold of a streaming
// Source's inflate buffer: Release compacts the buffer once it holds this
// many bytes. Grow does not cap the buffer; a Grow request that leaves more
// than this many unconsumed bytes buffered is still satisfied.
const DefaultRingCap = 4 << 20

// Source is C1, the source reader. Every byte it has produced is addressed
// by its absolute offset in the underlying stream; WindowStart reports the
// offset of Bytes()[0], so callers can index consistently whether or not
// the Source reclaims bytes behind the read cursor (spec §9).
type Source interface {
	// Bytes returns the currently buffered window. Bytes()[i] is stream
	// offset WindowStart()+i; the returned slice is stable until the next
	// Grow or Release call.
	Bytes() []byte

	// WindowStart is the absolute stream offset of Bytes()[0].
	WindowStart() int64

	// Grow ensures the window extends through absolute offset end (i.e.
	// WindowStart()+len(Bytes()) >= end), reading or inflating more of the
	// stream if needed. It returns io.EOF, possibly wrapped, if the stream
	// ends first; Bytes() still reflects whatever was read.
	Grow(end int64) error

	// Release permits the Source to reclaim bytes before absolute offset
	// through. A memory-mapped Source ignores this.
	Release(through int64)

	// Mapped reports whether Bytes() already contains, and will always
	// contain, the entire input (true for a memory-mapped plain file).
	Mapped() bool

	Close() error
}

// Open opens path, selecting a plain mmap Source or a streaming-inflate
// Source by the first two bytes of the file (spec §4.1). ringCap sets the
// streaming source's compaction threshold (see DefaultRingCap); 0 selects
// DefaultRingCap.
func Open(ctx context.Context, path string, ringCap int) (Source, error) {
	if ringCap <= 0 {
		ringCap = DefaultRingCap
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.E(KindIO, "open", path, err)
	}
	var magic [2]byte
	n, _ := io.ReadFull(f, magic[:])
	if n == 2 && magic == gzipMagic {
		if err := f.Close(); err != nil {
			return nil, errors.E(KindIO, "close", path, err)
		}
		return newGzipSource(ctx, path, ringCap)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		_ = f.Close()
		return nil, errors.E(KindIO, "seek", path, err)
	}
	return newMmapSource(f)
}

// mmapSource memory-maps a plain (uncompressed) FASTQ file read-only. The
// whole file is available immediately; Grow only reports io.EOF for an
// offset past the end, and Release is a no-op (spec §9: "memory map is
// read-only and shared").
type mmapSource struct {
	f   *os.File
	mm  mmap.MMap
	len int
}

func newMmapSource(f *os.File) (*mmapSource, error) {
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, errors.E(KindIO, "stat", f.Name(), err)
	}
	if fi.Size() == 0 {
		// mmap.Map refuses to map an empty file; treat as an empty source.
		if err := f.Close(); err != nil {
			return nil, errors.E(KindIO, "close", f.Name(), err)
		}
		return &mmapSource{}, nil
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		_ = f.Close()
		return nil, errors.E(KindIO, "mmap", f.Name(), err)
	}
	return &mmapSource{f: f, mm: mm, len: len(mm)}, nil
}

func (s *mmapSource) Bytes() []byte     { return []byte(s.mm)[:s.len] }
func (s *mmapSource) WindowStart() int64 { return 0 }
func (s *mmapSource) Grow(end int64) error {
	if end > int64(s.len) {
		return io.EOF
	}
	return nil
}
func (s *mmapSource) Release(through int64) {}
func (s *mmapSource) Mapped() bool          { return true }
func (s *mmapSource) Close() error {
	if s.mm != nil {
		if err := s.mm.Unmap(); err != nil {
			return errors.E(KindIO, "munmap", err)
		}
	}
	if s.f != nil {
		return s.f.Close()
	}
	return nil
}

// gzipSource decodes a gzip stream sequentially, buffering inflated bytes
// in a growable buffer that Release periodically compacts (spec §4.1, §9).
// Grow extends the buffer as far as each request needs, so the unconsumed
// window is not limited to ringCap bytes. windowStart is the
// absolute stream offset of buf[0]; it advances whenever Release lets the
// prefix be dropped.
type gzipSource struct {
	ctx         context.Context
	f           file.File
	gz          *gzip.Reader
	buf         []byte
	windowStart int64
	ringCap     int
	eof         bool
	err         error
}

func newGzipSource(ctx context.Context, path string, ringCap int) (*gzipSource, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.E(KindIO, "open", path, err)
	}
	gz, err := gzip.NewReader(f.Reader(ctx))
	if err != nil {
		_ = f.Close(ctx)
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, errors.E(KindTruncatedGzip, path, err)
		}
		return nil, errors.E(KindUnsupportedFormat, path, err)
	}
	return &gzipSource{ctx: ctx, f: f, gz: gz, ringCap: circular.NextExp2(ringCap - 1)}, nil
}

func (s *gzipSource) Bytes() []byte      { return s.buf }
func (s *gzipSource) WindowStart() int64 { return s.windowStart }

func (s *gzipSource) Grow(end int64) error {
	if s.err != nil && s.err != io.EOF {
		return s.err
	}
	for s.windowStart+int64(len(s.buf)) < end && !s.eof {
		want := int(end - (s.windowStart + int64(len(s.buf))))
		if want < 64<<10 {
			want = 64 << 10
		}
		if cap(s.buf)-len(s.buf) < want {
			grown := make([]byte, len(s.buf), len(s.buf)+want)
			copy(grown, s.buf)
			s.buf = grown
		}
		start := len(s.buf)
		s.buf = s.buf[:start+want]
		n, err := s.gz.Read(s.buf[start:])
		s.buf = s.buf[:start+n]
		if err != nil {
			s.eof = true
			if err == io.ErrUnexpectedEOF {
				s.err = errors.E(KindTruncatedGzip, err)
				return s.err
			}
			if err != io.EOF {
				s.err = errors.E(KindIO, "inflate", err)
				return s.err
			}
		}
	}
	if s.windowStart+int64(len(s.buf)) < end {
		return io.EOF
	}
	return nil
}

// Release drops buffered bytes before absolute offset through, compacting
// the buffer once the reclaimable prefix exceeds a third of ringCap so
// compaction cost is amortized (spec §4.1: bounded ring buffer).
func (s *gzipSource) Release(through int64) {
	drop := through - s.windowStart
	if drop <= 0 {
		return
	}
	if drop > int64(len(s.buf)) {
		drop = int64(len(s.buf))
	}
	if drop < int64(s.ringCap/3) && len(s.buf) < s.ringCap {
		return
	}
	copy(s.buf, s.buf[drop:])
	s.buf = s.buf[:int64(len(s.buf))-drop]
	s.windowStart += drop
}

func (s *gzipSource) Mapped() bool { return false }

func (s *gzipSource) Close() error {
	if err := s.gz.Close(); err != nil {
		return errors.E(KindIO, "gzip close", err)
	}
	return s.f.Close(s.ctx)
}
