package fastq

import (
	"io"

	"github.com/grailbio/base/log"
)

// PhredPolicy selects how the quality-encoding offset is determined.
type PhredPolicy int

const (
	// PhredAuto scans a prefix of the input and picks the offset that the
	// observed quality bytes are consistent with (spec §4.2).
	PhredAuto PhredPolicy = iota
	// PhredForce33 and PhredForce64 skip detection entirely.
	PhredForce33
	PhredForce64
)

// ProbeOpts bounds the amount of work Probe does and whether it insists on
// an unambiguous result.
type ProbeOpts struct {
	// MaxReads and MaxBytes bound the probe prefix; the first limit hit
	// stops scanning (spec §4.2). Zero selects the package defaults.
	MaxReads int
	MaxBytes int
	// Strict causes Probe to return ErrEncodingAmbiguous instead of
	// defaulting to Phred+33 when the evidence does not clearly select an
	// offset (spec §7).
	Strict bool
}

const (
	defaultProbeMaxReads = 10000
	defaultProbeMaxBytes = 1 << 20

	// phred33Min and phred64Min are the raw byte values below which a
	// quality score can only be valid Phred+33 output, and at or above
	// which it can only be valid Phred+64 output, respectively. Bytes in
	// [phred33Min, phred64Min) are consistent with either offset.
	phred33Min = 59
	phred64Min = 64
)

// Probe determines the Phred quality offset (33 or 64) that src's quality
// lines use, without consuming src: it only calls Grow, so every byte it
// reads is still available to the chunker that runs afterwards (spec §4.2,
// §9 "the probe prefix is not re-read").
func Probe(src Source, policy PhredPolicy, opts ProbeOpts) (offset int, err error) {
	switch policy {
	case PhredForce33:
		return 33, nil
	case PhredForce64:
		return 64, nil
	}

	maxReads := opts.MaxReads
	if maxReads <= 0 {
		maxReads = defaultProbeMaxReads
	}
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultProbeMaxBytes
	}

	if err := src.Grow(int64(maxBytes)); err != nil && err != io.EOF {
		return 0, err
	}
	b := src.Bytes()
	if len(b) > maxBytes {
		b = b[:maxBytes]
	}

	var (
		minByte  byte = 0xff
		maxByte  byte
		nReads   int
		pos      int
		sawAny59 bool // any byte in [33,59): definitively Phred+33
	)
	for nReads < maxReads && pos < len(b) {
		hdr, ok := findRecordBoundary(b, pos)
		if !ok {
			break
		}
		seqStart := nextLineStart(b, hdr)
		sepStart := nextLineStart(b, seqStart)
		qualStart := nextLineStart(b, sepStart)
		if qualStart < 0 {
			break
		}
		qualEnd := nextLineStart(b, qualStart)
		line := b[qualStart:]
		if qualEnd > 0 {
			line = b[qualStart : qualEnd-1]
		}
		if len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		for _, qb := range line {
			if qb < minByte {
				minByte = qb
			}
			if qb > maxByte {
				maxByte = qb
			}
			if qb < phred33Min {
				sawAny59 = true
			}
		}
		nReads++
		if qualEnd < 0 {
			break
		}
		pos = qualEnd
	}

	if nReads == 0 {
		log.Debug.Printf("fastq: Probe saw no complete reads in prefix, defaulting to Phred+33")
		return 33, nil
	}

	switch {
	case sawAny59:
		return 33, nil
	case minByte >= phred64Min:
		return 64, nil
	default:
		// minByte is in [phred33Min, phred64Min): consistent with either
		// encoding purely on value range.
		if opts.Strict {
			return 0, ErrEncodingAmbiguous
		}
		log.Debug.Printf("fastq: Probe ambiguous (min=%d max=%d nReads=%d), defaulting to Phred+33", minByte, maxByte, nReads)
		return 33, nil
	}
}
