package fastq

import (
	"fmt"

	"github.com/grailbio/base/errors"
)

// Error kinds surfaced by this package and by the higher-level pipeline in
// package fastqc. Every fatal condition in the data plane maps to one of
// these so the driver can report a single, typed error (spec §7).
const (
	KindIO                = errors.Other
	KindUnsupportedFormat = errors.NotSupported
	KindTruncatedGzip     = errors.Other
	KindParse             = errors.Other
	KindQualityOutOfRange = errors.Other
	KindLengthMismatch    = errors.Other
	KindEncodingAmbiguous = errors.Other
	KindCancelled         = errors.Canceled
)

// ParseError carries the chunk index and byte offset of a malformed record
// (spec §4.4, §6).
type ParseError struct {
	ChunkIndex int64
	Offset     int64
	Reason     string
}

func (e *ParseError) Error() string {
	return errors.E(KindParse, fmt.Sprintf("chunk=%d offset=%d: %s", e.ChunkIndex, e.Offset, e.Reason)).Error()
}

// QualityOutOfRangeError reports a quality byte outside the Phred+offset
// range [0, 93] (spec §3).
type QualityOutOfRangeError struct {
	ChunkIndex int64
	Offset     int64
	Byte       byte
	PhredBase  int
}

func (e *QualityOutOfRangeError) Error() string {
	return errors.E(KindQualityOutOfRange, fmt.Sprintf(
		"quality byte 0x%02x at chunk=%d offset=%d is out of range for Phred+%d",
		e.Byte, e.ChunkIndex, e.Offset, e.PhredBase)).Error()
}

// LengthMismatchError reports a sequence/quality length mismatch (spec §4.4).
type LengthMismatchError struct {
	ChunkIndex int64
	Offset     int64
	SeqLen     int
	QualLen    int
}

func (e *LengthMismatchError) Error() string {
	return errors.E(KindLengthMismatch, fmt.Sprintf(
		"chunk=%d offset=%d: sequence length %d != quality length %d",
		e.ChunkIndex, e.Offset, e.SeqLen, e.QualLen)).Error()
}

// ErrEncodingAmbiguous is returned by Probe when policy.Strict is set and the
// observed quality bytes do not definitively select Phred+33 or Phred+64
// (spec §7).
var ErrEncodingAmbiguous = errors.E(KindEncodingAmbiguous, "could not determine Phred offset unambiguously")
