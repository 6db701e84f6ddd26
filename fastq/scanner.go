package fastq

import "bytes"

// Scanner parses a Chunk's bytes into successive Reads (C4, spec §4.4). It
// validates structure as it goes: header lines begin with '@', separator
// lines begin with '+', sequence and quality lines agree in length, and no
// line contains an embedded NUL. Scanner is not threadsafe; a worker
// creates one per Chunk it processes.
type Scanner struct {
	data       []byte
	pos        int
	chunkIndex int64
	err        error
}

// NewScanner constructs a Scanner over chunk's bytes.
func NewScanner(chunk Chunk) *Scanner {
	return &Scanner{data: chunk.Data, chunkIndex: chunk.Index}
}

// Scan reads the next record into read, reporting whether it succeeded.
// Once Scan returns false, it never returns true again; call Err to
// distinguish a clean end of chunk from a parse error. read's fields alias
// the Chunk's underlying array and must not outlive it.
func (s *Scanner) Scan(read *Read) bool {
	if s.err != nil || s.pos >= len(s.data) {
		return false
	}

	hdrOff := s.pos
	hdr, ok := s.nextLine()
	if !ok {
		s.fail(hdrOff, "truncated record: missing header line")
		return false
	}
	if len(hdr) == 0 || hdr[0] != '@' {
		s.fail(hdrOff, "header line does not begin with '@'")
		return false
	}
	if bytes.IndexByte(hdr, 0) >= 0 {
		s.fail(hdrOff, "header line contains an embedded NUL")
		return false
	}

	seqOff := s.pos
	seq, ok := s.nextLine()
	if !ok {
		s.fail(seqOff, "truncated record: missing sequence line")
		return false
	}
	if bytes.IndexByte(seq, 0) >= 0 {
		s.fail(seqOff, "sequence line contains an embedded NUL")
		return false
	}

	sepOff := s.pos
	sep, ok := s.nextLine()
	if !ok {
		s.fail(sepOff, "truncated record: missing separator line")
		return false
	}
	if len(sep) == 0 || sep[0] != '+' {
		s.fail(sepOff, "separator line does not begin with '+'")
		return false
	}
	if bytes.IndexByte(sep, 0) >= 0 {
		s.fail(sepOff, "separator line contains an embedded NUL")
		return false
	}

	qualOff := s.pos
	qual, ok := s.nextLine()
	if !ok {
		s.fail(qualOff, "truncated record: missing quality line")
		return false
	}
	if bytes.IndexByte(qual, 0) >= 0 {
		s.fail(qualOff, "quality line contains an embedded NUL")
		return false
	}
	if len(seq) != len(qual) {
		s.err = &LengthMismatchError{
			ChunkIndex: s.chunkIndex,
			Offset:     int64(seqOff),
			SeqLen:     len(seq),
			QualLen:    len(qual),
		}
		return false
	}

	read.ID = hdr
	read.Seq = seq
	read.Qual = qual
	return true
}

func (s *Scanner) fail(offset int, reason string) {
	s.err = &ParseError{ChunkIndex: s.chunkIndex, Offset: int64(offset), Reason: reason}
}

// nextLine returns the next line with any CRLF terminator stripped,
// advancing past it. ok is false only when no bytes remain at all; a final
// line lacking a trailing newline (valid at end of input, spec §4.4) is
// still returned with ok true.
func (s *Scanner) nextLine() ([]byte, bool) {
	if s.pos >= len(s.data) {
		return nil, false
	}
	rest := s.data[s.pos:]
	i := bytes.IndexByte(rest, '\n')
	var end, next int
	if i < 0 {
		end, next = len(rest), len(rest)
	} else {
		end, next = i, i+1
	}
	line := rest[:end]
	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}
	s.pos += next
	return line, true
}

// Err returns the error that stopped Scan, if any.
func (s *Scanner) Err() error { return s.err }

// ValidateQuality checks that every byte of qual, interpreted under
// phredBase (33 or 64), decodes to a Phred score in [0, 93] (spec §3). It
// is called by workers once the offset has been determined by Probe,
// independently of structural parsing.
func ValidateQuality(qual []byte, phredBase int, chunkIndex, offset int64) error {
	for _, b := range qual {
		score := int(b) - phredBase
		if score < 0 || score > 93 {
			return &QualityOutOfRangeError{
				ChunkIndex: chunkIndex,
				Offset:     offset,
				Byte:       b,
				PhredBase:  phredBase,
			}
		}
	}
	return nil
}
