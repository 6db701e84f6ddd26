package fastq

import "bytes"

// lineStartAtOrAfter returns the offset of the first line boundary at or
// after pos, or -1 if b does not contain one (more data is needed).
func lineStartAtOrAfter(b []byte, pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos <= len(b) && b[pos-1] == '\n' {
		return pos
	}
	if pos >= len(b) {
		return -1
	}
	i := bytes.IndexByte(b[pos:], '\n')
	if i < 0 {
		return -1
	}
	return pos + i + 1
}

// nextLineStart returns the offset just past the next '\n' at or after from,
// or -1 if none is present yet.
func nextLineStart(b []byte, from int) int {
	if from >= len(b) {
		return -1
	}
	i := bytes.IndexByte(b[from:], '\n')
	if i < 0 {
		return -1
	}
	return from + i + 1
}

// findRecordBoundary scans b starting at the first line at or after
// minOffset, looking for a FASTQ record header: a line beginning with '@'
// whose line at relative offset +2 (the separator line) begins with '+'
// (spec §4.3). It returns the header line's start offset and true on
// success; it returns (-1, false) when b is exhausted before a boundary
// could be confirmed, meaning the caller must supply more bytes (or treat
// the remainder as a final, possibly truncated, chunk).
func findRecordBoundary(b []byte, minOffset int) (int, bool) {
	cand := lineStartAtOrAfter(b, minOffset)
	for cand >= 0 && cand < len(b) {
		if b[cand] == '@' {
			seqStart := nextLineStart(b, cand)
			if seqStart < 0 {
				return -1, false
			}
			sepStart := nextLineStart(b, seqStart)
			if sepStart < 0 {
				return -1, false
			}
			if sepStart < len(b) && b[sepStart] == '+' {
				return cand, true
			}
		}
		nxt := nextLineStart(b, cand)
		if nxt < 0 {
			return -1, false
		}
		cand = nxt
	}
	return -1, false
}
