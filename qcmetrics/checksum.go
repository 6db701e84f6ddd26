package qcmetrics

import "blainsmith.com/go/seahash"

// readChecksum folds one read's sequence and quality string into a
// single order-independent value: seahash of seq||qual, summed into the
// running total rather than chained, so Merge can combine partials with
// plain uint64 addition regardless of chunk or worker order (mirrors the
// commutative per-record hashField/SumSeq accumulation bio-pamtool's
// checksum command uses to verify BAM content across re-sorted shards).
func readChecksum(seq, qual []byte) uint64 {
	h := seahash.New()
	h.Write(seq)
	h.Write(qual)
	return h.Sum64()
}
