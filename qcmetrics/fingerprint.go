package qcmetrics

import farm "github.com/dgryski/go-farm"

// Fixed seeds keep fingerprint spaces for different variants independent
// even when the underlying bytes happen to coincide (spec §4.6: "hash to
// 64-bit").
const (
	seedFirst50 = 0x46697273743530 // "First50" packed, arbitrary but fixed
	seedFull    = 0x46756c6c       // "Full" packed, arbitrary but fixed
)

// first50 returns the first 50bp of seq, or all of seq if shorter (spec
// §4.6: "first 50 bp and full-length variants").
func first50(seq []byte) []byte {
	if len(seq) > 50 {
		return seq[:50]
	}
	return seq
}

func fingerprintFirst50(seq []byte) uint64 {
	return farm.Hash64WithSeed(first50(seq), seedFirst50)
}

func fingerprintFull(seq []byte) uint64 {
	return farm.Hash64WithSeed(seq, seedFull)
}
