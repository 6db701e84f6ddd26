package catalog

import "github.com/grailbio/fastqc/util"

// NoHit is reported when no catalog entry matches within tolerance.
const NoHit = "No Hit"

// Match finds the best-matching contaminant for seq, requiring the
// catalog entry and seq to agree up to the entry's own length within
// Hamming distance <= 1 (spec §4.6: "Hamming distance <= 1 over the
// entry's length"). It returns NoHit if nothing qualifies. Ties are
// broken by catalog order, mirroring the deterministic tiebreak
// discipline used throughout the reducer.
func Match(seq []byte) string {
	best := NoHit
	bestDist := 2 // anything > 1 never qualifies
	for _, c := range Contaminants() {
		n := len(c.Sequence)
		if len(seq) < n {
			continue
		}
		// A contaminant typically appears as a read prefix (adapter
		// read-through); check that alignment cheaply before falling back
		// to a full scan. Reads shorter than the entry were skipped above.
		if d := util.HammingBytes(seq[:n], c.Sequence); d <= 1 && d < bestDist {
			best, bestDist = c.Name, d
			continue
		}
		// A single indel near the start of the read shifts every
		// downstream base under a pure Hamming compare, which would
		// otherwise mask an obvious contaminant. Re-check the prefix
		// alignment with edit distance, feeding the read's own next few
		// bases as extension context the same way umi correction feeds
		// downstream bases past a barcode.
		if d := prefixEditDistance(seq, c.Sequence); d <= 1 && d < bestDist {
			best, bestDist = c.Name, d
			continue
		}
		if len(seq) == n {
			continue
		}
		for start := 1; start+n <= len(seq); start++ {
			if d := util.HammingBytes(seq[start:start+n], c.Sequence); d <= 1 && d < bestDist {
				best, bestDist = c.Name, d
				break
			}
		}
	}
	return best
}

// prefixEditDistance is the Levenshtein distance between seq's first
// len(ref) bases and ref, extended with a short run of seq's own
// downstream bases as context so a single indel in the prefix doesn't
// need len(seq) == len(ref) to be found. The catalog entry itself has no
// downstream context to offer back, so its extension is empty.
func prefixEditDistance(seq, ref []byte) int {
	n := len(ref)
	extEnd := n + 8
	if extEnd > len(seq) {
		extEnd = len(seq)
	}
	return util.Levenshtein(string(seq[:n]), string(ref), string(seq[n:extEnd]), "")
}
