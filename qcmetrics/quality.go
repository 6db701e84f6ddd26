package qcmetrics

import "github.com/grailbio/fastqc/biosimd"

// phredBins is the width of every Phred-score histogram (spec §3: scores
// lie in [0, 93]).
const phredBins = 94

// Quality holds the per-position quality histograms and the per-read mean
// quality histogram (C5 "per-base sequence quality", "per-sequence
// quality scores").
type Quality struct {
	PerPosition [][phredBins]int64
	MeanHist    [phredBins]int64
}

// Add tallies one read's quality line, already decoded against phredBase.
// The scatter into PerPosition and the running sum both come from package
// biosimd, which picks between a scalar loop and an AVX2-gated wide loop.
func (q *Quality) Add(qual []byte, phredBase int) {
	q.growTo(len(qual))
	sum := biosimd.ScatterQuality(qual, phredBase, q.PerPosition[:len(qual)])
	if len(qual) == 0 {
		return
	}
	mean := roundHalfToEven(sum, int64(len(qual)))
	if mean < 0 {
		mean = 0
	}
	if mean >= phredBins {
		mean = phredBins - 1
	}
	q.MeanHist[mean]++
}

func (q *Quality) growTo(n int) {
	if len(q.PerPosition) >= n {
		return
	}
	grown := make([][phredBins]int64, n)
	copy(grown, q.PerPosition)
	q.PerPosition = grown
}

// Merge adds other's histograms into q.
func (q *Quality) Merge(other *Quality) {
	if other == nil {
		return
	}
	q.growTo(len(other.PerPosition))
	for i, row := range other.PerPosition {
		for s := 0; s < phredBins; s++ {
			q.PerPosition[i][s] += row[s]
		}
	}
	for s := 0; s < phredBins; s++ {
		q.MeanHist[s] += other.MeanHist[s]
	}
}

// LowerQuartileAt returns the lower-quartile Phred score observed at
// position p, used by the per-base-quality verdict (spec §4.7).
func (q *Quality) LowerQuartileAt(p int) int {
	if p >= len(q.PerPosition) {
		return 0
	}
	row := q.PerPosition[p]
	var total int64
	for _, c := range row {
		total += c
	}
	if total == 0 {
		return 0
	}
	target := (total + 3) / 4 // ceil(total/4)
	var cum int64
	for score, c := range row {
		cum += c
		if cum >= target {
			return score
		}
	}
	return phredBins - 1
}
