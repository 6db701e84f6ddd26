package qcmetrics

// Verdict is a module's PASS/WARN/FAIL call (spec §4.7, §9 open question
// (a): thresholds are "partially community-convention" and must be fixed
// here, not left to the renderer).
type Verdict int

const (
	Pass Verdict = iota
	Warn
	Fail
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "PASS"
	case Warn:
		return "WARN"
	case Fail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// Threshold constants for every module, fixed once here so they do not
// depend on thread count or runtime (spec §4.7).
const (
	perBaseQualityWarnLowerQuartile = 10
	perBaseQualityFailLowerQuartile = 5

	perSeqQualityWarnModeBelow = 27
	perSeqQualityFailModeBelow = 20

	gcWarnDeviationPct = 15.0
	gcFailDeviationPct = 30.0

	nContentWarnPct = 5.0
	nContentFailPct = 20.0

	seqLengthWarnVariable = true // WARN whenever lengths are not uniform

	dupWarnNonUniqueFraction = 0.20
	dupFailNonUniqueFraction = 0.50

	overrepWarnPresent = true // WARN whenever any entry qualifies, FAIL is never automatic

	adapterWarnFraction = 0.05
	adapterFailFraction = 0.10

	// kmerWarnRatio is not applied: ComputeVerdicts always reports Kmer
	// as Pass.
	kmerWarnRatio = 5.0
)

// ModuleVerdicts holds the PASS/WARN/FAIL result for every module present
// in the run's mode (spec §3: "FinalMetrics ... Includes per-module
// PASS/WARN/FAIL").
type ModuleVerdicts struct {
	PerBaseQuality  Verdict
	PerSeqQuality   Verdict
	PerBaseContent  Verdict
	PerSeqGC        Verdict
	PerBaseN        Verdict
	SeqLength       Verdict
	Duplication     Verdict
	Overrepresented Verdict
	Adapter         Verdict
	Kmer            Verdict
}

func worst(a, b Verdict) Verdict {
	if b > a {
		return b
	}
	return a
}

// ComputeVerdicts derives every module's PASS/WARN/FAIL from a fully
// merged Aggregate, against the fixed thresholds above (spec §4.7). A
// module whose aggregator is nil (toggled off) is left at its zero value
// (Pass) since it does not appear in the report at all.
func ComputeVerdicts(a *Aggregate, basic BasicStats) ModuleVerdicts {
	var v ModuleVerdicts

	if a.Quality != nil {
		for p := range a.Quality.PerPosition {
			lq := a.Quality.LowerQuartileAt(p)
			switch {
			case lq < perBaseQualityFailLowerQuartile:
				v.PerBaseQuality = Fail
			case lq < perBaseQualityWarnLowerQuartile:
				v.PerBaseQuality = worst(v.PerBaseQuality, Warn)
			}
		}
	}

	v.PerSeqQuality = verdictFromMode(a.Quality)

	if a.Base != nil {
		v.PerBaseContent = verdictPerBaseContent(a.Base)
	}

	v.PerSeqGC = verdictGC(a.GC, basic.GCPercent)

	if a.NPerRead != nil {
		v.PerBaseN = verdictNContent(a.NPerRead)
	}

	v.SeqLength = verdictLength(basic.MinLength, basic.MaxLength)

	if a.Dup != nil {
		v.Duplication = verdictDuplication(a.Dup, basic.TotalReads)
	}

	if a.Overrep != nil {
		if len(a.Overrep.Report(basic.TotalReads)) > 0 {
			v.Overrepresented = Warn
		}
	}

	if a.Adapt != nil {
		v.Adapter = verdictAdapter(a.Adapt, basic.TotalReads)
	}

	if a.Kmer != nil {
		v.Kmer = Pass // reported as a ranked list; no automatic WARN/FAIL
	}

	return v
}

func verdictFromMode(q *Quality) Verdict {
	if q == nil {
		return Pass
	}
	mode := 0
	best := int64(-1)
	for score, c := range q.MeanHist {
		if c > best {
			best, mode = c, score
		}
	}
	switch {
	case mode < perSeqQualityFailModeBelow:
		return Fail
	case mode < perSeqQualityWarnModeBelow:
		return Warn
	default:
		return Pass
	}
}

func verdictPerBaseContent(b *BaseContent) Verdict {
	var v Verdict
	for p, row := range b.Counts {
		depth := b.DepthAt(p)
		if depth == 0 {
			continue
		}
		a := float64(row[baseA]) / float64(depth) * 100
		t := float64(row[baseT]) / float64(depth) * 100
		g := float64(row[baseG]) / float64(depth) * 100
		c := float64(row[baseC]) / float64(depth) * 100
		if absf(a-t) > gcFailDeviationPct || absf(g-c) > gcFailDeviationPct {
			v = Fail
		} else if absf(a-t) > gcWarnDeviationPct || absf(g-c) > gcWarnDeviationPct {
			v = worst(v, Warn)
		}
	}
	return v
}

func verdictGC(gc *GC, observedPercent float64) Verdict {
	// A theoretical GC distribution is not modeled here (it is organism-
	// specific, spec non-goal territory); deviation is instead judged
	// against the trivially symmetric expectation of 50%, the convention
	// used when no reference composition is supplied.
	dev := absf(observedPercent - 50)
	switch {
	case dev > gcFailDeviationPct:
		return Fail
	case dev > gcWarnDeviationPct:
		return Warn
	default:
		return Pass
	}
}

func verdictNContent(n *NContent) Verdict {
	var total, weighted int64
	for pct, c := range n.Hist {
		total += c
		weighted += int64(pct) * c
	}
	if total == 0 {
		return Pass
	}
	avg := float64(weighted) / float64(total)
	switch {
	case avg > nContentFailPct:
		return Fail
	case avg > nContentWarnPct:
		return Warn
	default:
		return Pass
	}
}

func verdictLength(min, max int) Verdict {
	if min != max {
		return Warn
	}
	return Pass
}

func verdictDuplication(d *Duplication, totalReads int64) Verdict {
	if totalReads == 0 {
		return Pass
	}
	var uniqueMass int64
	for _, e := range d.Full.TopK.Entries() {
		if e.Count <= 1 {
			continue
		}
		uniqueMass += int64(e.Count) - 1 // non-unique reads beyond the first occurrence
	}
	frac := float64(uniqueMass) / float64(totalReads)
	switch {
	case frac > dupFailNonUniqueFraction:
		return Fail
	case frac > dupWarnNonUniqueFraction:
		return Warn
	default:
		return Pass
	}
}

func verdictAdapter(a *Adapter, totalReads int64) Verdict {
	var v Verdict
	for _, curve := range a.Report(totalReads) {
		if len(curve.PerBase) == 0 {
			continue
		}
		max := curve.PerBase[len(curve.PerBase)-1]
		for _, f := range curve.PerBase {
			if f > max {
				max = f
			}
		}
		switch {
		case max > adapterFailFraction:
			v = Fail
		case max > adapterWarnFraction:
			v = worst(v, Warn)
		}
	}
	return v
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
