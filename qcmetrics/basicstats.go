package qcmetrics

// BasicStats holds the totals every report leads with, all of which are
// derivable from Aggregate rather than tracked separately (spec §4.5
// "Basic statistics").
type BasicStats struct {
	TotalReads  int64
	TotalBases  int64
	GCPercent   float64
	PhredOffset int
	MinLength   int
	MaxLength   int
	N50         int
	N90         int
}

// ComputeBasicStats derives BasicStats from a fully merged Aggregate.
func ComputeBasicStats(a *Aggregate, phredOffset int) BasicStats {
	var gcReads, gcTotal int64
	for pct, c := range a.GC.Hist {
		gcTotal += c
		gcReads += int64(pct) * c
	}
	var gcPercent float64
	if gcTotal > 0 {
		gcPercent = float64(gcReads) / float64(gcTotal)
	}
	n50, n90 := a.Length.N50N90()
	return BasicStats{
		TotalReads:  a.NReads,
		TotalBases:  a.NBases,
		GCPercent:   gcPercent,
		PhredOffset: phredOffset,
		MinLength:   a.Length.Min,
		MaxLength:   a.Length.Max,
		N50:         n50,
		N90:         n90,
	}
}
