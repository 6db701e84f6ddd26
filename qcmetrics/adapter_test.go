package qcmetrics

import (
	"testing"

	"github.com/grailbio/fastqc/catalog"
	"github.com/stretchr/testify/assert"
)

func TestAdapterAddAndReport(t *testing.T) {
	adapters := []catalog.Adapter{{Name: "TestAdapter", Sequence: []byte("AGATCGGAAGAGC")}}

	a := NewAdapter()
	// Adapter starts at position 5 in this read.
	read := []byte("ACGTTAGATCGGAAGAGCACGT")
	a.Add(read, adapters)

	report := a.Report(1)
	assert.Len(t, report, 1)
	assert.Equal(t, "TestAdapter", report[0].Name)
	assert.InDelta(t, 1.0, report[0].PerBase[5], 1e-9)
	assert.InDelta(t, 0.0, report[0].PerBase[0], 1e-9)
}

func TestAdapterReportSortedByName(t *testing.T) {
	adapters := []catalog.Adapter{
		{Name: "Zeta", Sequence: []byte("AAAAAAAA")},
		{Name: "Alpha", Sequence: []byte("CCCCCCCC")},
	}
	a := NewAdapter()
	a.Add([]byte("AAAAAAAACCCCCCCC"), adapters)

	report := a.Report(1)
	assert.Len(t, report, 2)
	assert.Equal(t, "Alpha", report[0].Name)
	assert.Equal(t, "Zeta", report[1].Name)
}

func TestAdapterMerge(t *testing.T) {
	adapters := []catalog.Adapter{{Name: "TestAdapter", Sequence: []byte("AGATCGGAAGAGC")}}
	read := []byte("AGATCGGAAGAGCACGT")

	a := NewAdapter()
	a.Add(read, adapters)
	b := NewAdapter()
	b.Add(read, adapters)

	a.Merge(b)
	report := a.Report(2)
	assert.InDelta(t, 1.0, report[0].PerBase[0], 1e-9)
}

func TestAdapterReportEmptyWhenNoReads(t *testing.T) {
	a := NewAdapter()
	assert.Nil(t, a.Report(0))
}
