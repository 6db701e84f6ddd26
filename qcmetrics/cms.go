package qcmetrics

import (
	"encoding/binary"

	"github.com/minio/highwayhash"
)

// cmsRows is the fixed sketch depth used by every Count-Min Sketch in this
// package (duplication, overrepresented, k-mer), per spec §3/§4.6.
const cmsRows = 4

// cmsKeys are the fixed 32-byte HighwayHash keys for the cmsRows
// independent hash functions. They are constants, not randomized, so that
// CMS estimates (and therefore FinalMetrics) are reproducible across runs
// and across processes (spec §4.6: "independent hash seeds fixed by
// constant").
var cmsKeys = [cmsRows][32]byte{
	{0x4d, 0x61, 0x72, 0x79, 0x41, 0x6e, 0x6e, 0x65, 0x21, 0x17, 0x38, 0x92, 0xab, 0xcd, 0xef, 0x01,
		0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10, 0x11},
	{0x42, 0x61, 0x73, 0x65, 0x50, 0x61, 0x69, 0x72, 0x22, 0x18, 0x39, 0x93, 0xac, 0xce, 0xf0, 0x12,
		0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e, 0x1f, 0x20, 0x21, 0x22},
	{0x51, 0x75, 0x61, 0x6c, 0x53, 0x63, 0x6f, 0x72, 0x23, 0x19, 0x3a, 0x94, 0xad, 0xcf, 0xf1, 0x23,
		0x24, 0x25, 0x26, 0x27, 0x28, 0x29, 0x2a, 0x2b, 0x2c, 0x2d, 0x2e, 0x2f, 0x30, 0x31, 0x32, 0x33},
	{0x4b, 0x6d, 0x65, 0x72, 0x54, 0x61, 0x62, 0x6c, 0x24, 0x1a, 0x3b, 0x95, 0xae, 0xd0, 0xf2, 0x34,
		0x35, 0x36, 0x37, 0x38, 0x39, 0x3a, 0x3b, 0x3c, 0x3d, 0x3e, 0x3f, 0x40, 0x41, 0x42, 0x43, 0x44},
}

// CMS is a Count-Min Sketch over 64-bit fingerprints: it never
// underestimates a true count (spec §8, invariant 6).
type CMS struct {
	Width int
	Rows  [cmsRows][]uint32
}

// NewCMS constructs a CMS with the given width; width is rounded up by the
// caller to whatever power of two the module requires.
func NewCMS(width int) *CMS {
	c := &CMS{Width: width}
	for i := range c.Rows {
		c.Rows[i] = make([]uint32, width)
	}
	return c
}

func (c *CMS) index(row int, fp uint64) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], fp)
	h := highwayhash.Sum64(buf[:], cmsKeys[row][:])
	return int(h % uint64(c.Width))
}

// Add increments the estimate for fp by delta.
func (c *CMS) Add(fp uint64, delta uint32) {
	for row := 0; row < cmsRows; row++ {
		idx := c.index(row, fp)
		c.Rows[row][idx] += delta
	}
}

// Estimate returns the minimum count across all rows for fp, the CMS
// point estimate.
func (c *CMS) Estimate(fp uint64) uint32 {
	min := uint32(0xffffffff)
	for row := 0; row < cmsRows; row++ {
		v := c.Rows[row][c.index(row, fp)]
		if v < min {
			min = v
		}
	}
	return min
}

// Merge adds other's counts into c. Both must have equal Width (every
// chunk's CMS is constructed with the same fixed width, spec §3).
func (c *CMS) Merge(other *CMS) {
	if other == nil {
		return
	}
	for row := 0; row < cmsRows; row++ {
		for i, v := range other.Rows[row] {
			c.Rows[row][i] += v
		}
	}
}
