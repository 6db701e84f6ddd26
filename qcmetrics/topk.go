package qcmetrics

import "github.com/biogo/store/llrb"

// topKEntry is a single heavy-hitter candidate. Compare orders entries
// ascending by (count, then fingerprint descending), so the tree's
// minimum is always the weakest surviving entry: the one evicted when
// capacity is exceeded (spec §4.6, §9: "retain top-K by estimated count
// descending, fingerprint bytes ascending as tiebreak").
type topKEntry struct {
	FP      uint64
	Count   uint64
	Payload []byte
}

func (e *topKEntry) Compare(c llrb.Comparable) int {
	o := c.(*topKEntry)
	switch {
	case e.Count < o.Count:
		return -1
	case e.Count > o.Count:
		return 1
	case e.FP > o.FP:
		return -1
	case e.FP < o.FP:
		return 1
	default:
		return 0
	}
}

// TopK is a fixed-capacity heavy-hitter set keyed by 64-bit fingerprint,
// ordered as documented on topKEntry (spec §3, §4.6, §4.7).
type TopK struct {
	Capacity int
	tree     llrb.Tree
	byFP     map[uint64]*topKEntry
}

// NewTopK constructs an empty TopK of the given capacity.
func NewTopK(capacity int) *TopK {
	return &TopK{Capacity: capacity, byFP: make(map[uint64]*topKEntry, capacity)}
}

// Offer admits (fp, count, payload) into the set, evicting the current
// weakest entry if the set is now over capacity. payload is attached only
// when the fingerprint is newly admitted; it is meant to hold a small
// representative value (e.g. the first 50bp of a matching read) and is not
// overwritten on a later count update.
func (t *TopK) Offer(fp uint64, count uint64, payload []byte) {
	if e, ok := t.byFP[fp]; ok {
		t.tree.Delete(e)
		e.Count = count
		t.tree.Insert(e)
		return
	}
	e := &topKEntry{FP: fp, Count: count, Payload: payload}
	t.byFP[fp] = e
	t.tree.Insert(e)
	if t.Capacity > 0 && t.tree.Len() > t.Capacity {
		removed := t.tree.DeleteMin()
		if re, ok := removed.(*topKEntry); ok {
			delete(t.byFP, re.FP)
		}
	}
}

// Len returns the number of entries currently held.
func (t *TopK) Len() int { return t.tree.Len() }

// Entries returns the held entries ordered by count descending, then
// fingerprint ascending (the presentation order for every module that
// reports a top-K list).
func (t *TopK) Entries() []topKEntry {
	out := make([]topKEntry, 0, t.tree.Len())
	t.tree.Do(func(c llrb.Comparable) bool {
		out = append(out, *c.(*topKEntry))
		return false
	})
	// tree.Do visits in ascending Compare order, i.e. weakest first;
	// reverse it so callers see strongest first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// fingerprints reports every fingerprint currently held, with its
// payload (possibly nil).
func (t *TopK) fingerprints(into map[uint64][]byte) {
	t.tree.Do(func(c llrb.Comparable) bool {
		e := c.(*topKEntry)
		if _, ok := into[e.FP]; !ok {
			into[e.FP] = e.Payload
		}
		return false
	})
}

// MergeTopK rebuilds a capacity-K TopK from the union of ks, re-estimating
// every surviving fingerprint's count against cms (the already-merged
// sketch) rather than trusting any single partial's stale estimate. The
// result does not depend on the order the inputs are supplied in: greedy
// admission under a total order (topKEntry.Compare, unique per
// fingerprint) always converges to the same K winners (spec §9).
func MergeTopK(capacity int, cms *CMS, ks ...*TopK) *TopK {
	seen := make(map[uint64][]byte)
	for _, k := range ks {
		if k != nil {
			k.fingerprints(seen)
		}
	}
	out := NewTopK(capacity)
	for fp, payload := range seen {
		out.Offer(fp, uint64(cms.Estimate(fp)), payload)
	}
	return out
}
