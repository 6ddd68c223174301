package parallel

import (
	"math/bits"
	"sync/atomic"
)

// DoneSet records which tiles have finished shading, using an atomic bitmap.
//
// One bit per tile, packed into uint64 words. Workers mark their own tile
// concurrently; all methods are safe for concurrent use.
type DoneSet struct {
	words []atomic.Uint64
	total int
}

// NewDoneSet creates a set for total tiles, all initially unfinished.
// Returns nil if total is not positive.
func NewDoneSet(total int) *DoneSet {
	if total <= 0 {
		return nil
	}
	return &DoneSet{
		words: make([]atomic.Uint64, (total+63)/64),
		total: total,
	}
}

// Mark records tile idx as finished. Out-of-range indices are ignored.
func (d *DoneSet) Mark(idx int) {
	if idx < 0 || idx >= d.total {
		return
	}
	d.words[idx/64].Or(1 << (idx & 63))
}

// IsDone reports whether tile idx has been marked.
func (d *DoneSet) IsDone(idx int) bool {
	if idx < 0 || idx >= d.total {
		return false
	}
	return d.words[idx/64].Load()&(1<<(idx&63)) != 0
}

// Count returns the number of finished tiles.
func (d *DoneSet) Count() int {
	count := 0
	for i := range d.words {
		count += bits.OnesCount64(d.words[i].Load())
	}
	return count
}

// Complete reports whether every tile has been marked.
func (d *DoneSet) Complete() bool {
	return d.Count() == d.total
}

// Missing returns the indices of unfinished tiles in ascending order.
func (d *DoneSet) Missing() []int {
	var missing []int
	for idx := range d.total {
		if !d.IsDone(idx) {
			missing = append(missing, idx)
		}
	}
	return missing
}

// Reset marks every tile as unfinished.
func (d *DoneSet) Reset() {
	for i := range d.words {
		d.words[i].Store(0)
	}
}

// Total returns the number of tiles tracked.
func (d *DoneSet) Total() int {
	return d.total
}
