// Package bloom provides probabilistic page deduplication for
// cross-location nearby aggregation.
package bloom

import (
	"github.com/bits-and-blooms/bloom/v3"
	"github.com/dtomczyk/placelist"
)

// PageFilter tracks which pages have already been seen. False positives
// are possible (a new page is very occasionally dropped); false
// negatives are not.
type PageFilter struct {
	f *bloom.BloomFilter
}

// NewPageFilter creates a filter sized for n expected pages with the
// given false positive rate.
func NewPageFilter(n uint, fpRate float64) *PageFilter {
	return &PageFilter{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Add marks a page as seen.
func (pf *PageFilter) Add(p *placelist.Page) {
	pf.f.AddString(p.Key())
}

// Seen returns true if the page might have been added before.
func (pf *PageFilter) Seen(p *placelist.Page) bool {
	return pf.f.TestString(p.Key())
}

// EstimatedCount returns the approximate number of pages in the filter.
func (pf *PageFilter) EstimatedCount() uint {
	return uint(pf.f.ApproximatedSize())
}
