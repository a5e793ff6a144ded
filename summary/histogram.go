package summary

// DefaultBinCount is the number of histogram bins in the report.
const DefaultBinCount = 10

// Histogram counts values in BinCount bins of width BinWidth starting at
// MinVal.
type Histogram struct {
	BinCount int
	MinVal   int64
	MaxVal   int64
	// BinWidth is (MaxVal-MinVal)/BinCount, truncated.  Because of the
	// truncation the last bin also receives every value past
	// MinVal+BinCount*BinWidth.
	BinWidth int64
	// BinCounts has BinCount elements.  It is all zeros if there are no
	// values or BinWidth is zero.
	BinCounts []int64
}

// NewHistogram bins values.  values is not modified.
func NewHistogram(values []int64, binCount int) Histogram {
	if binCount < 0 {
		binCount = 0
	}
	h := Histogram{
		BinCount:  binCount,
		BinCounts: make([]int64, binCount),
	}
	if len(values) == 0 || binCount == 0 {
		return h
	}
	h.MinVal, h.MaxVal = values[0], values[0]
	for _, v := range values[1:] {
		if v < h.MinVal {
			h.MinVal = v
		}
		if v > h.MaxVal {
			h.MaxVal = v
		}
	}
	h.BinWidth = (h.MaxVal - h.MinVal) / int64(binCount)
	if h.BinWidth == 0 {
		return h
	}
	last := int64(binCount - 1)
	for _, v := range values {
		idx := (v - h.MinVal) / h.BinWidth
		if idx > last {
			idx = last
		}
		h.BinCounts[idx]++
	}
	return h
}

// Total returns the sum of BinCounts.
func (h *Histogram) Total() int64 {
	var n int64
	for _, c := range h.BinCounts {
		n += c
	}
	return n
}
