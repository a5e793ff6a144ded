package summary

import (
	"math"
	"sort"
)

var nan = math.NaN()

// Median sorts values in place and returns their median.  For an even number
// of values it is the truncated mean of the two middle ones.  ok is false if
// values is empty.
func Median(values []int64) (median float64, ok bool) {
	n := len(values)
	if n == 0 {
		return 0, false
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	if n%2 == 1 {
		return float64(values[n/2]), true
	}
	return float64(midpoint(values[n/2-1], values[n/2])), true
}

// midpoint returns (a+b)/2, truncated toward zero, without overflowing.
func midpoint(a, b int64) int64 {
	if (a < 0) != (b < 0) {
		return (a + b) / 2
	}
	return a/2 + b/2 + (a%2+b%2)/2
}

// Mean returns total/n with integer truncation, or NaN if n is zero.
func Mean(total, n int64) float64 {
	if n == 0 {
		return nan
	}
	return float64(total / n)
}
