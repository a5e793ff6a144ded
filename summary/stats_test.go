package summary

import (
	"math"
	"math/rand"
	"testing"

	"github.com/grailbio/testutil/expect"
	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		values []int64
		want   float64
	}{
		{[]int64{400}, 400},
		{[]int64{300, 100, 200}, 200},
		{[]int64{4, 1}, 2},
		{[]int64{1, 2, 3, 4}, 2},
		{[]int64{0, 0, 0, 1}, 0},
		{[]int64{7, 7, 7}, 7},
		{[]int64{-3, 4}, 0},
		{[]int64{-3, -5}, -4},
		{[]int64{math.MaxInt64, math.MaxInt64 - 2}, float64(int64(math.MaxInt64 - 1))},
		{[]int64{math.MaxInt64, math.MaxInt64}, float64(int64(math.MaxInt64))},
		{[]int64{math.MinInt64, math.MinInt64 + 2}, float64(int64(math.MinInt64 + 1))},
	}
	for _, test := range tests {
		got, ok := Median(test.values)
		expect.True(t, ok)
		expect.EQ(t, got, test.want, "median %v", test.values)
	}
	_, ok := Median(nil)
	expect.False(t, ok)
}

// TestMedianRandom compares Median against an independent implementation.
// Values are nonnegative, so integer truncation equals math.Floor.
func TestMedianRandom(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for iter := 0; iter < 200; iter++ {
		n := 1 + r.Intn(50)
		values := make([]int64, n)
		floats := make(stats.Float64Data, n)
		for i := range values {
			values[i] = r.Int63n(1 << 30)
			floats[i] = float64(values[i])
		}
		want, err := stats.Median(floats)
		require.NoError(t, err)
		got, ok := Median(values)
		expect.True(t, ok)
		expect.EQ(t, got, math.Floor(want), "median %v", values)
	}
}

func TestMidpoint(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for iter := 0; iter < 1000; iter++ {
		a, b := r.Int63n(1<<40)-1<<39, r.Int63n(1<<40)-1<<39
		expect.EQ(t, midpoint(a, b), (a+b)/2, "midpoint(%d, %d)", a, b)
	}
	expect.EQ(t, midpoint(math.MaxInt64, math.MaxInt64-1), int64(math.MaxInt64-1))
	expect.EQ(t, midpoint(math.MinInt64, math.MinInt64), int64(math.MinInt64))
}

func TestMean(t *testing.T) {
	expect.EQ(t, Mean(600, 3), 200.0)
	expect.EQ(t, Mean(802, 4), 200.0)
	expect.EQ(t, Mean(0, 5), 0.0)
	expect.True(t, math.IsNaN(Mean(0, 0)))
}
