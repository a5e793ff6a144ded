package summary

import (
	"github.com/grailbio/bedpe/encoding/bedpe"
)

// Summary accumulates counts over BEDPE records.  The zero value is ready to
// use.  A Summary is not thread safe; use Merge to combine summaries built
// separately.
type Summary struct {
	// Inversion, Insertion and Deletion count intra-chromosomal records by
	// strand orientation.  Their sum is at most NIntraChrom.
	Inversion int64
	Insertion int64
	Deletion  int64

	// NInterChrom counts records whose ends lie on different chromosomes.
	NInterChrom int64
	// NIntraChrom counts records whose ends lie on the same chromosome.
	NIntraChrom int64

	// TotalDistance is the sum of Distance over intra-chromosomal records.
	TotalDistance int64

	// distances holds Distance of every intra-chromosomal record, in input
	// order until Report sorts it.
	distances []int64
}

// Distance returns |start2 - start1|.
func Distance(r *bedpe.Record) int64 {
	d := r.Start2 - r.Start1
	if d < 0 {
		return -d
	}
	return d
}

// Add classifies r and updates the counters.
func (s *Summary) Add(r *bedpe.Record) {
	if !r.SameChrom() {
		s.NInterChrom++
		return
	}
	s.NIntraChrom++
	d := Distance(r)
	s.distances = append(s.distances, d)
	s.TotalDistance += d

	// Equal strands must be checked first.
	if r.Strand1 == r.Strand2 {
		s.Inversion++
	} else if r.Strand1 == bedpe.StrandPlus && r.Strand2 == bedpe.StrandMinus {
		s.Deletion++
	} else if r.Strand1 == bedpe.StrandMinus && r.Strand2 == bedpe.StrandPlus {
		s.Insertion++
	}
}

// Merge adds the counts and distances in other to s.
func (s *Summary) Merge(other *Summary) {
	s.Inversion += other.Inversion
	s.Insertion += other.Insertion
	s.Deletion += other.Deletion
	s.NInterChrom += other.NInterChrom
	s.NIntraChrom += other.NIntraChrom
	s.TotalDistance += other.TotalDistance
	s.distances = append(s.distances, other.distances...)
}

// NRecords is the number of records added.
func (s *Summary) NRecords() int64 {
	return s.NInterChrom + s.NIntraChrom
}

// Report computes the mean, median and a histogram with nBins bins over the
// intra-chromosomal distances.  It sorts the distance buffer in place; Add
// may still be called afterwards.
func (s *Summary) Report(nBins int) *Report {
	median, ok := Median(s.distances)
	if !ok {
		median = nan
	}
	return &Report{
		Inversion:   s.Inversion,
		Insertion:   s.Insertion,
		Deletion:    s.Deletion,
		NInterChrom: s.NInterChrom,
		NIntraChrom: s.NIntraChrom,
		Mean:        Mean(s.TotalDistance, s.NIntraChrom),
		Median:      median,
		Histogram:   NewHistogram(s.distances, nBins),
	}
}
