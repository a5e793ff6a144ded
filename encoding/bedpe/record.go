// Package bedpe reads BEDPE files: one pair of genomic intervals per line.
//
// The first six columns are required:
//   chrom1 start1 end1 chrom2 start2 end2
// followed optionally by
//   name score strand1 strand2 [extra fields...]
// Coordinates are 0-based, half-open, as in BED.
package bedpe

// PosType is the coordinate type of a BEDPE record.
type PosType = int64

// Strand is the strand column of one end of a pair, exactly as written.
// Tokens other than "+", "-" and "." are kept verbatim so that two ends with
// the same unusual token still compare equal.
type Strand string

const (
	// StrandNone is an unspecified strand: a "." column, or no column at all.
	StrandNone Strand = "."
	// StrandPlus is the forward strand.
	StrandPlus Strand = "+"
	// StrandMinus is the reverse strand.
	StrandMinus Strand = "-"
)

func (s Strand) String() string {
	return string(s)
}

// parseStrand returns the strand for tok.  The common tokens do not allocate.
func parseStrand(tok []byte) Strand {
	if len(tok) == 1 {
		switch tok[0] {
		case '+':
			return StrandPlus
		case '-':
			return StrandMinus
		case '.':
			return StrandNone
		}
	}
	return Strand(tok)
}

// Record is a single BEDPE line.
type Record struct {
	Chrom1 string
	Start1 PosType
	End1   PosType
	Chrom2 string
	Start2 PosType
	End2   PosType
	// Name and Score are empty if the line has fewer than 7 (resp. 8)
	// columns.
	Name  string
	Score string
	// Strand1 and Strand2 are StrandNone if the line has fewer than 10
	// columns, so a short line reads as having equal strands.
	Strand1 Strand
	Strand2 Strand
	// Fields holds columns past the 10th, if any.
	Fields []string
}

// SameChrom reports whether both ends lie on the same chromosome.
func (r *Record) SameChrom() bool {
	return r.Chrom1 == r.Chrom2
}
