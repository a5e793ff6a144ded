package summary

import (
	"context"
	"fmt"

	"github.com/grailbio/base/errors"
	"github.com/grailbio/base/log"
	"github.com/grailbio/bedpe/encoding/bedpe"
	"github.com/grailbio/bedpe/interval"
)

// Opts controls Scan and Summarize.
type Opts struct {
	// BinCount is the number of histogram bins.  Must be positive.
	BinCount int
	// Region, if nonempty, restricts the summary to records whose first end
	// starts in it.  The format is that of interval.ParseRegionString.
	Region string
}

// DefaultOpts reproduces the output of bedtools bedpesummary.
var DefaultOpts = Opts{
	BinCount: DefaultBinCount,
}

// Validate checks opts and returns the parsed region, if any.
func (opts *Opts) Validate() (*interval.Entry, error) {
	if opts.BinCount < 1 {
		return nil, errors.E(errors.Invalid, fmt.Sprintf("summary: bin count must be positive, got %d", opts.BinCount))
	}
	if opts.Region == "" {
		return nil, nil
	}
	region, err := interval.ParseRegionString(opts.Region)
	if err != nil {
		return nil, errors.E(errors.Invalid, err, "summary: region", opts.Region)
	}
	return &region, nil
}

// Source yields BEDPE records.  *bedpe.Reader implements it.
type Source interface {
	// Next advances to the next line.
	Next() bedpe.Status
	// Record is the record read by the last Next call that returned Valid.
	Record() *bedpe.Record
	// Err is the error that ended the stream, or nil at a clean end.
	Err() error
}

// Scan reads src until it ends and returns the report.  If src yields End on
// the first call, Scan returns a nil report and src.Err().  A read error at
// any point discards the partial summary and is returned.
func Scan(src Source, opts Opts) (*Report, error) {
	region, err := opts.Validate()
	if err != nil {
		return nil, err
	}
	st := src.Next()
	if st == bedpe.End {
		return nil, src.Err()
	}
	var (
		s        Summary
		filtered int64
	)
	for ; st != bedpe.End; st = src.Next() {
		if st != bedpe.Valid {
			continue
		}
		rec := src.Record()
		if region != nil && !region.Contains(rec.Chrom1, rec.Start1) {
			filtered++
			continue
		}
		s.Add(rec)
	}
	if err := src.Err(); err != nil {
		return nil, err
	}
	if region != nil {
		log.Printf("summary: %d record(s) outside %v", filtered, region)
	}
	return s.Report(opts.BinCount), nil
}

// Summarize reads the BEDPE file at path and returns its report.  It returns
// a nil report and nil error if the file is empty.
func Summarize(ctx context.Context, path string, opts Opts) (report *Report, err error) {
	if _, err = opts.Validate(); err != nil {
		return nil, err
	}
	r, err := bedpe.Open(ctx, path)
	if err != nil {
		return nil, errors.E(err, "summary: open", path)
	}
	defer func() {
		if cerr := r.Close(); cerr != nil && err == nil {
			report = nil
			err = errors.E(cerr, "summary: close", path)
		}
	}()
	if report, err = Scan(r, opts); err != nil {
		return nil, errors.E(err, "summary: read", path)
	}
	if r.Skipped() > 0 {
		log.Printf("summary: %s: skipped %d header or malformed line(s) of %d", path, r.Skipped(), r.LineNum())
	}
	return report, nil
}
