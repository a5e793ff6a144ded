package cmd

import (
	"io"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/vcontext"
	"github.com/grailbio/bedpe/summary"
)

type summaryFlags struct {
	input  *string
	format *string
	bins   *int
	region *string
}

func (f summaryFlags) parse() (summary.Opts, summary.Format, error) {
	opts := summary.DefaultOpts
	opts.BinCount = *f.bins
	opts.Region = *f.region
	format, err := summary.ParseFormat(*f.format)
	if err != nil {
		return opts, format, err
	}
	if _, err := opts.Validate(); err != nil {
		return opts, format, err
	}
	return opts, format, nil
}

// runSummary summarises the BEDPE file at path and writes the report to out.
// Nothing is written if the input is empty or cannot be read.
func runSummary(out io.Writer, path string, format summary.Format, opts summary.Opts) error {
	ctx := vcontext.Background()
	report, err := summary.Summarize(ctx, path, opts)
	if err != nil {
		return err
	}
	if report == nil {
		log.Printf("%s: no records", path)
		return nil
	}
	return report.Write(out, format)
}
