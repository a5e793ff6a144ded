package summary

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/grailbio/base/tsv"
)

// Report is the finalized summary of a BEDPE file.
type Report struct {
	Inversion   int64
	Insertion   int64
	Deletion    int64
	NInterChrom int64
	NIntraChrom int64
	// Mean and Median are NaN if NIntraChrom is zero.  Otherwise they hold
	// truncated integer values.
	Mean      float64
	Median    float64
	Histogram Histogram
}

// Format selects a report encoding.
type Format int

const (
	// Legacy is the JSON-like text of bedtools bedpesummary.  It is not valid
	// JSON when the mean or median is undefined.
	Legacy Format = iota
	// JSON is strict JSON with the same field names and order.  Undefined
	// values are null.
	JSON
	// TSV writes one "key<TAB>value" line per field.
	TSV
)

var formatNames = []string{"legacy", "json", "tsv"}

func (f Format) String() string {
	if int(f) >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "Format(" + strconv.Itoa(int(f)) + ")"
}

// ParseFormat converts a format name to a Format.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if n == name {
			return Format(i), nil
		}
	}
	return Legacy, fmt.Errorf("unknown report format %q, want one of %v", name, formatNames)
}

// Write encodes r to w in the given format.
func (r *Report) Write(w io.Writer, format Format) error {
	switch format {
	case Legacy:
		return r.WriteLegacy(w)
	case JSON:
		return r.WriteJSON(w)
	case TSV:
		return r.WriteTSV(w)
	}
	return fmt.Errorf("unknown report format %v", format)
}

// formatLength prints an integral length, or "NaN".
func formatLength(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatInt(int64(v), 10)
}

// WriteLegacy writes the report in the bedtools bedpesummary layout, byte for
// byte.
func (r *Report) WriteLegacy(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "{\"inversion\" : %d, \"insertion\" : %d, \"deletion\" : %d, \n",
		r.Inversion, r.Insertion, r.Deletion)
	fmt.Fprintf(bw, "\"n_interchrom\" : %d, \"n_intrachrom\" : %d, ", r.NInterChrom, r.NIntraChrom)
	fmt.Fprintf(bw, "\"mean intrachromasomal sv length\" : %s, \n", formatLength(r.Mean))
	fmt.Fprintf(bw, "\"median intrachromasomal sv length\" : %s, \n", formatLength(r.Median))
	fmt.Fprintf(bw, "\"histogram\" : { \"min_val\" : %d, ", r.Histogram.MinVal)
	fmt.Fprintf(bw, "\"bin_width\" : %d, \"bin_counts\": [\n", r.Histogram.BinWidth)
	for i, c := range r.Histogram.BinCounts {
		if i > 0 {
			bw.WriteString(", ")
		}
		bw.WriteString(strconv.FormatInt(c, 10))
	}
	bw.WriteString("]}}\n")
	return bw.Flush()
}

type jsonHistogram struct {
	MinVal    int64   `json:"min_val"`
	BinWidth  int64   `json:"bin_width"`
	BinCounts []int64 `json:"bin_counts"`
}

type jsonReport struct {
	Inversion   int64         `json:"inversion"`
	Insertion   int64         `json:"insertion"`
	Deletion    int64         `json:"deletion"`
	NInterChrom int64         `json:"n_interchrom"`
	NIntraChrom int64         `json:"n_intrachrom"`
	Mean        *int64        `json:"mean intrachromasomal sv length"`
	Median      *int64        `json:"median intrachromasomal sv length"`
	Histogram   jsonHistogram `json:"histogram"`
}

func jsonLength(v float64) *int64 {
	if math.IsNaN(v) {
		return nil
	}
	i := int64(v)
	return &i
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	js, err := json.MarshalIndent(jsonReport{
		Inversion:   r.Inversion,
		Insertion:   r.Insertion,
		Deletion:    r.Deletion,
		NInterChrom: r.NInterChrom,
		NIntraChrom: r.NIntraChrom,
		Mean:        jsonLength(r.Mean),
		Median:      jsonLength(r.Median),
		Histogram: jsonHistogram{
			MinVal:    r.Histogram.MinVal,
			BinWidth:  r.Histogram.BinWidth,
			BinCounts: r.Histogram.BinCounts,
		},
	}, "", "  ")
	if err != nil {
		return err
	}
	js = append(js, '\n')
	_, err = w.Write(js)
	return err
}

// WriteTSV writes the report as key/value rows.  Bin counts are written as
// bin_count_0, bin_count_1, ...
func (r *Report) WriteTSV(w io.Writer) error {
	out := tsv.NewWriter(w)
	row := func(key string, v int64) error {
		out.WriteString(key)
		out.WriteInt64(v)
		return out.EndLine()
	}
	for _, kv := range []struct {
		key string
		v   int64
	}{
		{"inversion", r.Inversion},
		{"insertion", r.Insertion},
		{"deletion", r.Deletion},
		{"n_interchrom", r.NInterChrom},
		{"n_intrachrom", r.NIntraChrom},
	} {
		if err := row(kv.key, kv.v); err != nil {
			return err
		}
	}
	out.WriteString("mean intrachromasomal sv length")
	out.WriteString(formatLength(r.Mean))
	if err := out.EndLine(); err != nil {
		return err
	}
	out.WriteString("median intrachromasomal sv length")
	out.WriteString(formatLength(r.Median))
	if err := out.EndLine(); err != nil {
		return err
	}
	if err := row("min_val", r.Histogram.MinVal); err != nil {
		return err
	}
	if err := row("bin_width", r.Histogram.BinWidth); err != nil {
		return err
	}
	for i, c := range r.Histogram.BinCounts {
		if err := row("bin_count_"+strconv.Itoa(i), c); err != nil {
			return err
		}
	}
	return out.Flush()
}
