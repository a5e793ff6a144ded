package summary

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLegacy(t *testing.T) {
	tests := []struct {
		report *Report
		want   string
	}{
		{
			summarize(pair("chrA", "chrA", plus, plus, 100, 500)).Report(DefaultBinCount),
			`{"inversion" : 1, "insertion" : 0, "deletion" : 0, ` + "\n" +
				`"n_interchrom" : 0, "n_intrachrom" : 1, "mean intrachromasomal sv length" : 400, ` + "\n" +
				`"median intrachromasomal sv length" : 400, ` + "\n" +
				`"histogram" : { "min_val" : 400, "bin_width" : 0, "bin_counts": [` + "\n" +
				"0, 0, 0, 0, 0, 0, 0, 0, 0, 0]}}\n",
		},
		{
			summarize(
				pair("chrA", "chrA", plus, minus, 0, 100),
				pair("chrA", "chrA", minus, plus, 1000, 1300),
				pair("chrA", "chrA", plus, plus, 5000, 4800),
				pair("chrA", "chrB", plus, plus, 5000, 4800),
			).Report(DefaultBinCount),
			`{"inversion" : 1, "insertion" : 1, "deletion" : 1, ` + "\n" +
				`"n_interchrom" : 1, "n_intrachrom" : 3, "mean intrachromasomal sv length" : 200, ` + "\n" +
				`"median intrachromasomal sv length" : 200, ` + "\n" +
				`"histogram" : { "min_val" : 100, "bin_width" : 20, "bin_counts": [` + "\n" +
				"1, 0, 0, 0, 0, 1, 0, 0, 0, 1]}}\n",
		},
		{
			summarize(pair("chr1", "chr2", plus, minus, 0, 100)).Report(DefaultBinCount),
			`{"inversion" : 0, "insertion" : 0, "deletion" : 0, ` + "\n" +
				`"n_interchrom" : 1, "n_intrachrom" : 0, "mean intrachromasomal sv length" : NaN, ` + "\n" +
				`"median intrachromasomal sv length" : NaN, ` + "\n" +
				`"histogram" : { "min_val" : 0, "bin_width" : 0, "bin_counts": [` + "\n" +
				"0, 0, 0, 0, 0, 0, 0, 0, 0, 0]}}\n",
		},
	}
	for _, test := range tests {
		var buf bytes.Buffer
		require.NoError(t, test.report.Write(&buf, Legacy))
		assert.Equal(t, test.want, buf.String())
	}
}

func TestWriteJSON(t *testing.T) {
	for _, r := range []*Report{
		summarize(pair("chrA", "chrA", plus, plus, 100, 500)).Report(DefaultBinCount),
		summarize(pair("chr1", "chr2", plus, minus, 0, 100)).Report(DefaultBinCount),
	} {
		var buf bytes.Buffer
		require.NoError(t, r.Write(&buf, JSON))

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.EqualValues(t, r.NIntraChrom, got["n_intrachrom"])
		assert.EqualValues(t, r.NInterChrom, got["n_interchrom"])
		hist := got["histogram"].(map[string]interface{})
		assert.Len(t, hist["bin_counts"], 10)
		if r.NIntraChrom == 0 {
			assert.Nil(t, got["mean intrachromasomal sv length"])
			assert.Nil(t, got["median intrachromasomal sv length"])
		} else {
			assert.EqualValues(t, 400, got["mean intrachromasomal sv length"])
			assert.EqualValues(t, 400, got["median intrachromasomal sv length"])
		}

		// Field order matches the legacy layout.
		out := buf.String()
		prev := -1
		for _, key := range []string{"inversion", "insertion", "deletion", "n_interchrom", "n_intrachrom",
			"mean intrachromasomal sv length", "median intrachromasomal sv length", "histogram",
			"min_val", "bin_width", "bin_counts"} {
			idx := strings.Index(out, `"`+key+`"`)
			assert.True(t, idx > prev, "key %s out of order in %s", key, out)
			prev = idx
		}
	}
}

func TestWriteTSV(t *testing.T) {
	r := summarize(
		pair("chrA", "chrA", plus, minus, 0, 100),
		pair("chrA", "chrA", minus, plus, 1000, 1300),
	).Report(2)
	var buf bytes.Buffer
	require.NoError(t, r.Write(&buf, TSV))
	want := "inversion\t0\n" +
		"insertion\t1\n" +
		"deletion\t1\n" +
		"n_interchrom\t0\n" +
		"n_intrachrom\t2\n" +
		"mean intrachromasomal sv length\t200\n" +
		"median intrachromasomal sv length\t200\n" +
		"min_val\t100\n" +
		"bin_width\t100\n" +
		"bin_count_0\t1\n" +
		"bin_count_1\t1\n"
	assert.Equal(t, want, buf.String())
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{Legacy, JSON, TSV} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
	assert.Error(t, (&Report{}).Write(&bytes.Buffer{}, Format(99)))
}
