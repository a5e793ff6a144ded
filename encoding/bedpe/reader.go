package bedpe

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"strconv"

	"github.com/grailbio/base/file"
	"github.com/grailbio/base/fileio"
	"github.com/grailbio/base/log"
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Status is the outcome of a single Reader.Next call.
type Status int

const (
	// End means there are no more lines, either because the input is
	// exhausted or because reading failed.  Reader.Err distinguishes the two.
	End Status = iota
	// Valid means Reader.Record holds a parsed record.
	Valid
	// Skip means the line was blank, a header or comment, or malformed.
	Skip
)

func (s Status) String() string {
	switch s {
	case End:
		return "end"
	case Valid:
		return "valid"
	case Skip:
		return "skip"
	}
	return "Status(" + strconv.Itoa(int(s)) + ")"
}

// StdinPath is the path that makes Open read standard input.  "-" is accepted
// too.
const StdinPath = "stdin"

// Minimum number of columns in a BEDPE line.
const minColumns = 6

// Lines longer than this are treated as a read error.
const maxLineLen = 16 << 20

var (
	trackPrefix   = []byte("track")
	browserPrefix = []byte("browser")
)

// Reader is a pull-style BEDPE parser.  It is not thread safe.
//
// Usage:
//   r := bedpe.NewReader(in)
//   for st := r.Next(); st != bedpe.End; st = r.Next() {
//     if st == bedpe.Valid {
//       rec := r.Record()
//       ...
//     }
//   }
//   if err := r.Err(); err != nil { ... }
type Reader struct {
	scanner *bufio.Scanner
	rec     Record
	tokens  [][]byte
	lineNum int
	skipped int
	err     error
	closers []func() error
}

// NewReader creates a Reader that parses lines from in.
func NewReader(in io.Reader) *Reader {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64<<10), maxLineLen)
	return &Reader{scanner: scanner, tokens: make([][]byte, 0, 16)}
}

// Open opens the BEDPE file at path.  Any path understood by
// github.com/grailbio/base/file works; "stdin" and "-" read standard input.
// Gzip-compressed files are decompressed on the fly.  The caller must Close
// the reader.
func Open(ctx context.Context, path string) (*Reader, error) {
	if path == StdinPath || path == "-" {
		return NewReader(os.Stdin), nil
	}
	in, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "bedpe.Open %s", path)
	}
	closers := []func() error{func() error { return in.Close(ctx) }}
	reader := io.Reader(in.Reader(ctx))
	if fileio.DetermineType(path) == fileio.Gzip {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			_ = in.Close(ctx)
			return nil, errors.Wrapf(err, "bedpe.Open %s: gzip", path)
		}
		reader = gz
		closers = append([]func() error{gz.Close}, closers...)
	}
	r := NewReader(reader)
	r.closers = closers
	return r, nil
}

// Close releases the underlying file, if any.  It is safe to call more than
// once.
func (r *Reader) Close() error {
	var err error
	for _, c := range r.closers {
		if e := c(); e != nil && err == nil {
			err = e
		}
	}
	r.closers = nil
	return err
}

// Next reads the next line.  Once it returns End, all subsequent calls return
// End.
func (r *Reader) Next() Status {
	if r.err != nil || !r.scanner.Scan() {
		if r.err == nil {
			if err := r.scanner.Err(); err != nil {
				r.err = errors.Wrapf(err, "bedpe: read error after line %d", r.lineNum)
			}
		}
		return End
	}
	r.lineNum++
	line := r.scanner.Bytes()
	if isHeader(line) {
		r.skipped++
		return Skip
	}
	if err := r.parse(line); err != nil {
		r.skipped++
		if log.At(log.Debug) {
			log.Debug.Printf("bedpe: skipping line %d: %v", r.lineNum, err)
		}
		return Skip
	}
	return Valid
}

// Record returns the record parsed by the last Next call that returned Valid.
// The record is overwritten by the following Next call.
func (r *Reader) Record() *Record {
	return &r.rec
}

// LineNum returns the 1-based number of the line last read.
func (r *Reader) LineNum() int {
	return r.lineNum
}

// Skipped returns the number of lines for which Next returned Skip.
func (r *Reader) Skipped() int {
	return r.skipped
}

// Err returns the read error, if any, that made Next return End.
func (r *Reader) Err() error {
	return r.err
}

func isHeader(line []byte) bool {
	trimmed := bytes.TrimLeft(line, " \t")
	if len(trimmed) == 0 || trimmed[0] == '#' {
		return true
	}
	return bytes.HasPrefix(trimmed, trackPrefix) || bytes.HasPrefix(trimmed, browserPrefix)
}

// getTokens appends whitespace-separated tokens of line to tokens.  Any
// (group of) characters <= ' ' is a delimiter.
func getTokens(tokens [][]byte, line []byte) [][]byte {
	pos := 0
	n := len(line)
	for {
		for ; pos != n; pos++ {
			if line[pos] > ' ' {
				break
			}
		}
		if pos == n {
			return tokens
		}
		end := pos
		for ; end != n; end++ {
			if line[end] <= ' ' {
				break
			}
		}
		tokens = append(tokens, line[pos:end])
		pos = end
	}
}

func parsePos(tok []byte, what string) (PosType, error) {
	v, err := strconv.ParseInt(gunsafe.BytesToString(tok), 10, 64)
	if err != nil {
		return 0, errors.Errorf("bad %s %q", what, tok)
	}
	if v < 0 {
		return 0, errors.Errorf("negative %s %d", what, v)
	}
	return v, nil
}

func (r *Reader) parse(line []byte) (err error) {
	r.tokens = getTokens(r.tokens[:0], line)
	tokens := r.tokens
	if len(tokens) < minColumns {
		return errors.Errorf("expect at least %d columns, found %d", minColumns, len(tokens))
	}
	rec := &r.rec
	if rec.Start1, err = parsePos(tokens[1], "start1"); err != nil {
		return
	}
	if rec.End1, err = parsePos(tokens[2], "end1"); err != nil {
		return
	}
	if rec.Start2, err = parsePos(tokens[4], "start2"); err != nil {
		return
	}
	if rec.End2, err = parsePos(tokens[5], "end2"); err != nil {
		return
	}
	if rec.End1 < rec.Start1 || rec.End2 < rec.Start2 {
		return errors.Errorf("start after end (%d-%d, %d-%d)", rec.Start1, rec.End1, rec.Start2, rec.End2)
	}
	// Reuse the previous chromosome strings when unchanged; BEDPE files are
	// usually sorted, so this avoids an allocation per line.
	if gunsafe.BytesToString(tokens[0]) != rec.Chrom1 {
		rec.Chrom1 = string(tokens[0])
	}
	if gunsafe.BytesToString(tokens[3]) != rec.Chrom2 {
		rec.Chrom2 = string(tokens[3])
	}
	rec.Name, rec.Score = "", ""
	rec.Strand1, rec.Strand2 = StrandNone, StrandNone
	rec.Fields = rec.Fields[:0]
	if len(tokens) > 6 {
		rec.Name = string(tokens[6])
	}
	if len(tokens) > 7 {
		rec.Score = string(tokens[7])
	}
	if len(tokens) > 9 {
		rec.Strand1 = parseStrand(tokens[8])
		rec.Strand2 = parseStrand(tokens[9])
	}
	for _, tok := range tokens[minInt(len(tokens), 10):] {
		rec.Fields = append(rec.Fields, string(tok))
	}
	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
