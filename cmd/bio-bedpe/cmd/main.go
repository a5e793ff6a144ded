package cmd

import (
	"log"
	"os"

	"github.com/grailbio/base/cmdutil"
	"github.com/grailbio/bedpe/encoding/bedpe"
	"github.com/grailbio/bedpe/summary"
	"v.io/x/lib/cmdline"
)

func newCmdSummary() *cmdline.Command {
	cmd := &cmdline.Command{
		Name:  "summary",
		Short: "Summarise a BEDPE file",
		Long: `
Summary counts the structural-variant categories of the pairs in a BEDPE file
and reports the mean, median and a histogram of the distances between the
starts of intra-chromosomal pairs.

Pairs on the same chromosome are classified by strand: equal strands are
inversions, +/- deletions and -/+ insertions.  Header, comment and malformed
lines are skipped.  An empty input produces no output.`,
	}
	flags := summaryFlags{}
	flags.input = cmd.Flags.String("i", bedpe.StdinPath,
		"Input BEDPE path. 'stdin' or '-' reads standard input; a .gz suffix means gzip-compressed input")
	flags.format = cmd.Flags.String("format", summary.Legacy.String(), `Output format.  One of:
  legacy: the bedtools bedpesummary layout (not strict JSON)
  json:   strict JSON with the same field names; undefined values are null
  tsv:    one key<TAB>value line per field`)
	flags.bins = cmd.Flags.Int("bins", summary.DefaultOpts.BinCount, "Number of histogram bins")
	flags.region = cmd.Flags.String("region", "", `Only summarise pairs whose first end starts in this region.
Format is 'chr', 'chr:pos' or 'chr:begin-end' (1-based, closed), as in samtools.`)
	cmd.Runner = cmdutil.RunnerFunc(func(env *cmdline.Env, argv []string) error {
		if len(argv) != 0 {
			return env.UsageErrorf("summary takes no positional arguments, but got %v", argv)
		}
		opts, format, err := flags.parse()
		if err != nil {
			return env.UsageErrorf("%v", err)
		}
		return runSummary(env.Stdout, *flags.input, format, opts)
	})
	return cmd
}

func newCmdRoot() *cmdline.Command {
	return &cmdline.Command{
		Name:     "bio-bedpe",
		Short:    "Tools for working with BEDPE files",
		LookPath: false,
		Children: []*cmdline.Command{
			newCmdSummary(),
		},
	}
}

func run(env *cmdline.Env, args []string) error {
	return cmdline.ParseAndRun(newCmdRoot(), env, args)
}

// Run is the entry point of bio-bedpe.  It returns the process exit code
// instead of exiting so that the caller's deferred shutdown still runs.
func Run() int {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	cmdline.HideGlobalFlagsExcept()
	env := cmdline.EnvFromOS()
	return cmdline.ExitCode(run(env, os.Args[1:]), env.Stderr)
}
