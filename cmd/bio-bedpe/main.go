package main

/*
bio-bedpe computes summary statistics over BEDPE files.  Run
"bio-bedpe help" for the list of subcommands.
*/

import (
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/bedpe/cmd/bio-bedpe/cmd"
)

func main() {
	shutdown := grail.Init()
	code := cmd.Run()
	shutdown()
	os.Exit(code)
}
