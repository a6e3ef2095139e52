package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/cofreapp/cofre"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the full state document" }
func (*exportCmd) Usage() string {
	return `cfr export [-o <file>]

  Writes the full state document to stdout, or to a file with -o.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Destination file. Defaults to stdout.")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	out := os.Stdout
	if c.output != "" {
		out, err = os.Create(c.output)
		if err != nil {
			return fail(err)
		}
		defer out.Close()
	}
	if err := cofre.Export(out, ledger); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the state from an exported document" }
func (*importCmd) Usage() string {
	return `cfr import -i <file>

  Replaces the whole state with the document read from a file, or from
  stdin with -i -. Legacy exports wrapping the state under a "data"
  property are accepted. The current state is kept untouched when the
  document is invalid.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Source file, or - for stdin.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		logger.Error("the -i flag is required")
		return subcommands.ExitUsageError
	}

	in := os.Stdin
	if c.input != "-" {
		var err error
		in, err = os.Open(c.input)
		if err != nil {
			return fail(err)
		}
		defer in.Close()
	}

	ledger, err := cofre.Import(in)
	if err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Imported %d transactions into %s.\n", len(ledger.View()), documentPath())
	return subcommands.ExitSuccess
}
