package cmd

import (
	"context"
	"flag"

	"github.com/cofreapp/cofre/date"
	"github.com/cofreapp/cofre/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display account balances, totals and level" }
func (*summaryCmd) Usage() string {
	return `cfr summary [-d <date>]

  Displays every account balance, the overall income, expense and net, and
  the current level.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the summary (YYYY-MM-DD).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		logger.Error(err.Error())
		return subcommands.ExitUsageError
	}
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.RenderSummary(ledger.NewSummary(on)))
	return subcommands.ExitSuccess
}
