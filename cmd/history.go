package cmd

import (
	"context"
	"flag"

	"github.com/cofreapp/cofre/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show daily income and expense totals" }
func (*historyCmd) Usage() string {
	return `cfr history

  Shows income and expense totals per day, oldest first, over the most
  recent days with activity. Transfers are not part of the series.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.RenderHistory(ledger.History()))
	return subcommands.ExitSuccess
}
