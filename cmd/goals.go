package cmd

import (
	"context"
	"flag"

	"github.com/cofreapp/cofre/date"
	"github.com/cofreapp/cofre/renderer"
	"github.com/google/subcommands"
)

type goalsCmd struct {
	date string
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "show goal progress and plan suggestions" }
func (*goalsCmd) Usage() string {
	return `cfr goals [-d <date>]

  Shows each goal's saved amount, completion percentage and, when a
  deadline is set and the target is not met, the suggested periodic
  contribution.
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date for plan horizons (YYYY-MM-DD).")
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		logger.Error(err.Error())
		return subcommands.ExitUsageError
	}
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.RenderGoals(ledger.GoalProgressOn(on)))
	return subcommands.ExitSuccess
}
