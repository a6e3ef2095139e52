package cmd

import (
	"context"
	"flag"

	"github.com/cofreapp/cofre/renderer"
	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "show income and expense totals per category" }
func (*categoriesCmd) Usage() string {
	return `cfr categories

  Shows income and expense totals for every category still in the list.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.RenderCategories(ledger.CategoryTotals()))
	return subcommands.ExitSuccess
}
