package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list accounts and their balances" }
func (*accountsCmd) Usage() string {
	return `cfr accounts

  Lists every account with its derived balance.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	balances := ledger.Balances()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBALANCE")
	for _, account := range ledger.Accounts() {
		name := account.Name
		if account.IsGoalAccount {
			name += " (goal)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", account.ID, name, balances[account.ID])
	}
	w.Flush()
	return subcommands.ExitSuccess
}
