package cmd

import (
	"context"
	"flag"

	"github.com/cofreapp/cofre"
	"github.com/cofreapp/cofre/renderer"
	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	search   string
	category string
	account  string
	kind     string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, newest first" }
func (*txCmd) Usage() string {
	return `cfr tx [-search <text>] [-category <category>] [-account <account>] [-kind <kind>]

  Lists transactions sorted by date and time, newest first. All given
  filters must match. References to deleted accounts or categories are
  shown with a removed marker.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "Keep records whose description contains this text (case-insensitive).")
	f.StringVar(&c.category, "category", "", "Keep records of this category.")
	f.StringVar(&c.account, "account", "", "Keep records of this account (id or name).")
	f.StringVar(&c.kind, "kind", "", "Keep records of this kind: income, expense or transfer.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	var filters []func(cofre.Transaction) bool
	if c.search != "" {
		filters = append(filters, cofre.ByDescription(c.search))
	}
	if c.category != "" {
		filters = append(filters, cofre.ByCategory(c.category))
	}
	if c.account != "" {
		account, err := resolveAccount(ledger, c.account)
		if err != nil {
			return fail(err)
		}
		filters = append(filters, cofre.ByAccount(account.ID))
	}
	if c.kind != "" {
		kind, err := cofre.ParseKind(c.kind)
		if err != nil {
			logger.Error(err.Error())
			return subcommands.ExitUsageError
		}
		filters = append(filters, cofre.ByKind(kind))
	}

	printMarkdown(renderer.RenderTransactions(ledger, ledger.View(filters...)))
	return subcommands.ExitSuccess
}
