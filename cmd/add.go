package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/cofreapp/cofre"
	"github.com/cofreapp/cofre/date"
	"github.com/google/subcommands"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	kind        string
	description string
	amount      float64
	category    string
	account     string
	date        string
	time        string
	recurring   bool
	frequency   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record an income or expense" }
func (*addCmd) Usage() string {
	return `cfr add -desc <description> -amount <amount> -account <account> [-kind expense|income] [-category <category>] [-d <date>] [-t <time>] [-recurring [-freq <frequency>]]

  Records an income or expense on an account and earns experience points.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "expense", "Kind of record: expense or income.")
	f.StringVar(&c.description, "desc", "", "Description of the record.")
	f.Float64Var(&c.amount, "amount", 0, "Amount in the major unit, always positive.")
	f.StringVar(&c.category, "category", "", "Category name, optional.")
	f.StringVar(&c.account, "account", "", "Account id or name.")
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the record (YYYY-MM-DD).")
	f.StringVar(&c.time, "t", date.Now().String(), "Time of the record (HH:MM).")
	f.BoolVar(&c.recurring, "recurring", false, "Mark the record as recurring.")
	f.StringVar(&c.frequency, "freq", "", "Recurrence frequency: daily, weekly, monthly or yearly.")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := cofre.ParseKind(c.kind)
	if err != nil {
		logger.Error(err.Error())
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.date)
	if err != nil {
		logger.Error(err.Error())
		return subcommands.ExitUsageError
	}
	at, err := date.ParseClock(c.time)
	if err != nil {
		logger.Error(err.Error())
		return subcommands.ExitUsageError
	}
	frequency, err := cofre.ParseFrequency(c.frequency)
	if err != nil {
		logger.Error(err.Error())
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	account, err := resolveAccount(ledger, c.account)
	if err != nil {
		return fail(err)
	}

	tx := cofre.NewTransaction(on, at, c.description, cofre.R(c.amount), kind, c.category, account.ID)
	tx.IsRecurring = c.recurring
	tx.Frequency = frequency
	tx, err = ledger.AddTransaction(tx)
	if err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Recorded %s %q on %s. Total: %d XP.\n", tx.Kind, tx.Description, tx.AccountName, ledger.XP())
	return subcommands.ExitSuccess
}
