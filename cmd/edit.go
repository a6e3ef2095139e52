package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/cofreapp/cofre"
	"github.com/google/subcommands"
)

// editCmd holds the flags for the 'edit' subcommand. Only flags explicitly
// set on the command line are applied.
type editCmd struct {
	id          string
	description string
	amount      float64
	category    string
	account     string
	recurring   bool
	frequency   string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit an existing transaction" }
func (*editCmd) Usage() string {
	return `cfr edit -id <transaction> [-desc <description>] [-amount <amount>] [-category <category>] [-account <account>] [-recurring=<bool>] [-freq <frequency>]

  Edits a transaction. The kind, date and time are immutable. On a transfer
  leg the account cannot change, and an amount change applies to both legs.
`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to edit.")
	f.StringVar(&c.description, "desc", "", "New description.")
	f.Float64Var(&c.amount, "amount", 0, "New amount in the major unit.")
	f.StringVar(&c.category, "category", "", "New category name.")
	f.StringVar(&c.account, "account", "", "New account id or name.")
	f.BoolVar(&c.recurring, "recurring", false, "New recurrence mark.")
	f.StringVar(&c.frequency, "freq", "", "New recurrence frequency.")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		logger.Error("the -id flag is required")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	var edit cofre.TransactionEdit
	var parseErr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "desc":
			edit.Description = &c.description
		case "amount":
			amount := cofre.R(c.amount)
			edit.Amount = &amount
		case "category":
			edit.Category = &c.category
		case "account":
			account, err := resolveAccount(ledger, c.account)
			if err != nil {
				parseErr = err
				return
			}
			edit.AccountID = &account.ID
		case "recurring":
			edit.IsRecurring = &c.recurring
		case "freq":
			frequency, err := cofre.ParseFrequency(c.frequency)
			if err != nil {
				parseErr = err
				return
			}
			edit.Frequency = &frequency
		}
	})
	if parseErr != nil {
		return fail(parseErr)
	}

	tx, err := ledger.EditTransaction(c.id, edit)
	if err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Edited %s %q.\n", tx.Kind, tx.Description)
	return subcommands.ExitSuccess
}
