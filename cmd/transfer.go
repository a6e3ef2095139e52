package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/cofreapp/cofre"
	"github.com/cofreapp/cofre/date"
	"github.com/google/subcommands"
)

// transferCmd holds the flags for the 'transfer' subcommand.
type transferCmd struct {
	from        string
	to          string
	amount      float64
	description string
	date        string
	time        string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move value between two accounts" }
func (*transferCmd) Usage() string {
	return `cfr transfer -from <account> -to <account> -amount <amount> [-desc <description>] [-d <date>] [-t <time>]

  Moves value between two accounts as a pair of linked transaction legs.
  The amount leaves the source account and arrives on the destination one;
  neither leg counts as income or expense.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source account id or name.")
	f.StringVar(&c.to, "to", "", "Destination account id or name.")
	f.Float64Var(&c.amount, "amount", 0, "Amount in the major unit, always positive.")
	f.StringVar(&c.description, "desc", "", "Description, optional.")
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the transfer (YYYY-MM-DD).")
	f.StringVar(&c.time, "t", date.Now().String(), "Time of the transfer (HH:MM).")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	source, err := resolveAccount(ledger, c.from)
	if err != nil {
		return fail(err)
	}
	destination, err := resolveAccount(ledger, c.to)
	if err != nil {
		return fail(err)
	}

	if _, _, err := ledger.NewTransfer(source.ID, destination.ID, cofre.R(c.amount), on, at, c.description); err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Transferred from %s to %s. Total: %d XP.\n", source.Name, destination.Name, ledger.XP())
	return subcommands.ExitSuccess
}
