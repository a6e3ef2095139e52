package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/cofreapp/cofre"
	"github.com/cofreapp/cofre/date"
	"github.com/google/subcommands"
)

// moveCmd holds the flags for the 'move' subcommand.
type moveCmd struct {
	goal     string
	account  string
	amount   float64
	withdraw bool
	date     string
	time     string
}

func (*moveCmd) Name() string     { return "move" }
func (*moveCmd) Synopsis() string { return "move value into or out of a goal" }
func (*moveCmd) Usage() string {
	return `cfr move -goal <goal> -from <account> -amount <amount> [-withdraw] [-d <date>] [-t <time>]

  Moves value from an account into a goal's reserve, or back out with
  -withdraw. The move is recorded as a paired transfer.
`
}

func (c *moveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goal, "goal", "", "Goal id or name.")
	f.StringVar(&c.account, "from", "", "Counter account id or name.")
	f.Float64Var(&c.amount, "amount", 0, "Amount in the major unit, always positive.")
	f.BoolVar(&c.withdraw, "withdraw", false, "Move value out of the goal instead of into it.")
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the move (YYYY-MM-DD).")
	f.StringVar(&c.time, "t", date.Now().String(), "Time of the move (HH:MM).")
}

func (c *moveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	goal, err := resolveGoal(ledger, c.goal)
	if err != nil {
		return fail(err)
	}
	counter, err := resolveAccount(ledger, c.account)
	if err != nil {
		return fail(err)
	}

	if _, _, err := ledger.GoalMove(goal.ID, counter.ID, cofre.R(c.amount), c.withdraw, on, at); err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	direction := "into"
	if c.withdraw {
		direction = "out of"
	}
	fmt.Printf("Moved value %s goal %q. Total: %d XP.\n", direction, goal.Name, ledger.XP())
	return subcommands.ExitSuccess
}
