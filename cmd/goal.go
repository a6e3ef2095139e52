package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/cofreapp/cofre"
	"github.com/cofreapp/cofre/date"
	"github.com/google/subcommands"
)

// newGoalCmd holds the flags for the 'new-goal' subcommand.
type newGoalCmd struct {
	name     string
	target   float64
	deadline string
	category string
	cadence  string
	color    string
}

func (*newGoalCmd) Name() string     { return "new-goal" }
func (*newGoalCmd) Synopsis() string { return "create a savings goal with its reserve account" }
func (*newGoalCmd) Usage() string {
	return `cfr new-goal -name <name> -target <amount> [-deadline <date>] [-category <category>] [-cadence daily|monthly|yearly] [-color <color>]

  Creates a savings goal and a dedicated reserve account to hold the money
  saved toward it. Earns experience points.
`
}

func (c *newGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the goal.")
	f.Float64Var(&c.target, "target", 0, "Target amount in the major unit.")
	f.StringVar(&c.deadline, "deadline", "", "Deadline (YYYY-MM-DD), optional.")
	f.StringVar(&c.category, "category", "", "Category name, optional.")
	f.StringVar(&c.cadence, "cadence", "monthly", "Plan cadence: daily, monthly or yearly.")
	f.StringVar(&c.color, "color", "", "Display color of the reserve account, optional.")
}

func (c *newGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cadence, err := cofre.ParseCadence(c.cadence)
	if err != nil {
		logger.Error(err.Error())
		return subcommands.ExitUsageError
	}
	var deadline date.Date
	if c.deadline != "" {
		deadline, err = date.Parse(c.deadline)
		if err != nil {
			logger.Error(err.Error())
			return subcommands.ExitUsageError
		}
	}

	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	goal, err := ledger.AddGoal(c.name, cofre.R(c.target), deadline, c.category, cadence, c.color)
	if err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Created goal %q with its reserve account. Total: %d XP.\n", goal.Name, ledger.XP())
	return subcommands.ExitSuccess
}

// editGoalCmd holds the flags for the 'edit-goal' subcommand.
type editGoalCmd struct {
	goal     string
	name     string
	target   float64
	deadline string
	category string
	cadence  string
}

func (*editGoalCmd) Name() string     { return "edit-goal" }
func (*editGoalCmd) Synopsis() string { return "edit a savings goal" }
func (*editGoalCmd) Usage() string {
	return `cfr edit-goal -goal <goal> [-name <name>] [-target <amount>] [-deadline <date>] [-category <category>] [-cadence <cadence>]

  Edits a goal. Renaming the goal renames its reserve account too.
`
}

func (c *editGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goal, "goal", "", "Goal id or name.")
	f.StringVar(&c.name, "name", "", "New name.")
	f.Float64Var(&c.target, "target", 0, "New target amount.")
	f.StringVar(&c.deadline, "deadline", "", "New deadline (YYYY-MM-DD).")
	f.StringVar(&c.category, "category", "", "New category name.")
	f.StringVar(&c.cadence, "cadence", "", "New plan cadence.")
}

func (c *editGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	goal, err := resolveGoal(ledger, c.goal)
	if err != nil {
		return fail(err)
	}

	var edit cofre.GoalEdit
	var parseErr error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "name":
			edit.Name = &c.name
		case "target":
			target := cofre.R(c.target)
			edit.Target = &target
		case "deadline":
			deadline, err := date.Parse(c.deadline)
			if err != nil {
				parseErr = err
				return
			}
			edit.Deadline = &deadline
		case "category":
			edit.Category = &c.category
		case "cadence":
			cadence, err := cofre.ParseCadence(c.cadence)
			if err != nil {
				parseErr = err
				return
			}
			edit.Cadence = &cadence
		}
	})
	if parseErr != nil {
		return fail(parseErr)
	}

	goal, err = ledger.EditGoal(goal.ID, edit)
	if err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Edited goal %q.\n", goal.Name)
	return subcommands.ExitSuccess
}

// deleteGoalCmd holds the flags for the 'delete-goal' subcommand.
type deleteGoalCmd struct {
	goal string
}

func (*deleteGoalCmd) Name() string     { return "delete-goal" }
func (*deleteGoalCmd) Synopsis() string { return "delete a goal and its reserve account" }
func (*deleteGoalCmd) Usage() string {
	return `cfr delete-goal -goal <goal>

  Deletes a goal together with its reserve account. Transactions against
  the reserve account are kept.
`
}

func (c *deleteGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.goal, "goal", "", "Goal id or name.")
}

func (c *deleteGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	goal, err := resolveGoal(ledger, c.goal)
	if err != nil {
		return fail(err)
	}
	if err := ledger.DeleteGoal(goal.ID); err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Deleted goal %q and its reserve account.\n", goal.Name)
	return subcommands.ExitSuccess
}
