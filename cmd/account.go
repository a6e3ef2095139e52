package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// newAccountCmd holds the flags for the 'new-account' subcommand.
type newAccountCmd struct {
	name  string
	color string
}

func (*newAccountCmd) Name() string     { return "new-account" }
func (*newAccountCmd) Synopsis() string { return "create an account" }
func (*newAccountCmd) Usage() string {
	return `cfr new-account -name <name> [-color <color>]

  Creates a regular account. Goal reserve accounts are created by new-goal.
`
}

func (c *newAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the account.")
	f.StringVar(&c.color, "color", "", "Display color, optional.")
}

func (c *newAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	account, err := ledger.AddAccount(c.name, c.color)
	if err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Created account %q (%s).\n", account.Name, account.ID)
	return subcommands.ExitSuccess
}

// renameAccountCmd holds the flags for the 'rename-account' subcommand.
type renameAccountCmd struct {
	account string
	name    string
}

func (*renameAccountCmd) Name() string     { return "rename-account" }
func (*renameAccountCmd) Synopsis() string { return "rename an account" }
func (*renameAccountCmd) Usage() string {
	return `cfr rename-account -account <account> -name <new name>

  Renames an account and updates the name shown on every transaction
  recorded against it.
`
}

func (c *renameAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id or current name.")
	f.StringVar(&c.name, "name", "", "New name.")
}

func (c *renameAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	account, err := resolveAccount(ledger, c.account)
	if err != nil {
		return fail(err)
	}
	if err := ledger.RenameAccount(account.ID, c.name); err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Renamed account %q to %q.\n", account.Name, c.name)
	return subcommands.ExitSuccess
}

// deleteAccountCmd holds the flags for the 'delete-account' subcommand.
type deleteAccountCmd struct {
	account string
}

func (*deleteAccountCmd) Name() string     { return "delete-account" }
func (*deleteAccountCmd) Synopsis() string { return "delete an account" }
func (*deleteAccountCmd) Usage() string {
	return `cfr delete-account -account <account>

  Deletes an account. Its transactions are kept but stop counting toward
  any balance. Deleting a goal's reserve account deletes the goal too.
`
}

func (c *deleteAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account id or name.")
}

func (c *deleteAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	account, err := resolveAccount(ledger, c.account)
	if err != nil {
		return fail(err)
	}
	if err := ledger.DeleteAccount(account.ID); err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	if account.IsGoalAccount {
		fmt.Printf("Deleted reserve account %q and its goal.\n", account.Name)
	} else {
		fmt.Printf("Deleted account %q.\n", account.Name)
	}
	return subcommands.ExitSuccess
}
