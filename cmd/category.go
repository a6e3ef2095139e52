package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

// newCategoryCmd holds the flags for the 'new-category' subcommand.
type newCategoryCmd struct {
	name string
}

func (*newCategoryCmd) Name() string     { return "new-category" }
func (*newCategoryCmd) Synopsis() string { return "create a category" }
func (*newCategoryCmd) Usage() string {
	return `cfr new-category -name <name>

  Adds a category. Duplicate names are rejected.
`
}

func (c *newCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the category.")
}

func (c *newCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	if err := ledger.AddCategory(c.name); err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Created category %q.\n", c.name)
	return subcommands.ExitSuccess
}

// renameCategoryCmd holds the flags for the 'rename-category' subcommand.
type renameCategoryCmd struct {
	category string
	name     string
}

func (*renameCategoryCmd) Name() string     { return "rename-category" }
func (*renameCategoryCmd) Synopsis() string { return "rename a category" }
func (*renameCategoryCmd) Usage() string {
	return `cfr rename-category -category <current name> -name <new name>

  Renames a category and updates every transaction referencing it.
  Renaming onto an existing category is rejected.
`
}

func (c *renameCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Current category name.")
	f.StringVar(&c.name, "name", "", "New name.")
}

func (c *renameCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	if err := ledger.RenameCategory(c.category, c.name); err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Renamed category %q to %q.\n", c.category, c.name)
	return subcommands.ExitSuccess
}

// deleteCategoryCmd holds the flags for the 'delete-category' subcommand.
type deleteCategoryCmd struct {
	category string
}

func (*deleteCategoryCmd) Name() string     { return "delete-category" }
func (*deleteCategoryCmd) Synopsis() string { return "delete a category" }
func (*deleteCategoryCmd) Usage() string {
	return `cfr delete-category -category <name>

  Removes a category from the list. Transactions keep their category text
  but stop counting toward category totals.
`
}

func (c *deleteCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.category, "category", "", "Category name.")
}

func (c *deleteCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	if err := ledger.DeleteCategory(c.category); err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	fmt.Printf("Deleted category %q.\n", c.category)
	return subcommands.ExitSuccess
}
