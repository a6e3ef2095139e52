package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"
)

type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction" }
func (*deleteCmd) Usage() string {
	return `cfr delete -id <transaction>

  Deletes a transaction. Deleting either leg of a transfer deletes both
  legs. Experience points already earned are kept.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Id of the transaction to delete.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		logger.Error("the -id flag is required")
		return subcommands.ExitUsageError
	}

	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}
	tx, ok := ledger.Transaction(c.id)
	if !ok {
		return fail(fmt.Errorf("transaction %q not found", c.id))
	}
	if err := ledger.DeleteTransaction(c.id); err != nil {
		return fail(err)
	}
	if err := saveLedger(ledger); err != nil {
		return fail(err)
	}

	if tx.IsTransferLeg() {
		fmt.Println("Deleted both legs of the transfer.")
	} else {
		fmt.Printf("Deleted %s %q.\n", tx.Kind, tx.Description)
	}
	return subcommands.ExitSuccess
}
