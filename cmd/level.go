package cmd

import (
	"context"
	"flag"

	"github.com/cofreapp/cofre/renderer"
	"github.com/google/subcommands"
)

type levelCmd struct{}

func (*levelCmd) Name() string     { return "level" }
func (*levelCmd) Synopsis() string { return "show experience points and level" }
func (*levelCmd) Usage() string {
	return `cfr level

  Shows the accumulated experience points and the level they amount to.
`
}

func (c *levelCmd) SetFlags(f *flag.FlagSet) {}

func (c *levelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := loadLedger()
	if err != nil {
		return fail(err)
	}

	printMarkdown(renderer.RenderLevel(ledger.XP()))
	return subcommands.ExitSuccess
}
