// Package cmd implements the CLI application to manage a cofre document.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/cofreapp/cofre"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "transactions")
	c.Register(&editCmd{}, "transactions")
	c.Register(&deleteCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")
	c.Register(&transferCmd{}, "transactions")

	c.Register(&newGoalCmd{}, "goals")
	c.Register(&editGoalCmd{}, "goals")
	c.Register(&deleteGoalCmd{}, "goals")
	c.Register(&moveCmd{}, "goals")
	c.Register(&goalsCmd{}, "goals")

	c.Register(&newAccountCmd{}, "accounts")
	c.Register(&renameAccountCmd{}, "accounts")
	c.Register(&deleteAccountCmd{}, "accounts")
	c.Register(&accountsCmd{}, "accounts")

	c.Register(&newCategoryCmd{}, "categories")
	c.Register(&renameCategoryCmd{}, "categories")
	c.Register(&deleteCategoryCmd{}, "categories")
	c.Register(&categoriesCmd{}, "categories")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")
	c.Register(&levelCmd{}, "reports")

	c.Register(&fmtCmd{}, "document")
	c.Register(&exportCmd{}, "document")
	c.Register(&importCmd{}, "document")
	c.Register(&topicCmd{}, "document")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var documentFile = flag.String("file", "", "Path to the state document (defaults to $COFRE_FILE, then "+cofre.DefaultDocumentName+")")

var logger = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

// documentPath resolves the state document location: the -file flag, then the
// COFRE_FILE environment variable, then the default name in the working
// directory.
func documentPath() string {
	if *documentFile != "" {
		return *documentFile
	}
	if path := os.Getenv("COFRE_FILE"); path != "" {
		return path
	}
	return cofre.DefaultDocumentName
}

// loadLedger reads the state document. A missing document is not an error:
// the app starts from an empty ledger and creates the file on first save.
func loadLedger() (*cofre.Ledger, error) {
	l, err := cofre.Load(documentPath())
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("document does not exist, starting from an empty one", "file", documentPath())
		return cofre.NewLedger(), nil
	}
	return l, err
}

func saveLedger(l *cofre.Ledger) error {
	return cofre.Save(documentPath(), l)
}

// resolveAccount accepts an account id or a display name.
func resolveAccount(l *cofre.Ledger, ref string) (cofre.Account, error) {
	if a, ok := l.Account(ref); ok {
		return a, nil
	}
	if a, ok := l.AccountByName(ref); ok {
		return a, nil
	}
	return cofre.Account{}, fmt.Errorf("account %q: %w", ref, cofre.ErrUnknownAccount)
}

// resolveGoal accepts a goal id or a goal name.
func resolveGoal(l *cofre.Ledger, ref string) (cofre.Goal, error) {
	if g, ok := l.Goal(ref); ok {
		return g, nil
	}
	for _, g := range l.Goals() {
		if g.Name == ref {
			return g, nil
		}
	}
	return cofre.Goal{}, fmt.Errorf("goal %q: %w", ref, cofre.ErrUnknownGoal)
}

// printMarkdown renders a markdown document to the terminal.
func printMarkdown(source string) {
	out, err := glamour.Render(source, "auto")
	if err != nil {
		// Fall back to the raw markdown.
		fmt.Print(source)
		return
	}
	fmt.Print(out)
}

// fail reports an error and maps it to an exit status.
func fail(err error) subcommands.ExitStatus {
	logger.Error(err.Error())
	return subcommands.ExitFailure
}
