package renderer

import (
	"fmt"

	"github.com/cofreapp/cofre"
)

// Summary is the view model behind the summary report templates. All money
// values are pre-formatted strings.
type Summary struct {
	Date     string
	Accounts []AccountRow
	Income   string
	Expense  string
	Net      string
	XP       int
	Level    LevelView
}

// AccountRow is one line of the account balance table.
type AccountRow struct {
	Name    string
	Balance string
	Goal    bool
}

// LevelView is the leveling block of the summary.
type LevelView struct {
	Index    int
	Name     string
	Progress string
}

func newLevelView(level cofre.Level) LevelView {
	return LevelView{
		Index:    level.Index + 1, // levels are displayed one-based
		Name:     level.Name,
		Progress: fmt.Sprintf("%.0f%%", level.Progress),
	}
}

// NewSummary builds the view model from the derived summary report.
func NewSummary(s *cofre.Summary) *Summary {
	view := &Summary{
		Date:    s.Date.String(),
		Income:  s.Totals.Income.String(),
		Expense: s.Totals.Expense.String(),
		Net:     s.Totals.Net.SignedString(),
		XP:      s.XP,
		Level:   newLevelView(s.Level),
	}
	for _, ab := range s.Accounts {
		view.Accounts = append(view.Accounts, AccountRow{
			Name:    ab.Account.Name,
			Balance: ab.Balance.String(),
			Goal:    ab.Account.IsGoalAccount,
		})
	}
	return view
}

// RenderSummary renders the summary report to a markdown string.
func RenderSummary(s *cofre.Summary) string {
	partials := map[string]string{
		"summary_accounts": "summary_accounts.md",
		"summary_totals":   "summary_totals.md",
		"summary_level":    "summary_level.md",
	}
	return renderTemplate("summary", "summary.md", partials, NewSummary(s))
}
