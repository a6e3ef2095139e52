package renderer

import (
	"github.com/cofreapp/cofre"
)

// HistoryRow is one day of the daily flow report.
type HistoryRow struct {
	Date    string
	Income  string
	Expense string
	Net     string
}

// History is the view model behind the daily flow template.
type History struct {
	Rows []HistoryRow
}

// NewHistory builds the view model from the derived daily series.
func NewHistory(flows []cofre.DailyFlow) *History {
	view := &History{Rows: make([]HistoryRow, 0, len(flows))}
	for _, f := range flows {
		view.Rows = append(view.Rows, HistoryRow{
			Date:    f.Date.String(),
			Income:  f.Income.String(),
			Expense: f.Expense.String(),
			Net:     f.Income.Sub(f.Expense).SignedString(),
		})
	}
	return view
}

// RenderHistory renders the daily flow report to a markdown string.
func RenderHistory(flows []cofre.DailyFlow) string {
	return renderTemplate("history", "history.md", nil, NewHistory(flows))
}
