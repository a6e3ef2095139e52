package renderer

import (
	"fmt"

	"github.com/cofreapp/cofre"
)

// GoalRow is one goal of the goals report.
type GoalRow struct {
	Name      string
	Saved     string
	Target    string
	Percent   string
	Deadline  string // empty when the goal has no deadline
	Suggested string // empty when no plan applies
	Cadence   string
}

// Goals is the view model behind the goals report template.
type Goals struct {
	Rows []GoalRow
}

// NewGoals builds the view model from derived goal progress.
func NewGoals(progress []cofre.GoalProgress) *Goals {
	view := &Goals{Rows: make([]GoalRow, 0, len(progress))}
	for _, p := range progress {
		row := GoalRow{
			Name:    p.Goal.Name,
			Saved:   p.Balance.String(),
			Target:  p.Goal.Target.String(),
			Percent: fmt.Sprintf("%.0f%%", p.Percent),
			Cadence: string(p.Goal.Cadence),
		}
		if !p.Goal.Deadline.IsZero() {
			row.Deadline = p.Goal.Deadline.String()
		}
		if p.HasPlan {
			row.Suggested = p.Suggested.String()
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// RenderGoals renders the goals report to a markdown string.
func RenderGoals(progress []cofre.GoalProgress) string {
	return renderTemplate("goals", "goals.md", nil, NewGoals(progress))
}
