package renderer

import (
	"github.com/cofreapp/cofre"
)

// CategoryRow is one category of the category totals report.
type CategoryRow struct {
	Category string
	Income   string
	Expense  string
}

// Categories is the view model behind the category totals template.
type Categories struct {
	Rows []CategoryRow
}

// NewCategories builds the view model from derived category totals.
func NewCategories(totals []cofre.CategoryTotal) *Categories {
	view := &Categories{Rows: make([]CategoryRow, 0, len(totals))}
	for _, ct := range totals {
		view.Rows = append(view.Rows, CategoryRow{
			Category: ct.Category,
			Income:   ct.Income.String(),
			Expense:  ct.Expense.String(),
		})
	}
	return view
}

// RenderCategories renders the category totals report to a markdown string.
func RenderCategories(totals []cofre.CategoryTotal) string {
	return renderTemplate("categories", "categories.md", nil, NewCategories(totals))
}
