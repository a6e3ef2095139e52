package renderer

import (
	"github.com/cofreapp/cofre"
)

// removedMarker annotates references to since-deleted accounts and categories.
const removedMarker = " (removed)"

// TransactionRow is one line of the transaction listing.
type TransactionRow struct {
	Date        string
	Time        string
	Description string
	Amount      string
	Kind        string
	Category    string
	Account     string
	Edited      bool
	Recurring   bool
}

// Transactions is the view model behind the transaction listing template.
type Transactions struct {
	Rows []TransactionRow
}

// NewTransactions builds listing rows from the given records. The ledger
// resolves account and category references: a reference to a since-deleted
// account or category is rendered with a removed marker instead of being
// hidden, because the records themselves are kept.
func NewTransactions(l *cofre.Ledger, records []cofre.Transaction) *Transactions {
	view := &Transactions{Rows: make([]TransactionRow, 0, len(records))}
	for _, t := range records {
		amount := t.Amount.String()
		switch t.Kind {
		case cofre.KindIncome:
			amount = "+" + amount
		case cofre.KindExpense:
			amount = "-" + amount
		}

		account := t.AccountName
		if _, ok := l.Account(t.AccountID); !ok {
			account += removedMarker
		}
		category := t.Category
		if category != "" && !l.HasCategory(category) {
			category += removedMarker
		}

		view.Rows = append(view.Rows, TransactionRow{
			Date:        t.Date.String(),
			Time:        t.Time.String(),
			Description: t.Description,
			Amount:      amount,
			Kind:        string(t.Kind),
			Category:    category,
			Account:     account,
			Edited:      t.IsEdited,
			Recurring:   t.IsRecurring,
		})
	}
	return view
}

// RenderTransactions renders the transaction listing to a markdown string.
func RenderTransactions(l *cofre.Ledger, records []cofre.Transaction) string {
	return renderTemplate("transactions", "transactions.md", nil, NewTransactions(l, records))
}
