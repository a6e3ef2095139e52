package renderer

import (
	"strings"
	"testing"

	"github.com/cofreapp/cofre"
	"github.com/cofreapp/cofre/date"
)

func newTestLedger(t *testing.T) (*cofre.Ledger, cofre.Account) {
	t.Helper()
	l := cofre.NewLedger()
	wallet, err := l.AddAccount("Wallet", "#4caf50")
	if err != nil {
		t.Fatalf("AddAccount() error = %v", err)
	}
	for _, c := range []string{"Food", "Salary"} {
		if err := l.AddCategory(c); err != nil {
			t.Fatalf("AddCategory(%s) error = %v", c, err)
		}
	}
	return l, wallet
}

func record(t *testing.T, l *cofre.Ledger, day, desc string, amount float64, kind cofre.Kind, category, accountID string) cofre.Transaction {
	t.Helper()
	tx, err := l.AddTransaction(cofre.NewTransaction(date.MustParse(day), date.NewClock(12, 0), desc, cofre.R(amount), kind, category, accountID))
	if err != nil {
		t.Fatalf("AddTransaction(%s) error = %v", desc, err)
	}
	return tx
}

func TestRenderSummary(t *testing.T) {
	l, wallet := newTestLedger(t)
	record(t, l, "2025-01-10", "salary", 1000, cofre.KindIncome, "Salary", wallet.ID)

	out := RenderSummary(l.NewSummary(date.MustParse("2025-01-15")))
	for _, want := range []string{
		"# Summary on 2025-01-15",
		"## Accounts",
		"| Wallet |",
		"## Totals",
		"## Level 1: Poupador",
		"25 XP",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary is missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTransactions(t *testing.T) {
	l, wallet := newTestLedger(t)
	record(t, l, "2025-01-10", "groceries", 42.5, cofre.KindExpense, "Food", wallet.ID)
	record(t, l, "2025-01-11", "salary", 1000, cofre.KindIncome, "Salary", wallet.ID)

	out := RenderTransactions(l, l.View())
	if !strings.Contains(out, "| 2025-01-11 | 12:00 | salary |") {
		t.Errorf("listing is missing the salary row:\n%s", out)
	}
	if !strings.Contains(out, "groceries") {
		t.Errorf("listing is missing the groceries row:\n%s", out)
	}
	// Newest first: the salary row comes before the groceries row.
	if strings.Index(out, "salary") > strings.Index(out, "groceries") {
		t.Error("listing is not newest first")
	}
}

func TestRenderTransactions_MarksRemovedReferences(t *testing.T) {
	l, wallet := newTestLedger(t)
	record(t, l, "2025-01-10", "groceries", 42.5, cofre.KindExpense, "Food", wallet.ID)

	if err := l.DeleteCategory("Food"); err != nil {
		t.Fatalf("DeleteCategory() error = %v", err)
	}
	if err := l.DeleteAccount(wallet.ID); err != nil {
		t.Fatalf("DeleteAccount() error = %v", err)
	}

	out := RenderTransactions(l, l.View())
	if !strings.Contains(out, "Food (removed)") {
		t.Errorf("orphaned category is not marked:\n%s", out)
	}
	if !strings.Contains(out, "Wallet (removed)") {
		t.Errorf("orphaned account is not marked:\n%s", out)
	}
}

func TestRenderTransactions_Empty(t *testing.T) {
	l, _ := newTestLedger(t)
	if out := RenderTransactions(l, l.View()); !strings.Contains(out, "No transactions.") {
		t.Errorf("empty listing fallback missing:\n%s", out)
	}
}

func TestRenderGoals(t *testing.T) {
	l, wallet := newTestLedger(t)
	record(t, l, "2025-01-01", "salary", 1000, cofre.KindIncome, "Salary", wallet.ID)
	goal, err := l.AddGoal("Trip", cofre.R(1200), date.MustParse("2025-01-31"), "", cofre.CadenceDaily, "")
	if err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}
	if _, _, err := l.GoalMove(goal.ID, wallet.ID, cofre.R(300), false, date.MustParse("2025-01-01"), date.NewClock(9, 0)); err != nil {
		t.Fatalf("GoalMove() error = %v", err)
	}

	out := RenderGoals(l.GoalProgressOn(date.MustParse("2025-01-01")))
	for _, want := range []string{"## Trip", "(25%)", "by 2025-01-31", "Suggested daily contribution:"} {
		if !strings.Contains(out, want) {
			t.Errorf("goals report is missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHistoryAndCategories(t *testing.T) {
	l, wallet := newTestLedger(t)
	record(t, l, "2025-01-10", "salary", 1000, cofre.KindIncome, "Salary", wallet.ID)
	record(t, l, "2025-01-11", "groceries", 100, cofre.KindExpense, "Food", wallet.ID)

	history := RenderHistory(l.History())
	if !strings.Contains(history, "| 2025-01-10 |") || !strings.Contains(history, "| 2025-01-11 |") {
		t.Errorf("history is missing a day:\n%s", history)
	}

	categories := RenderCategories(l.CategoryTotals())
	if !strings.Contains(categories, "| Food |") || !strings.Contains(categories, "| Salary |") {
		t.Errorf("categories report is missing a row:\n%s", categories)
	}
}

func TestRenderLevel(t *testing.T) {
	out := RenderLevel(750)
	for _, want := range []string{"# Level 2: Investidor", "750 XP", "50%", "Next level: Estrategista."} {
		if !strings.Contains(out, want) {
			t.Errorf("level report is missing %q:\n%s", want, out)
		}
	}
	if out := RenderLevel(2000); strings.Contains(out, "Next level:") {
		t.Errorf("terminal level still advertises a next level:\n%s", out)
	}
}
