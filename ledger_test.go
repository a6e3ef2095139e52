package cofre

import (
	"errors"
	"testing"
	"time"

	"github.com/cofreapp/cofre/date"
)

func TestLedger_AddTransaction(t *testing.T) {
	l, wallet, _ := newTestLedger(t)
	xpBefore := l.XP()

	tx := record(t, l, "2025-01-10", "groceries", 42.50, KindExpense, "Food", wallet.ID)
	if tx.ID == "" {
		t.Error("AddTransaction() left an empty id")
	}
	if tx.AccountName != "Wallet" {
		t.Errorf("AccountName = %q, want Wallet", tx.AccountName)
	}
	if got := l.XP() - xpBefore; got != RewardTransaction {
		t.Errorf("record awarded %d points, want %d", got, RewardTransaction)
	}
}

func TestLedger_AddTransaction_DefaultsDateToToday(t *testing.T) {
	l, wallet, _ := newTestLedger(t)
	tx, err := l.AddTransaction(NewTransaction(date.Date{}, date.NewClock(12, 0), "coffee", R(8), KindExpense, "Food", wallet.ID))
	if err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}
	if tx.Date != date.Today() {
		t.Errorf("Date = %s, want today", tx.Date)
	}
}

func TestLedger_AddTransaction_Rejections(t *testing.T) {
	l, wallet, _ := newTestLedger(t)

	testCases := []struct {
		name    string
		tx      Transaction
		wantErr error
	}{
		{
			name:    "transfer kind",
			tx:      NewTransaction(date.Today(), date.NewClock(12, 0), "x", R(10), KindTransfer, "", wallet.ID),
			wantErr: nil, // typed message, no sentinel
		},
		{
			name:    "zero amount",
			tx:      NewTransaction(date.Today(), date.NewClock(12, 0), "x", R(0), KindExpense, "", wallet.ID),
			wantErr: ErrAmountNotPositive,
		},
		{
			name:    "blank description",
			tx:      NewTransaction(date.Today(), date.NewClock(12, 0), "   ", R(10), KindExpense, "", wallet.ID),
			wantErr: ErrEmptyName,
		},
		{
			name:    "unknown account",
			tx:      NewTransaction(date.Today(), date.NewClock(12, 0), "x", R(10), KindExpense, "", "nope"),
			wantErr: ErrUnknownAccount,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			xp := l.XP()
			_, err := l.AddTransaction(tc.tx)
			if err == nil {
				t.Fatal("AddTransaction() accepted an invalid record")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("error = %v, want %v", err, tc.wantErr)
			}
			if l.XP() != xp {
				t.Error("rejected record accrued points")
			}
		})
	}
}

func TestLedger_View_FiltersAndOrder(t *testing.T) {
	l, wallet, bank := newTestLedger(t)

	record(t, l, "2025-01-10", "Monthly salary", 1000, KindIncome, "Salary", wallet.ID)
	record(t, l, "2025-01-12", "Groceries at the market", 120, KindExpense, "Food", wallet.ID)
	record(t, l, "2025-01-11", "Restaurant", 60, KindExpense, "Food", bank.ID)

	view := l.View()
	if len(view) != 3 {
		t.Fatalf("View() has %d records, want 3", len(view))
	}
	for i := 1; i < len(view); i++ {
		if view[i-1].Date.Before(view[i].Date) {
			t.Fatal("View() is not sorted newest first")
		}
	}

	// Filters compose with AND.
	filtered := l.View(ByKind(KindExpense), ByAccount(wallet.ID))
	if len(filtered) != 1 || filtered[0].Description != "Groceries at the market" {
		t.Errorf("View(expense, wallet) = %d records, want exactly the groceries", len(filtered))
	}

	// Description search is a case-insensitive substring match.
	if got := l.View(ByDescription("SALARY")); len(got) != 1 {
		t.Errorf("View(description SALARY) = %d records, want 1", len(got))
	}
	if got := l.View(ByCategory("Food")); len(got) != 2 {
		t.Errorf("View(category Food) = %d records, want 2", len(got))
	}
}

func TestLedger_View_SameDayOrderedByTime(t *testing.T) {
	l, wallet, _ := newTestLedger(t)

	morning, err := l.AddTransaction(NewTransaction(date.MustParse("2025-01-10"), date.NewClock(8, 0), "breakfast", R(15), KindExpense, "Food", wallet.ID))
	if err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}
	evening, err := l.AddTransaction(NewTransaction(date.MustParse("2025-01-10"), date.NewClock(20, 0), "dinner", R(45), KindExpense, "Food", wallet.ID))
	if err != nil {
		t.Fatalf("AddTransaction() error = %v", err)
	}

	view := l.View()
	if view[0].ID != evening.ID || view[1].ID != morning.ID {
		t.Error("same-day records are not ordered by clock time descending")
	}
}

func TestLedger_EditTransaction(t *testing.T) {
	defer func(f func() time.Time) { now = f }(now)
	stamp := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	now = func() time.Time { return stamp }

	l, wallet, bank := newTestLedger(t)
	tx := record(t, l, "2025-01-10", "groceries", 100, KindExpense, "Food", wallet.ID)

	desc := "groceries and cleaning"
	amount := R(130)
	account := bank.ID
	got, err := l.EditTransaction(tx.ID, TransactionEdit{Description: &desc, Amount: &amount, AccountID: &account})
	if err != nil {
		t.Fatalf("EditTransaction() error = %v", err)
	}
	if got.Description != desc || !got.Amount.Equal(amount) {
		t.Errorf("edit did not apply: %q %s", got.Description, got.Amount)
	}
	if got.AccountID != bank.ID || got.AccountName != "Bank" {
		t.Errorf("account move: id %q name %q, want bank", got.AccountID, got.AccountName)
	}
	if !got.IsEdited {
		t.Error("IsEdited = false after an edit")
	}
	if !got.UpdatedAt.Equal(stamp) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt, stamp)
	}
	// Kind, date and time are untouched.
	if got.Kind != tx.Kind || got.Date != tx.Date || got.Time != tx.Time {
		t.Error("edit changed an immutable field")
	}
}

func TestLedger_EditTransaction_TransferLeg(t *testing.T) {
	l, wallet, bank := newTestLedger(t)
	record(t, l, "2025-01-09", "salary", 500, KindIncome, "Salary", wallet.ID)
	debit, credit, err := l.NewTransfer(wallet.ID, bank.ID, R(100), date.MustParse("2025-01-10"), date.NewClock(9, 0), "")
	if err != nil {
		t.Fatalf("NewTransfer() error = %v", err)
	}

	// The account of a leg cannot change.
	if _, err := l.EditTransaction(debit.ID, TransactionEdit{AccountID: &bank.ID}); !errors.Is(err, ErrTransferLeg) {
		t.Errorf("account edit on a leg: error = %v, want %v", err, ErrTransferLeg)
	}

	// An amount change reaches both legs.
	amount := R(150)
	if _, err := l.EditTransaction(debit.ID, TransactionEdit{Amount: &amount}); err != nil {
		t.Fatalf("EditTransaction() error = %v", err)
	}
	gotDebit, _ := l.Transaction(debit.ID)
	gotCredit, _ := l.Transaction(credit.ID)
	if !gotDebit.Amount.Equal(amount) || !gotCredit.Amount.Equal(amount) {
		t.Errorf("leg amounts = %s / %s, want both %s", gotDebit.Amount, gotCredit.Amount, amount)
	}
	if !gotCredit.IsEdited || !gotCredit.UpdatedAt.Equal(gotDebit.UpdatedAt) {
		t.Error("sibling leg was not stamped with the same edit")
	}
	if got, want := l.Balances()[bank.ID], R(150); !got.Equal(want) {
		t.Errorf("balance(bank) = %s, want %s", got, want)
	}
}

func TestLedger_DeleteTransaction_Unknown(t *testing.T) {
	l, _, _ := newTestLedger(t)
	if err := l.DeleteTransaction("nope"); !errors.Is(err, ErrUnknownTransaction) {
		t.Errorf("error = %v, want %v", err, ErrUnknownTransaction)
	}
}

func TestLedger_RenameAccount(t *testing.T) {
	l, wallet, bank := newTestLedger(t)
	record(t, l, "2025-01-10", "groceries", 100, KindExpense, "Food", wallet.ID)
	record(t, l, "2025-01-11", "restaurant", 60, KindExpense, "Food", bank.ID)

	if err := l.RenameAccount(wallet.ID, "Cash"); err != nil {
		t.Fatalf("RenameAccount() error = %v", err)
	}

	account, _ := l.Account(wallet.ID)
	if account.Name != "Cash" {
		t.Errorf("account name = %q, want Cash", account.Name)
	}
	for _, tx := range l.Transactions() {
		want := "Cash"
		if tx.AccountID == bank.ID {
			want = "Bank"
		}
		if tx.AccountName != want {
			t.Errorf("snapshot on %q = %q, want %q", tx.Description, tx.AccountName, want)
		}
	}

	if err := l.RenameAccount(wallet.ID, "  "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank rename: error = %v, want %v", err, ErrEmptyName)
	}
	if err := l.RenameAccount("nope", "X"); !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("unknown rename: error = %v, want %v", err, ErrUnknownAccount)
	}
}

func TestLedger_DeleteAccount_LeavesOrphanRecords(t *testing.T) {
	l, wallet, _ := newTestLedger(t)
	record(t, l, "2025-01-10", "groceries", 100, KindExpense, "Food", wallet.ID)

	if err := l.DeleteAccount(wallet.ID); err != nil {
		t.Fatalf("DeleteAccount() error = %v", err)
	}
	if _, ok := l.Account(wallet.ID); ok {
		t.Fatal("account survived deletion")
	}
	// The record stays and is simply skipped by balance derivation.
	if got := len(l.View()); got != 1 {
		t.Errorf("records after account deletion = %d, want 1", got)
	}
	if _, ok := l.Balances()[wallet.ID]; ok {
		t.Error("deleted account still has a balance entry")
	}
}

func TestLedger_Categories(t *testing.T) {
	l, _, _ := newTestLedger(t)

	if err := l.AddCategory("Food"); !errors.Is(err, ErrCategoryExists) {
		t.Errorf("duplicate add: error = %v, want %v", err, ErrCategoryExists)
	}
	if err := l.AddCategory("  "); !errors.Is(err, ErrEmptyName) {
		t.Errorf("blank add: error = %v, want %v", err, ErrEmptyName)
	}
	if err := l.AddCategory("  Transport  "); err != nil {
		t.Fatalf("AddCategory() error = %v", err)
	}
	if !l.HasCategory("Transport") {
		t.Error("category was not trimmed on add")
	}
}

func TestLedger_RenameCategory(t *testing.T) {
	l, wallet, _ := newTestLedger(t)
	record(t, l, "2025-01-10", "groceries", 100, KindExpense, "Food", wallet.ID)

	if err := l.RenameCategory("Food", "Salary"); !errors.Is(err, ErrCategoryExists) {
		t.Errorf("rename onto existing: error = %v, want %v", err, ErrCategoryExists)
	}
	if err := l.RenameCategory("nope", "X"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("rename unknown: error = %v, want %v", err, ErrUnknownCategory)
	}

	if err := l.RenameCategory("Food", "Groceries"); err != nil {
		t.Fatalf("RenameCategory() error = %v", err)
	}
	if l.HasCategory("Food") || !l.HasCategory("Groceries") {
		t.Error("category list was not renamed")
	}
	for _, tx := range l.Transactions() {
		if tx.Category != "Groceries" {
			t.Errorf("record category = %q, want Groceries", tx.Category)
		}
	}
}
