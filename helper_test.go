package cofre

import (
	"testing"

	"github.com/cofreapp/cofre/date"
)

// newTestLedger builds a ledger with two regular accounts and two
// categories, the minimal fixture most tests start from.
func newTestLedger(t *testing.T) (l *Ledger, wallet, bank Account) {
	t.Helper()
	l = NewLedger()
	var err error
	if wallet, err = l.AddAccount("Wallet", "#4caf50"); err != nil {
		t.Fatalf("AddAccount(Wallet) error = %v", err)
	}
	if bank, err = l.AddAccount("Bank", "#2196f3"); err != nil {
		t.Fatalf("AddAccount(Bank) error = %v", err)
	}
	for _, c := range []string{"Food", "Salary"} {
		if err := l.AddCategory(c); err != nil {
			t.Fatalf("AddCategory(%s) error = %v", c, err)
		}
	}
	return l, wallet, bank
}

// record appends an income or expense through the public mutation and fails
// the test on rejection.
func record(t *testing.T, l *Ledger, day string, desc string, amount float64, kind Kind, category, accountID string) Transaction {
	t.Helper()
	tx, err := l.AddTransaction(NewTransaction(date.MustParse(day), date.NewClock(12, 0), desc, R(amount), kind, category, accountID))
	if err != nil {
		t.Fatalf("AddTransaction(%s) error = %v", desc, err)
	}
	return tx
}
