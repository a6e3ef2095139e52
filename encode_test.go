package cofre

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/cofreapp/cofre/date"
)

// assertSameLedger compares two ledgers field by field, using value equality
// for amounts and timestamps.
func assertSameLedger(t *testing.T, got, want *Ledger) {
	t.Helper()
	if len(got.transactions) != len(want.transactions) {
		t.Fatalf("transactions = %d, want %d", len(got.transactions), len(want.transactions))
	}
	for i := range want.transactions {
		if !got.transactions[i].Equal(want.transactions[i]) {
			t.Errorf("transaction %d differs:\n got %+v\nwant %+v", i, got.transactions[i], want.transactions[i])
		}
	}
	if len(got.accounts) != len(want.accounts) {
		t.Fatalf("accounts = %d, want %d", len(got.accounts), len(want.accounts))
	}
	for i := range want.accounts {
		if got.accounts[i] != want.accounts[i] {
			t.Errorf("account %d = %+v, want %+v", i, got.accounts[i], want.accounts[i])
		}
	}
	if len(got.categories) != len(want.categories) {
		t.Fatalf("categories = %d, want %d", len(got.categories), len(want.categories))
	}
	for i := range want.categories {
		if got.categories[i] != want.categories[i] {
			t.Errorf("category %d = %q, want %q", i, got.categories[i], want.categories[i])
		}
	}
	if len(got.goals) != len(want.goals) {
		t.Fatalf("goals = %d, want %d", len(got.goals), len(want.goals))
	}
	for i := range want.goals {
		g, w := got.goals[i], want.goals[i]
		same := g.ID == w.ID && g.Name == w.Name && g.Target.Equal(w.Target) &&
			g.Current.Equal(w.Current) && g.Deadline == w.Deadline &&
			g.Category == w.Category && g.Cadence == w.Cadence &&
			g.LinkedAccountID == w.LinkedAccountID
		if !same {
			t.Errorf("goal %d = %+v, want %+v", i, g, w)
		}
	}
	if got.xp != want.xp {
		t.Errorf("xp = %d, want %d", got.xp, want.xp)
	}
	if !got.lastSync.Equal(want.lastSync) {
		t.Errorf("lastSync = %v, want %v", got.lastSync, want.lastSync)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	// Edit stamps must survive the second-precision wire format.
	defer func(f func() time.Time) { now = f }(now)
	now = func() time.Time { return time.Date(2025, 1, 14, 16, 45, 0, 0, time.UTC) }

	l, wallet, bank := newTestLedger(t)
	record(t, l, "2025-01-10", "salary", 1000, KindIncome, "Salary", wallet.ID)
	groceries := record(t, l, "2025-01-11", "groceries", 42.50, KindExpense, "Food", wallet.ID)
	if _, _, err := l.NewTransfer(wallet.ID, bank.ID, R(300), date.MustParse("2025-01-12"), date.NewClock(9, 30), "savings"); err != nil {
		t.Fatalf("NewTransfer() error = %v", err)
	}
	goal, err := l.AddGoal("Trip", R(1200), date.MustParse("2025-06-30"), "Travel", CadenceMonthly, "#ff9800")
	if err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}
	if _, _, err := l.GoalMove(goal.ID, bank.ID, R(100), false, date.MustParse("2025-01-13"), date.NewClock(8, 0)); err != nil {
		t.Fatalf("GoalMove() error = %v", err)
	}
	recurring := true
	freq := FreqMonthly
	if _, err := l.EditTransaction(groceries.ID, TransactionEdit{IsRecurring: &recurring, Frequency: &freq}); err != nil {
		t.Fatalf("EditTransaction() error = %v", err)
	}
	l.Touch()

	var buf bytes.Buffer
	if err := EncodeDocument(&buf, l); err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}

	decoded, err := DecodeDocument(&buf)
	if err != nil {
		t.Fatalf("DecodeDocument() error = %v", err)
	}
	assertSameLedger(t, decoded, l)
}

func TestEncodeDocument_EmptyLedger(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeDocument(&buf, NewLedger()); err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}
	out := buf.String()
	// Empty collections stay as [] so readers never see null.
	for _, want := range []string{`"transactions": []`, `"accounts": []`, `"categories": []`, `"goals": []`, `"xp": 0`} {
		if !strings.Contains(out, want) {
			t.Errorf("document is missing %s:\n%s", want, out)
		}
	}
}

func TestDecodeDocument_Rejections(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{name: "not json", doc: `{"transactions": [`},
		{name: "negative xp", doc: `{"xp": -1}`},
		{name: "bad lastSync", doc: `{"lastSync": "yesterday"}`},
		{name: "account without id", doc: `{"accounts": [{"name": "Wallet"}]}`},
		{
			name: "duplicate account id",
			doc:  `{"accounts": [{"id": "a", "name": "A"}, {"id": "a", "name": "B"}]}`,
		},
		{
			name: "unknown kind",
			doc:  `{"transactions": [{"id": "t1", "description": "x", "amount": 1, "kind": "loan", "accountId": "a", "date": "2025-01-01", "time": "10:00"}]}`,
		},
		{
			name: "negative amount",
			doc:  `{"transactions": [{"id": "t1", "description": "x", "amount": -5, "kind": "expense", "accountId": "a", "date": "2025-01-01", "time": "10:00"}]}`,
		},
		{
			name: "missing date",
			doc:  `{"transactions": [{"id": "t1", "description": "x", "amount": 1, "kind": "expense", "accountId": "a", "time": "10:00"}]}`,
		},
		{
			name: "transfer without link",
			doc:  `{"transactions": [{"id": "t1", "description": "x", "amount": 1, "kind": "transfer", "accountId": "a", "date": "2025-01-01", "time": "10:00"}]}`,
		},
		{
			name: "lonely transfer leg",
			doc: `{"transactions": [
				{"id": "t1", "description": "x", "amount": 1, "kind": "transfer", "accountId": "a", "date": "2025-01-01", "time": "10:00", "destinationAccountId": "b", "linkedTransferId": "L"}
			]}`,
		},
		{
			name: "two debit legs",
			doc: `{"transactions": [
				{"id": "t1", "description": "x", "amount": 1, "kind": "transfer", "accountId": "a", "date": "2025-01-01", "time": "10:00", "destinationAccountId": "b", "linkedTransferId": "L"},
				{"id": "t2", "description": "x", "amount": 1, "kind": "transfer", "accountId": "b", "date": "2025-01-01", "time": "10:00", "destinationAccountId": "a", "linkedTransferId": "L"}
			]}`,
		},
		{
			name: "legs disagree on amount",
			doc: `{"transactions": [
				{"id": "t1", "description": "x", "amount": 1, "kind": "transfer", "accountId": "a", "date": "2025-01-01", "time": "10:00", "destinationAccountId": "b", "linkedTransferId": "L"},
				{"id": "t2", "description": "x", "amount": 2, "kind": "transfer", "accountId": "b", "date": "2025-01-01", "time": "10:00", "linkedTransferId": "L"}
			]}`,
		},
		{
			name: "debit destination does not match credit account",
			doc: `{"transactions": [
				{"id": "t1", "description": "x", "amount": 1, "kind": "transfer", "accountId": "a", "date": "2025-01-01", "time": "10:00", "destinationAccountId": "c", "linkedTransferId": "L"},
				{"id": "t2", "description": "x", "amount": 1, "kind": "transfer", "accountId": "b", "date": "2025-01-01", "time": "10:00", "linkedTransferId": "L"}
			]}`,
		},
		{
			name: "expense with link id",
			doc:  `{"transactions": [{"id": "t1", "description": "x", "amount": 1, "kind": "expense", "accountId": "a", "date": "2025-01-01", "time": "10:00", "linkedTransferId": "L"}]}`,
		},
		{
			name: "goal links to unknown account",
			doc:  `{"goals": [{"id": "g1", "name": "Trip", "target": 100, "cadence": "monthly", "linkedAccountId": "nope"}]}`,
		},
		{
			name: "goal links to a regular account",
			doc: `{"accounts": [{"id": "a", "name": "Wallet"}],
				"goals": [{"id": "g1", "name": "Trip", "target": 100, "cadence": "monthly", "linkedAccountId": "a"}]}`,
		},
		{
			name: "two goals share one reserve",
			doc: `{"accounts": [{"id": "a", "name": "Trip", "isGoalAccount": true}],
				"goals": [
					{"id": "g1", "name": "Trip", "target": 100, "cadence": "monthly", "linkedAccountId": "a"},
					{"id": "g2", "name": "Trip 2", "target": 100, "cadence": "monthly", "linkedAccountId": "a"}
				]}`,
		},
		{
			name: "goal with unknown cadence",
			doc: `{"accounts": [{"id": "a", "name": "Trip", "isGoalAccount": true}],
				"goals": [{"id": "g1", "name": "Trip", "target": 100, "cadence": "quarterly", "linkedAccountId": "a"}]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeDocument(strings.NewReader(tc.doc))
			if err == nil {
				t.Fatal("DecodeDocument() accepted an invalid document")
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Errorf("error = %v, want a *ParseError", err)
			}
		})
	}
}

func TestDecodeDocument_ToleratesOrphanReferences(t *testing.T) {
	doc := `{
		"transactions": [
			{"id": "t1", "description": "old expense", "amount": 10, "kind": "expense", "category": "Ghost", "accountId": "gone", "accountName": "Closed", "date": "2025-01-01", "time": "10:00"}
		],
		"accounts": [],
		"categories": [],
		"goals": [],
		"xp": 25,
		"lastSync": "2025-01-02T10:00:00Z"
	}`
	l, err := DecodeDocument(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeDocument() error = %v", err)
	}
	if got := len(l.View()); got != 1 {
		t.Errorf("records = %d, want 1", got)
	}
	if got := len(l.Balances()); got != 0 {
		t.Errorf("balances = %d, want 0", got)
	}
}
