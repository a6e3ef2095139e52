package cofre

import (
	"testing"

	"github.com/cofreapp/cofre/date"
)

func TestLevelFor(t *testing.T) {
	testCases := []struct {
		points       int
		wantIndex    int
		wantName     string
		wantProgress float64
	}{
		{0, 0, "Poupador", 0},
		{250, 0, "Poupador", 50},
		{375, 0, "Poupador", 75},
		{500, 1, "Investidor", 0},
		{750, 1, "Investidor", 50},
		{1000, 2, "Estrategista", 0},
		{1250, 2, "Estrategista", 50},
		{1500, 3, "Mestre das Finanças", 100},
		{2000, 4, "Mestre das Finanças", 100},
		{9999, 19, "Mestre das Finanças", 100},
		{-10, 0, "Poupador", 0},
	}

	for _, tc := range testCases {
		got := LevelFor(tc.points)
		if got.Index != tc.wantIndex || got.Name != tc.wantName || got.Progress != tc.wantProgress {
			t.Errorf("LevelFor(%d) = %+v, want index %d name %q progress %v",
				tc.points, got, tc.wantIndex, tc.wantName, tc.wantProgress)
		}
	}
}

// Experience points only accrue; no mutation may decrease the counter.
func TestLedger_XPIsMonotonic(t *testing.T) {
	l, wallet, bank := newTestLedger(t)

	last := l.XP()
	check := func(step string) {
		t.Helper()
		if l.XP() < last {
			t.Errorf("after %s: xp decreased from %d to %d", step, last, l.XP())
		}
		last = l.XP()
	}

	tx := record(t, l, "2025-01-10", "salary", 1000, KindIncome, "Salary", wallet.ID)
	check("add transaction")

	if _, _, err := l.NewTransfer(wallet.ID, bank.ID, R(100), date.MustParse("2025-01-11"), date.NewClock(9, 0), ""); err != nil {
		t.Fatalf("NewTransfer() error = %v", err)
	}
	check("transfer")

	if err := l.DeleteTransaction(tx.ID); err != nil {
		t.Fatalf("DeleteTransaction() error = %v", err)
	}
	check("delete transaction")

	goal, err := l.AddGoal("Trip", R(500), date.MustParse("2025-06-30"), "", CadenceMonthly, "")
	if err != nil {
		t.Fatalf("AddGoal() error = %v", err)
	}
	check("add goal")

	if err := l.DeleteGoal(goal.ID); err != nil {
		t.Fatalf("DeleteGoal() error = %v", err)
	}
	check("delete goal")
}
