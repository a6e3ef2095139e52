package cofre

// Balances derives the current balance of every known account from the full
// transaction list. The result maps account id to a signed balance,
// initialized to zero for every account in the list. Transactions whose
// account id resolves to no known account contribute to no balance: this
// tolerance of orphan references is deliberate and covered by tests, not an
// error. The fold visits records in list order; the order does not change
// the sums but keeps the derivation deterministic.
func (l *Ledger) Balances() map[string]Money {
	balances := make(map[string]Money, len(l.accounts))
	for _, account := range l.accounts {
		balances[account.ID] = Money{}
	}
	for _, t := range l.transactions {
		balance, known := balances[t.AccountID]
		if !known {
			continue
		}
		switch t.Kind {
		case KindIncome:
			balances[t.AccountID] = balance.Add(t.Amount)
		case KindExpense:
			balances[t.AccountID] = balance.Sub(t.Amount)
		case KindTransfer:
			// The debit leg carries the destination; the credit leg's
			// account is the receiving one.
			if t.IsDebitLeg() {
				balances[t.AccountID] = balance.Sub(t.Amount)
			} else {
				balances[t.AccountID] = balance.Add(t.Amount)
			}
		}
	}
	return balances
}

// BalanceOf derives the current balance of one account. It returns false
// for an unknown account id.
func (l *Ledger) BalanceOf(accountID string) (Money, bool) {
	balance, ok := l.Balances()[accountID]
	return balance, ok
}

// Totals are the overall income, expense and net over all transactions.
// Transfer legs move value between accounts and count in neither total.
type Totals struct {
	Income  Money
	Expense Money
	Net     Money
}

// Totals derives the overall income/expense/net over the transaction list.
func (l *Ledger) Totals() Totals {
	var t Totals
	for _, tx := range l.transactions {
		switch tx.Kind {
		case KindIncome:
			t.Income = t.Income.Add(tx.Amount)
		case KindExpense:
			t.Expense = t.Expense.Add(tx.Amount)
		}
	}
	t.Net = t.Income.Sub(t.Expense)
	return t
}
