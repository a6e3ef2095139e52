package cofre

import (
	"slices"

	"github.com/cofreapp/cofre/date"
)

// historyWindow is the number of most recent distinct days the daily report
// covers.
const historyWindow = 15

// DailyFlow is one day's income and expense totals. Transfer legs are
// internal movements and are excluded.
type DailyFlow struct {
	Date    date.Date
	Income  Money
	Expense Money
}

// History derives the per-day income/expense series, sorted by date
// ascending and windowed to the most recent distinct days present in the
// ledger.
func (l *Ledger) History() []DailyFlow {
	byDay := make(map[date.Date]DailyFlow)
	for _, t := range l.transactions {
		if t.Kind == KindTransfer {
			continue
		}
		flow := byDay[t.Date]
		flow.Date = t.Date
		switch t.Kind {
		case KindIncome:
			flow.Income = flow.Income.Add(t.Amount)
		case KindExpense:
			flow.Expense = flow.Expense.Add(t.Amount)
		}
		byDay[t.Date] = flow
	}

	series := make([]DailyFlow, 0, len(byDay))
	for _, flow := range byDay {
		series = append(series, flow)
	}
	slices.SortFunc(series, func(a, b DailyFlow) int { return a.Date.Compare(b.Date) })
	if len(series) > historyWindow {
		series = series[len(series)-historyWindow:]
	}
	return series
}

// CategoryTotal is one category's income and expense totals.
type CategoryTotal struct {
	Category string
	Income   Money
	Expense  Money
}

// CategoryTotals derives per-category totals for income and expense kinds,
// in category list order. Only categories still present in the list appear:
// orphaned categories are excluded from aggregates even though their
// transactions remain visible in raw listings.
func (l *Ledger) CategoryTotals() []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(l.categories))
	for _, category := range l.categories {
		total := CategoryTotal{Category: category}
		for _, t := range l.transactions {
			if t.Category != category {
				continue
			}
			switch t.Kind {
			case KindIncome:
				total.Income = total.Income.Add(t.Amount)
			case KindExpense:
				total.Expense = total.Expense.Add(t.Amount)
			}
		}
		totals = append(totals, total)
	}
	return totals
}

// GoalProgress is the derived state of one goal: the reserve balance, the
// completion percentage and the savings-plan suggestion when one applies.
type GoalProgress struct {
	Goal      Goal
	Balance   Money
	Percent   float64
	Suggested Money
	HasPlan   bool
}

// GoalProgressOn derives progress and plan for every goal as of a given day.
// The day only affects the plan horizon; balances are always current.
func (l *Ledger) GoalProgressOn(on date.Date) []GoalProgress {
	balances := l.Balances()
	progress := make([]GoalProgress, 0, len(l.goals))
	for _, goal := range l.goals {
		balance := balances[goal.LinkedAccountID]
		suggested, hasPlan := goal.Plan(balance, on)
		progress = append(progress, GoalProgress{
			Goal:      goal,
			Balance:   balance,
			Percent:   goal.Progress(balance),
			Suggested: suggested,
			HasPlan:   hasPlan,
		})
	}
	return progress
}

// AccountBalance pairs an account with its derived balance.
type AccountBalance struct {
	Account Account
	Balance Money
}

// Summary is the at-a-glance state of the ledger on a given day.
type Summary struct {
	Date     date.Date
	Accounts []AccountBalance
	Totals   Totals
	XP       int
	Level    Level
}

// NewSummary derives the summary report.
func (l *Ledger) NewSummary(on date.Date) *Summary {
	balances := l.Balances()
	accounts := make([]AccountBalance, 0, len(l.accounts))
	for _, account := range l.accounts {
		accounts = append(accounts, AccountBalance{Account: account, Balance: balances[account.ID]})
	}
	return &Summary{
		Date:     on,
		Accounts: accounts,
		Totals:   l.Totals(),
		XP:       l.xp,
		Level:    l.Level(),
	}
}
