package cofre

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/cofreapp/cofre/date"
	"github.com/google/uuid"
)

// Validation rejections. They are reported before any state is mutated.
var (
	ErrAmountNotPositive  = errors.New("amount must be positive")
	ErrSameAccount        = errors.New("source and destination accounts are the same")
	ErrUnknownAccount     = errors.New("unknown account")
	ErrUnknownTransaction = errors.New("unknown transaction")
	ErrUnknownGoal        = errors.New("unknown goal")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrEmptyName          = errors.New("name is required")
	ErrCategoryExists     = errors.New("category already exists")
	ErrTransferLeg        = errors.New("not editable on a transfer leg")
)

// now is swapped in tests to get stable edit timestamps.
var now = time.Now

// Ledger is the single source of truth: the ordered transaction list and the
// accounts, categories, goals, experience points and last-sync stamp around
// it. All mutations go through Ledger methods; everything derived (balances,
// aggregates, plans, level) is recomputed from current state on each call.
type Ledger struct {
	transactions []Transaction
	accounts     []Account
	categories   []string
	goals        []Goal
	xp           int
	lastSync     time.Time
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
		accounts:     make([]Account, 0),
		categories:   make([]string, 0),
		goals:        make([]Goal, 0),
	}
}

// XP returns the cumulative experience points. The counter never decreases.
func (l *Ledger) XP() int { return l.xp }

// award accrues experience points. Negative awards are ignored so the
// counter stays monotonically non-decreasing.
func (l *Ledger) award(points int) {
	if points > 0 {
		l.xp += points
	}
}

// Level returns the level projection for the current experience points.
func (l *Ledger) Level() Level { return LevelFor(l.xp) }

// LastSync returns the last persistence timestamp recorded in the document.
func (l *Ledger) LastSync() time.Time { return l.lastSync }

// Touch refreshes the last-sync stamp. The storage collaborator calls it
// when the document is about to be persisted.
func (l *Ledger) Touch() { l.lastSync = now().UTC().Truncate(time.Second) }

// Transactions returns an iterator over transactions in list order. All
// filters must accept a record for it to be yielded; with no filters every
// record is yielded.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accepted := true
			for _, filter := range filters {
				if !filter(tx) {
					accepted = false
					break
				}
			}
			if !accepted {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// View returns the filtered transactions sorted by date and time, newest
// first. It is the listing the UI renders.
func (l *Ledger) View(filters ...func(Transaction) bool) []Transaction {
	view := make([]Transaction, 0, len(l.transactions))
	for _, tx := range l.Transactions(filters...) {
		view = append(view, tx)
	}
	slices.SortStableFunc(view, compareNewestFirst)
	return view
}

// Transaction returns the record with the given id.
func (l *Ledger) Transaction(id string) (Transaction, bool) {
	i := l.transactionIndex(id)
	if i < 0 {
		return Transaction{}, false
	}
	return l.transactions[i], true
}

func (l *Ledger) transactionIndex(id string) int {
	return slices.IndexFunc(l.transactions, func(t Transaction) bool { return t.ID == id })
}

// Accounts returns a copy of the account list in document order.
func (l *Ledger) Accounts() []Account { return slices.Clone(l.accounts) }

// Account returns the account with the given id.
func (l *Ledger) Account(id string) (Account, bool) {
	i := l.accountIndex(id)
	if i < 0 {
		return Account{}, false
	}
	return l.accounts[i], true
}

// AccountByName returns the first account with the given display name.
func (l *Ledger) AccountByName(name string) (Account, bool) {
	i := slices.IndexFunc(l.accounts, func(a Account) bool { return a.Name == name })
	if i < 0 {
		return Account{}, false
	}
	return l.accounts[i], true
}

func (l *Ledger) accountIndex(id string) int {
	return slices.IndexFunc(l.accounts, func(a Account) bool { return a.ID == id })
}

// Goals returns a copy of the goal list in document order.
func (l *Ledger) Goals() []Goal { return slices.Clone(l.goals) }

// Goal returns the goal with the given id.
func (l *Ledger) Goal(id string) (Goal, bool) {
	i := l.goalIndex(id)
	if i < 0 {
		return Goal{}, false
	}
	return l.goals[i], true
}

// GoalByAccount returns the goal owning the given reserve account.
func (l *Ledger) GoalByAccount(accountID string) (Goal, bool) {
	i := slices.IndexFunc(l.goals, func(g Goal) bool { return g.LinkedAccountID == accountID })
	if i < 0 {
		return Goal{}, false
	}
	return l.goals[i], true
}

func (l *Ledger) goalIndex(id string) int {
	return slices.IndexFunc(l.goals, func(g Goal) bool { return g.ID == id })
}

// Categories returns a copy of the category list in document order.
func (l *Ledger) Categories() []string { return slices.Clone(l.categories) }

// HasCategory reports whether the category is still present in the list.
func (l *Ledger) HasCategory(name string) bool { return slices.Contains(l.categories, name) }

// NewTransaction builds an income or expense record stamped with the given
// day and clock time. Recurrence intent can be set on the returned value
// before AddTransaction.
func NewTransaction(on date.Date, at date.Clock, description string, amount Money, kind Kind, category, accountID string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
		AccountID:   accountID,
		Date:        on,
		Time:        at,
	}
}

// AddTransaction validates and appends an income or expense record, awarding
// the transaction reward. Transfer records are created by NewTransfer only.
// A zero date resolves to today. The account name snapshot is taken here.
func (l *Ledger) AddTransaction(t Transaction) (Transaction, error) {
	if t.Kind != KindIncome && t.Kind != KindExpense {
		return t, fmt.Errorf("cannot add a %q record directly", t.Kind)
	}
	if !t.Amount.IsPositive() {
		return t, ErrAmountNotPositive
	}
	if strings.TrimSpace(t.Description) == "" {
		return t, fmt.Errorf("description: %w", ErrEmptyName)
	}
	if !t.Frequency.valid() {
		return t, fmt.Errorf("unknown recurrence frequency: %q", t.Frequency)
	}
	account, ok := l.Account(t.AccountID)
	if !ok {
		return t, fmt.Errorf("account %q: %w", t.AccountID, ErrUnknownAccount)
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Date.IsZero() {
		t.Date = date.Today()
	}
	t.AccountName = account.Name
	l.transactions = append(l.transactions, t)
	l.award(RewardTransaction)
	return t, nil
}

// TransactionEdit names the fields an explicit edit may change. Nil fields
// are left untouched. Kind, date and time are immutable once recorded.
type TransactionEdit struct {
	Description *string
	Amount      *Money
	Category    *string
	AccountID   *string
	IsRecurring *bool
	Frequency   *Frequency
}

// EditTransaction applies an explicit edit to a record, marking it edited and
// refreshing its update stamp. On a transfer leg the account cannot change,
// and an amount change propagates to the sibling leg in the same mutation so
// the pairing invariant is never observably broken.
func (l *Ledger) EditTransaction(id string, edit TransactionEdit) (Transaction, error) {
	i := l.transactionIndex(id)
	if i < 0 {
		return Transaction{}, fmt.Errorf("transaction %q: %w", id, ErrUnknownTransaction)
	}
	t := l.transactions[i]

	// Validate everything before mutating anything.
	if edit.Amount != nil && !edit.Amount.IsPositive() {
		return t, ErrAmountNotPositive
	}
	if edit.Frequency != nil && !edit.Frequency.valid() {
		return t, fmt.Errorf("unknown recurrence frequency: %q", *edit.Frequency)
	}
	var newAccount Account
	if edit.AccountID != nil {
		if t.IsTransferLeg() {
			return t, fmt.Errorf("account: %w", ErrTransferLeg)
		}
		var ok bool
		newAccount, ok = l.Account(*edit.AccountID)
		if !ok {
			return t, fmt.Errorf("account %q: %w", *edit.AccountID, ErrUnknownAccount)
		}
	}

	if edit.Description != nil {
		t.Description = *edit.Description
	}
	if edit.Amount != nil {
		t.Amount = *edit.Amount
	}
	if edit.Category != nil {
		t.Category = *edit.Category
	}
	if edit.AccountID != nil {
		t.AccountID = newAccount.ID
		t.AccountName = newAccount.Name
	}
	if edit.IsRecurring != nil {
		t.IsRecurring = *edit.IsRecurring
	}
	if edit.Frequency != nil {
		t.Frequency = *edit.Frequency
	}
	t.IsEdited = true
	t.UpdatedAt = now()
	l.transactions[i] = t

	// Keep the sibling leg's amount identical.
	if t.IsTransferLeg() && edit.Amount != nil {
		for j, sibling := range l.transactions {
			if j != i && sibling.LinkedTransferID == t.LinkedTransferID {
				sibling.Amount = *edit.Amount
				sibling.IsEdited = true
				sibling.UpdatedAt = t.UpdatedAt
				l.transactions[j] = sibling
			}
		}
	}
	return t, nil
}

// DeleteTransaction removes a record. When the record is a transfer leg,
// both legs sharing its link id are removed, regardless of which leg was
// targeted. This is the core integrity rule of paired transfers.
func (l *Ledger) DeleteTransaction(id string) error {
	i := l.transactionIndex(id)
	if i < 0 {
		return fmt.Errorf("transaction %q: %w", id, ErrUnknownTransaction)
	}
	link := l.transactions[i].LinkedTransferID
	l.transactions = slices.DeleteFunc(l.transactions, func(t Transaction) bool {
		return t.ID == id || (link != "" && t.LinkedTransferID == link)
	})
	return nil
}

// AddAccount creates a regular account.
func (l *Ledger) AddAccount(name, color string) (Account, error) {
	if strings.TrimSpace(name) == "" {
		return Account{}, ErrEmptyName
	}
	account := Account{ID: uuid.NewString(), Name: name, Color: color}
	l.accounts = append(l.accounts, account)
	return account, nil
}

// RenameAccount changes an account's display name and every transaction's
// denormalized name snapshot referencing it, as one atomic batch.
func (l *Ledger) RenameAccount(id, name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	i := l.accountIndex(id)
	if i < 0 {
		return fmt.Errorf("account %q: %w", id, ErrUnknownAccount)
	}
	l.accounts[i].Name = name
	for j, tx := range l.transactions {
		if tx.AccountID == id {
			l.transactions[j].AccountName = name
		}
	}
	return nil
}

// DeleteAccount removes an account. A goal-reserve account cascades to its
// goal (and the goal's deletion removes the account). Transactions are never
// cascaded: records referencing the account become tolerated orphans.
func (l *Ledger) DeleteAccount(id string) error {
	i := l.accountIndex(id)
	if i < 0 {
		return fmt.Errorf("account %q: %w", id, ErrUnknownAccount)
	}
	if l.accounts[i].IsGoalAccount {
		if goal, ok := l.GoalByAccount(id); ok {
			return l.DeleteGoal(goal.ID)
		}
	}
	l.accounts = slices.Delete(l.accounts, i, i+1)
	return nil
}

// AddCategory appends a category name. Duplicates are rejected.
func (l *Ledger) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if l.HasCategory(name) {
		return fmt.Errorf("category %q: %w", name, ErrCategoryExists)
	}
	l.categories = append(l.categories, name)
	return nil
}

// RenameCategory changes a category name and propagates it to every
// transaction referencing the old name, as one atomic batch. Renaming onto
// an existing name is rejected rather than silently merged.
func (l *Ledger) RenameCategory(old, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	i := slices.Index(l.categories, old)
	if i < 0 {
		return fmt.Errorf("category %q: %w", old, ErrUnknownCategory)
	}
	if name != old && l.HasCategory(name) {
		return fmt.Errorf("category %q: %w", name, ErrCategoryExists)
	}
	l.categories[i] = name
	for j, tx := range l.transactions {
		if tx.Category == old {
			l.transactions[j].Category = name
		}
	}
	return nil
}

// DeleteCategory removes a category from the list. Transactions referencing
// it are untouched and become tolerated orphans, excluded from category
// aggregates but still visible in raw listings.
func (l *Ledger) DeleteCategory(name string) error {
	i := slices.Index(l.categories, name)
	if i < 0 {
		return fmt.Errorf("category %q: %w", name, ErrUnknownCategory)
	}
	l.categories = slices.Delete(l.categories, i, i+1)
	return nil
}

// AddGoal creates a goal together with its private reserve account and
// awards the goal reward.
func (l *Ledger) AddGoal(name string, target Money, deadline date.Date, category string, cadence Cadence, color string) (Goal, error) {
	if strings.TrimSpace(name) == "" {
		return Goal{}, ErrEmptyName
	}
	if !target.IsPositive() {
		return Goal{}, fmt.Errorf("target: %w", ErrAmountNotPositive)
	}
	if !cadence.valid() {
		return Goal{}, fmt.Errorf("unknown cadence: %q", cadence)
	}
	reserve := Account{ID: uuid.NewString(), Name: name, Color: color, IsGoalAccount: true}
	goal := Goal{
		ID:              uuid.NewString(),
		Name:            name,
		Target:          target,
		Deadline:        deadline,
		Category:        category,
		Cadence:         cadence,
		LinkedAccountID: reserve.ID,
	}
	l.accounts = append(l.accounts, reserve)
	l.goals = append(l.goals, goal)
	l.award(RewardGoalCreated)
	return goal, nil
}

// GoalEdit names the fields a goal edit may change. Nil fields are left
// untouched. The linked reserve account is immutable.
type GoalEdit struct {
	Name     *string
	Target   *Money
	Deadline *date.Date
	Category *string
	Cadence  *Cadence
}

// EditGoal applies an edit to a goal. A name change renames the reserve
// account too (and its transaction snapshots), in the same mutation.
func (l *Ledger) EditGoal(id string, edit GoalEdit) (Goal, error) {
	i := l.goalIndex(id)
	if i < 0 {
		return Goal{}, fmt.Errorf("goal %q: %w", id, ErrUnknownGoal)
	}
	g := l.goals[i]

	if edit.Name != nil && strings.TrimSpace(*edit.Name) == "" {
		return g, ErrEmptyName
	}
	if edit.Target != nil && !edit.Target.IsPositive() {
		return g, fmt.Errorf("target: %w", ErrAmountNotPositive)
	}
	if edit.Cadence != nil && !edit.Cadence.valid() {
		return g, fmt.Errorf("unknown cadence: %q", *edit.Cadence)
	}

	if edit.Name != nil {
		g.Name = *edit.Name
		if err := l.RenameAccount(g.LinkedAccountID, *edit.Name); err != nil {
			return g, err
		}
	}
	if edit.Target != nil {
		g.Target = *edit.Target
	}
	if edit.Deadline != nil {
		g.Deadline = *edit.Deadline
	}
	if edit.Category != nil {
		g.Category = *edit.Category
	}
	if edit.Cadence != nil {
		g.Cadence = *edit.Cadence
	}
	l.goals[i] = g
	return g, nil
}

// DeleteGoal removes a goal and its reserve account. Transactions against
// the reserve account remain as tolerated orphans.
func (l *Ledger) DeleteGoal(id string) error {
	i := l.goalIndex(id)
	if i < 0 {
		return fmt.Errorf("goal %q: %w", id, ErrUnknownGoal)
	}
	goal := l.goals[i]
	l.goals = slices.Delete(l.goals, i, i+1)
	if j := l.accountIndex(goal.LinkedAccountID); j >= 0 {
		l.accounts = slices.Delete(l.accounts, j, j+1)
	}
	return nil
}
