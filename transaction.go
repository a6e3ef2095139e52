package cofre

import (
	"fmt"
	"strings"
	"time"

	"github.com/cofreapp/cofre/date"
)

// Kind is a typed string identifying the nature of a transaction record.
type Kind string

// Transaction kinds.
const (
	KindIncome   Kind = "income"
	KindExpense  Kind = "expense"
	KindTransfer Kind = "transfer"
)

func (k Kind) valid() bool {
	switch k {
	case KindIncome, KindExpense, KindTransfer:
		return true
	}
	return false
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.valid() {
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
	return k, nil
}

// Frequency is the declared recurrence intent of a transaction. It is
// metadata only: nothing materializes future occurrences.
type Frequency string

// Recurrence frequencies.
const (
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
)

func (f Frequency) valid() bool {
	switch f {
	case "", FreqDaily, FreqWeekly, FreqMonthly, FreqYearly:
		return true
	}
	return false
}

// ParseFrequency parses a string into a Frequency. The empty string is valid
// and means no recurrence.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.valid() {
		return "", fmt.Errorf("unknown recurrence frequency: %q", s)
	}
	return f, nil
}

// Transaction is one record of the append-only transaction list.
//
// A transfer exists as two Transaction records (legs) sharing one
// LinkedTransferID: the debit leg carries DestinationAccountID and subtracts
// from its account, the credit leg has no destination and adds to its
// account. Both legs carry identical amount, date and time.
type Transaction struct {
	ID          string
	Description string
	Amount      Money // non-negative magnitude; the kind gives the sign
	Kind        Kind
	Category    string // free text, may reference a since-deleted category
	AccountID   string
	AccountName string // denormalized snapshot, kept in sync by renames
	Date        date.Date
	Time        date.Clock

	IsEdited  bool
	UpdatedAt time.Time // zero until the first edit

	IsRecurring bool
	Frequency   Frequency

	DestinationAccountID string // set on the debit leg of a transfer only
	LinkedTransferID     string // shared by exactly two legs of one transfer
}

// IsTransferLeg reports whether the record is one leg of a paired transfer.
func (t Transaction) IsTransferLeg() bool { return t.LinkedTransferID != "" }

// IsDebitLeg reports whether the record is the outgoing leg of a transfer.
func (t Transaction) IsDebitLeg() bool { return t.DestinationAccountID != "" }

// Equal reports whether two records hold the same data.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.Kind == o.Kind &&
		t.Category == o.Category &&
		t.AccountID == o.AccountID &&
		t.AccountName == o.AccountName &&
		t.Date == o.Date &&
		t.Time == o.Time &&
		t.IsEdited == o.IsEdited &&
		t.UpdatedAt.Equal(o.UpdatedAt) &&
		t.IsRecurring == o.IsRecurring &&
		t.Frequency == o.Frequency &&
		t.DestinationAccountID == o.DestinationAccountID &&
		t.LinkedTransferID == o.LinkedTransferID
}

// MarshalJSON writes the record with a canonical field order.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("description", t.Description)
	w.Append("amount", t.Amount)
	w.Append("kind", t.Kind)
	w.Optional("category", t.Category)
	w.Append("accountId", t.AccountID)
	w.Append("accountName", t.AccountName)
	w.Append("date", t.Date)
	w.Append("time", t.Time)
	w.Optional("isEdited", t.IsEdited)
	if !t.UpdatedAt.IsZero() {
		w.Append("updatedAt", t.UpdatedAt.Format(time.RFC3339))
	}
	w.Optional("isRecurring", t.IsRecurring)
	w.Optional("frequency", t.Frequency)
	w.Optional("destinationAccountId", t.DestinationAccountID)
	w.Optional("linkedTransferId", t.LinkedTransferID)
	return w.MarshalJSON()
}

// Filter predicates. They compose with logical AND in Ledger views.

// ByKind returns a predicate that keeps transactions of the given kind.
func ByKind(k Kind) func(Transaction) bool {
	return func(t Transaction) bool { return t.Kind == k }
}

// ByAccount returns a predicate that keeps transactions of the given account.
func ByAccount(accountID string) func(Transaction) bool {
	return func(t Transaction) bool { return t.AccountID == accountID }
}

// ByCategory returns a predicate that keeps transactions of the given category.
func ByCategory(category string) func(Transaction) bool {
	return func(t Transaction) bool { return t.Category == category }
}

// ByDescription returns a predicate that keeps transactions whose description
// contains the query, case-insensitively.
func ByDescription(query string) func(Transaction) bool {
	query = strings.ToLower(query)
	return func(t Transaction) bool {
		return strings.Contains(strings.ToLower(t.Description), query)
	}
}

// compareNewestFirst orders records by date then clock time, descending.
// Records sharing a stamp keep their relative list order (stable sorts only).
func compareNewestFirst(a, b Transaction) int {
	if c := b.Date.Compare(a.Date); c != 0 {
		return c
	}
	return b.Time.Compare(a.Time)
}
