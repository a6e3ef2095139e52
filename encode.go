package cofre

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/cofreapp/cofre/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// ParseError is the typed failure of the strict document parse step. A
// document that fails to parse is rejected wholesale; the caller's prior
// in-memory state is left untouched.
type ParseError struct {
	Reason string
	Cause  error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid document: %s: %v", e.Reason, e.Cause)
	}
	return "invalid document: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Cause }

func parseErrorf(format string, args ...any) *ParseError {
	return &ParseError{Reason: fmt.Sprintf(format, args...)}
}

// jtransaction is a specialized struct for decoding the document shape.
type jtransaction struct {
	ID                   string     `json:"id"`
	Description          string     `json:"description"`
	Amount               Money      `json:"amount"`
	Kind                 Kind       `json:"kind"`
	Category             string     `json:"category"`
	AccountID            string     `json:"accountId"`
	AccountName          string     `json:"accountName"`
	Date                 date.Date  `json:"date"`
	Time                 date.Clock `json:"time"`
	IsEdited             bool       `json:"isEdited"`
	UpdatedAt            string     `json:"updatedAt"`
	IsRecurring          bool       `json:"isRecurring"`
	Frequency            Frequency  `json:"frequency"`
	DestinationAccountID string     `json:"destinationAccountId"`
	LinkedTransferID     string     `json:"linkedTransferId"`
}

type jaccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	IsGoalAccount bool   `json:"isGoalAccount"`
}

type jgoal struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Target          Money     `json:"target"`
	Current         Money     `json:"current"`
	Deadline        date.Date `json:"deadline"`
	Category        string    `json:"category"`
	Cadence         Cadence   `json:"cadence"`
	LinkedAccountID string    `json:"linkedAccountId"`
}

type jdocument struct {
	Transactions []jtransaction `json:"transactions"`
	Accounts     []jaccount     `json:"accounts"`
	Categories   []string       `json:"categories"`
	Goals        []jgoal        `json:"goals"`
	XP           int            `json:"xp"`
	LastSync     string         `json:"lastSync"`
}

// DecodeDocument reads a persisted state document and returns the ledger it
// describes. The parse is strict: beyond JSON well-formedness it checks the
// structural invariants (known kinds, non-negative amounts and points,
// transfer leg pairing, goal-to-reserve linkage) and rejects the whole
// document with a *ParseError on any violation. Orphan account or category
// references on plain records are tolerated by design.
func DecodeDocument(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not read document: %w", err)
	}
	var doc jdocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Reason: "not a valid state document", Cause: err}
	}

	if doc.XP < 0 {
		return nil, parseErrorf("xp must be non-negative, got %d", doc.XP)
	}

	ledger := NewLedger()
	ledger.xp = doc.XP
	if doc.LastSync != "" {
		stamp, err := time.Parse(time.RFC3339, doc.LastSync)
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("invalid lastSync %q", doc.LastSync), Cause: err}
		}
		ledger.lastSync = stamp
	}

	accountIDs := make(map[string]bool, len(doc.Accounts))
	for _, ja := range doc.Accounts {
		if ja.ID == "" {
			return nil, parseErrorf("account with empty id")
		}
		if accountIDs[ja.ID] {
			return nil, parseErrorf("duplicate account id %q", ja.ID)
		}
		accountIDs[ja.ID] = true
		ledger.accounts = append(ledger.accounts, Account(ja))
	}

	ledger.categories = append(ledger.categories, doc.Categories...)

	linkedBy := make(map[string]string, len(doc.Goals)) // reserve account id -> goal id
	goalIDs := make(map[string]bool, len(doc.Goals))
	for _, jg := range doc.Goals {
		if jg.ID == "" {
			return nil, parseErrorf("goal with empty id")
		}
		if goalIDs[jg.ID] {
			return nil, parseErrorf("duplicate goal id %q", jg.ID)
		}
		goalIDs[jg.ID] = true
		if !jg.Cadence.valid() {
			return nil, parseErrorf("goal %q has unknown cadence %q", jg.ID, jg.Cadence)
		}
		reserve, ok := findAccount(ledger.accounts, jg.LinkedAccountID)
		if !ok {
			return nil, parseErrorf("goal %q links to unknown account %q", jg.ID, jg.LinkedAccountID)
		}
		if !reserve.IsGoalAccount {
			return nil, parseErrorf("goal %q links to account %q which is not a goal reserve", jg.ID, jg.LinkedAccountID)
		}
		if other, taken := linkedBy[jg.LinkedAccountID]; taken {
			return nil, parseErrorf("goals %q and %q share reserve account %q", other, jg.ID, jg.LinkedAccountID)
		}
		linkedBy[jg.LinkedAccountID] = jg.ID
		ledger.goals = append(ledger.goals, Goal{
			ID:              jg.ID,
			Name:            jg.Name,
			Target:          jg.Target,
			Current:         jg.Current,
			Deadline:        jg.Deadline,
			Category:        jg.Category,
			Cadence:         jg.Cadence,
			LinkedAccountID: jg.LinkedAccountID,
		})
	}

	txIDs := make(map[string]bool, len(doc.Transactions))
	legsByLink := make(map[string][]Transaction)
	for _, jt := range doc.Transactions {
		if jt.ID == "" {
			return nil, parseErrorf("transaction with empty id")
		}
		if txIDs[jt.ID] {
			return nil, parseErrorf("duplicate transaction id %q", jt.ID)
		}
		txIDs[jt.ID] = true
		if !jt.Kind.valid() {
			return nil, parseErrorf("transaction %q has unknown kind %q", jt.ID, jt.Kind)
		}
		if jt.Amount.IsNegative() {
			return nil, parseErrorf("transaction %q has negative amount", jt.ID)
		}
		if jt.Date.IsZero() {
			return nil, parseErrorf("transaction %q has no date", jt.ID)
		}
		if !jt.Frequency.valid() {
			return nil, parseErrorf("transaction %q has unknown frequency %q", jt.ID, jt.Frequency)
		}
		if jt.Kind == KindTransfer && jt.LinkedTransferID == "" {
			return nil, parseErrorf("transfer %q has no linked transfer id", jt.ID)
		}
		if jt.Kind != KindTransfer && jt.LinkedTransferID != "" {
			return nil, parseErrorf("transaction %q is not a transfer but carries a linked transfer id", jt.ID)
		}
		if jt.Kind != KindTransfer && jt.DestinationAccountID != "" {
			return nil, parseErrorf("transaction %q is not a transfer but carries a destination account", jt.ID)
		}

		t := Transaction{
			ID:                   jt.ID,
			Description:          jt.Description,
			Amount:               jt.Amount,
			Kind:                 jt.Kind,
			Category:             jt.Category,
			AccountID:            jt.AccountID,
			AccountName:          jt.AccountName,
			Date:                 jt.Date,
			Time:                 jt.Time,
			IsEdited:             jt.IsEdited,
			IsRecurring:          jt.IsRecurring,
			Frequency:            jt.Frequency,
			DestinationAccountID: jt.DestinationAccountID,
			LinkedTransferID:     jt.LinkedTransferID,
		}
		if jt.UpdatedAt != "" {
			stamp, err := time.Parse(time.RFC3339, jt.UpdatedAt)
			if err != nil {
				return nil, &ParseError{Reason: fmt.Sprintf("transaction %q has invalid updatedAt %q", jt.ID, jt.UpdatedAt), Cause: err}
			}
			t.UpdatedAt = stamp
		}
		if t.IsTransferLeg() {
			legsByLink[t.LinkedTransferID] = append(legsByLink[t.LinkedTransferID], t)
		}
		ledger.transactions = append(ledger.transactions, t)
	}

	// The document must never show one transfer leg without its sibling.
	for link, legs := range legsByLink {
		if len(legs) != 2 {
			return nil, parseErrorf("transfer %q has %d legs, want 2", link, len(legs))
		}
		debit, credit := legs[0], legs[1]
		if !debit.IsDebitLeg() {
			debit, credit = credit, debit
		}
		if !debit.IsDebitLeg() || credit.IsDebitLeg() {
			return nil, parseErrorf("transfer %q needs exactly one debit leg", link)
		}
		if debit.DestinationAccountID != credit.AccountID {
			return nil, parseErrorf("transfer %q debit leg destination %q does not match credit leg account %q", link, debit.DestinationAccountID, credit.AccountID)
		}
		if !debit.Amount.Equal(credit.Amount) || debit.Date != credit.Date || debit.Time != credit.Time {
			return nil, parseErrorf("transfer %q legs disagree on amount, date or time", link)
		}
	}

	return ledger, nil
}

func findAccount(accounts []Account, id string) (Account, bool) {
	for _, a := range accounts {
		if a.ID == id {
			return a, true
		}
	}
	return Account{}, false
}

// EncodeDocument writes the ledger as the persisted state document, with
// canonical key order and indentation, preserving every field for
// round-trip fidelity.
func EncodeDocument(w io.Writer, l *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true

	lastSync := ""
	if !l.lastSync.IsZero() {
		lastSync = l.lastSync.Format(time.RFC3339)
	}

	var obj jsonObjectWriter
	obj.Append("transactions", l.transactions)
	obj.Append("accounts", l.accounts)
	obj.Append("categories", l.categories)
	obj.Append("goals", l.goals)
	obj.Append("xp", l.xp)
	obj.Append("lastSync", lastSync)

	raw, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("could not encode document: %w", err)
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, raw, "", "  "); err != nil {
		return fmt.Errorf("could not indent document: %w", err)
	}
	indented.WriteByte('\n')
	_, err = w.Write(indented.Bytes())
	return err
}
