package cofre

import (
	"fmt"

	"github.com/cofreapp/cofre/date"
	"github.com/google/uuid"
)

// newTransferPair validates and appends the two legs of a transfer: the
// debit leg against the source account (destination set) and the credit leg
// against the destination account. Both legs share a freshly generated link
// id and identical amount, date and time, and are always inserted in the
// same mutation. No reward is accrued here; the call sites award.
func (l *Ledger) newTransferPair(sourceID, destinationID string, amount Money, on date.Date, at date.Clock, description string) (debit, credit Transaction, err error) {
	if sourceID == destinationID {
		return debit, credit, ErrSameAccount
	}
	if !amount.IsPositive() {
		return debit, credit, ErrAmountNotPositive
	}
	source, ok := l.Account(sourceID)
	if !ok {
		return debit, credit, fmt.Errorf("source account %q: %w", sourceID, ErrUnknownAccount)
	}
	destination, ok := l.Account(destinationID)
	if !ok {
		return debit, credit, fmt.Errorf("destination account %q: %w", destinationID, ErrUnknownAccount)
	}
	if on.IsZero() {
		on = date.Today()
	}

	link := uuid.NewString()
	debit = Transaction{
		ID:                   uuid.NewString(),
		Description:          description,
		Amount:               amount,
		Kind:                 KindTransfer,
		AccountID:            source.ID,
		AccountName:          source.Name,
		Date:                 on,
		Time:                 at,
		DestinationAccountID: destination.ID,
		LinkedTransferID:     link,
	}
	credit = Transaction{
		ID:               uuid.NewString(),
		Description:      description,
		Amount:           amount,
		Kind:             KindTransfer,
		AccountID:        destination.ID,
		AccountName:      destination.Name,
		Date:             on,
		Time:             at,
		LinkedTransferID: link,
	}
	l.transactions = append(l.transactions, debit, credit)
	return debit, credit, nil
}

// NewTransfer moves value between two accounts as a pair of legs and awards
// the transfer reward. From the user's point of view the money moves
// atomically: both legs appear together or not at all.
func (l *Ledger) NewTransfer(sourceID, destinationID string, amount Money, on date.Date, at date.Clock, description string) (debit, credit Transaction, err error) {
	if description == "" {
		description = "Transfer"
	}
	debit, credit, err = l.newTransferPair(sourceID, destinationID, amount, on, at, description)
	if err != nil {
		return debit, credit, err
	}
	l.award(RewardTransfer)
	return debit, credit, nil
}

// GoalMove moves value between a goal's reserve account and a counter
// account, and awards the goal-move reward. With withdraw false the value
// flows from the counter account into the reserve; with withdraw true it
// flows back out.
func (l *Ledger) GoalMove(goalID, counterAccountID string, amount Money, withdraw bool, on date.Date, at date.Clock) (debit, credit Transaction, err error) {
	goal, ok := l.Goal(goalID)
	if !ok {
		return debit, credit, fmt.Errorf("goal %q: %w", goalID, ErrUnknownGoal)
	}
	description := "Goal deposit: " + goal.Name
	source, destination := counterAccountID, goal.LinkedAccountID
	if withdraw {
		description = "Goal withdrawal: " + goal.Name
		source, destination = goal.LinkedAccountID, counterAccountID
	}
	debit, credit, err = l.newTransferPair(source, destination, amount, on, at, description)
	if err != nil {
		return debit, credit, err
	}
	l.award(RewardGoalMove)
	return debit, credit, nil
}
