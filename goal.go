package cofre

import (
	"fmt"

	"github.com/cofreapp/cofre/date"
)

// Cadence is the periodic unit a savings-plan suggestion is expressed in.
type Cadence string

// Savings-plan cadences.
const (
	CadenceDaily   Cadence = "daily"
	CadenceMonthly Cadence = "monthly"
	CadenceYearly  Cadence = "yearly"
)

func (c Cadence) valid() bool {
	switch c {
	case CadenceDaily, CadenceMonthly, CadenceYearly:
		return true
	}
	return false
}

// ParseCadence parses a string into a Cadence.
func ParseCadence(s string) (Cadence, error) {
	c := Cadence(s)
	if !c.valid() {
		return "", fmt.Errorf("unknown cadence: %q", s)
	}
	return c, nil
}

// Goal is a savings target backed by a dedicated reserve account.
type Goal struct {
	ID     string
	Name   string
	Target Money

	// Current is retained for backward compatibility with older documents.
	// It is not authoritative: progress is always recomputed from the
	// linked account's derived balance.
	Current Money

	Deadline        date.Date // optional; zero means no deadline
	Category        string
	Cadence         Cadence
	LinkedAccountID string
}

// Plan computes the suggested periodic contribution to reach the target by
// the deadline, given the reserve account's derived balance on a given day.
// It returns false when there is nothing to suggest: the goal has no
// deadline, or the balance already meets the target.
//
// Deadlines today or in the past still yield a minimum one-day horizon, and
// the monthly/yearly period counts floor at one, so the division is total.
func (g Goal) Plan(balance Money, on date.Date) (Money, bool) {
	if g.Deadline.IsZero() || balance.GreaterThanOrEqual(g.Target) {
		return Money{}, false
	}
	remaining := g.Target.Sub(balance)

	days := on.DaysUntil(g.Deadline)
	if days < 1 {
		days = 1
	}

	periods := days
	switch g.Cadence {
	case CadenceMonthly:
		periods = days / 30
	case CadenceYearly:
		periods = days / 365
	}
	if periods < 1 {
		periods = 1
	}
	return remaining.DivInt(periods), true
}

// Progress returns the completion ratio of the goal as a percentage, capped
// at 100.
func (g Goal) Progress(balance Money) float64 {
	if !g.Target.IsPositive() {
		return 100
	}
	ratio := 100 * balanceRatio(balance, g.Target)
	if ratio > 100 {
		return 100
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}

func balanceRatio(part, whole Money) float64 {
	p, _ := part.value.Float64()
	t, _ := whole.value.Float64()
	return p / t
}

// MarshalJSON writes the goal with a canonical field order.
func (g Goal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", g.ID)
	w.Append("name", g.Name)
	w.Append("target", g.Target)
	w.Append("current", g.Current)
	if !g.Deadline.IsZero() {
		w.Append("deadline", g.Deadline)
	}
	w.Optional("category", g.Category)
	w.Append("cadence", g.Cadence)
	w.Append("linkedAccountId", g.LinkedAccountID)
	return w.MarshalJSON()
}
