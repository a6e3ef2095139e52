package cofre

// Account is a named bucket transactions are recorded against.
//
// An account flagged IsGoalAccount is the private reserve of exactly one
// Goal; it is created and deleted together with that goal and its derived
// balance is the goal's true progress.
type Account struct {
	ID            string
	Name          string
	Color         string
	IsGoalAccount bool
}

// MarshalJSON writes the account with a canonical field order.
func (a Account) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", a.ID)
	w.Append("name", a.Name)
	w.Optional("color", a.Color)
	w.Optional("isGoalAccount", a.IsGoalAccount)
	return w.MarshalJSON()
}
