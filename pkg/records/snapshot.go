package records

// BalanceEntry is one employee's balance at the time a snapshot was taken.
type BalanceEntry struct {
	EmployeeID string `json:"employee_id"`
	Balance    int    `json:"balance"`
}

// Snapshot is a read-only copy of all balances, in store order.
type Snapshot []BalanceEntry

// MaxBalance returns the largest balance in the snapshot, or 0 when empty.
func (s Snapshot) MaxBalance() int {
	top := 0
	for _, entry := range s {
		top = max(top, entry.Balance)
	}
	return top
}
