package records

import "sync"

// LeaveRecord seeds one employee in a LeaveStore.
type LeaveRecord struct {
	EmployeeID string
	Balance    int
	History    []string
}

type leaveEntry struct {
	balance int
	history []string
}

// LeaveStore tracks the remaining leave balance and the leave-date history
// of a fixed set of employees.
type LeaveStore struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*leaveEntry
}

// NewLeaveStore creates a store holding exactly the given employees, in the
// given order. Negative seed balances are clamped to zero.
func NewLeaveStore(seed []LeaveRecord) *LeaveStore {
	store := &LeaveStore{
		entries: make(map[string]*leaveEntry, len(seed)),
	}

	for _, rec := range seed {
		if _, exists := store.entries[rec.EmployeeID]; !exists {
			store.order = append(store.order, rec.EmployeeID)
		}

		store.entries[rec.EmployeeID] = &leaveEntry{
			balance: max(rec.Balance, 0),
			history: append([]string(nil), rec.History...),
		}
	}

	return store
}

// Balance returns the remaining leave days for an employee.
func (s *LeaveStore) Balance(id string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return 0, notFound(id)
	}

	return entry.balance, nil
}

// History returns a copy of the dates the employee has taken leave on, in
// the order they were applied.
func (s *LeaveStore) History(id string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, notFound(id)
	}

	return append([]string(nil), entry.history...), nil
}

// Deduct takes one day of balance per requested date and appends the dates
// to the history. Dates are opaque tokens; nothing is parsed or
// deduplicated. A request larger than the balance changes nothing and
// returns an *InsufficientBalanceError.
func (s *LeaveStore) Deduct(id string, dates []string) (int, []string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return 0, nil, notFound(id)
	}

	requested := len(dates)
	if requested > entry.balance {
		return entry.balance, nil, &InsufficientBalanceError{
			EmployeeID: id,
			Requested:  requested,
			Available:  entry.balance,
		}
	}

	applied := append([]string(nil), dates...)
	entry.balance -= requested
	entry.history = append(entry.history, applied...)

	return entry.balance, applied, nil
}

// Snapshot returns every employee's balance in store order.
func (s *LeaveStore) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(Snapshot, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, BalanceEntry{
			EmployeeID: id,
			Balance:    s.entries[id].balance,
		})
	}

	return snapshot
}
