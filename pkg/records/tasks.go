package records

import (
	"slices"
	"sync"
)

// TaskRecord seeds one employee in a TaskStore.
type TaskRecord struct {
	EmployeeID string
	Tasks      []string
	Completed  []string
}

type taskEntry struct {
	tasks     []string
	completed []string
}

// TaskStore tracks the tasks assigned to, and completed by, a fixed set of
// employees. Tasks are identified by name: completing a name completes every
// assignment that shares it.
type TaskStore struct {
	mu      sync.RWMutex
	order   []string
	entries map[string]*taskEntry
}

// NewTaskStore creates a store holding exactly the given employees.
func NewTaskStore(seed []TaskRecord) *TaskStore {
	store := &TaskStore{
		entries: make(map[string]*taskEntry, len(seed)),
	}

	for _, rec := range seed {
		if _, exists := store.entries[rec.EmployeeID]; !exists {
			store.order = append(store.order, rec.EmployeeID)
		}

		store.entries[rec.EmployeeID] = &taskEntry{
			tasks:     append([]string(nil), rec.Tasks...),
			completed: append([]string(nil), rec.Completed...),
		}
	}

	return store
}

// List returns the pending and completed task names for an employee.
// Pending keeps assignment order and drops every task whose name has been
// completed, duplicates included.
func (s *TaskStore) List(id string) (pending []string, completed []string, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, nil, notFound(id)
	}

	done := make(map[string]struct{}, len(entry.completed))
	for _, name := range entry.completed {
		done[name] = struct{}{}
	}

	for _, name := range entry.tasks {
		if _, ok := done[name]; !ok {
			pending = append(pending, name)
		}
	}

	return pending, append([]string(nil), entry.completed...), nil
}

// Assign appends a task to the employee's list. Duplicates are allowed.
func (s *TaskStore) Assign(id, task string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return notFound(id)
	}

	entry.tasks = append(entry.tasks, task)
	return nil
}

// Complete marks a task name as done.
func (s *TaskStore) Complete(id, task string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return notFound(id)
	}

	if !slices.Contains(entry.tasks, task) {
		return ErrTaskNotAssigned
	}

	if slices.Contains(entry.completed, task) {
		return ErrAlreadyCompleted
	}

	entry.completed = append(entry.completed, task)
	return nil
}

