// Package manager is the command layer over the leave and task stores. Every
// operation validates its employee, performs one store call and turns the
// outcome into a Result carrying a caller-facing message.
package manager

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/records"
)

// Manager owns the stores for the lifetime of the process.
type Manager struct {
	leaves *records.LeaveStore
	tasks  *records.TaskStore
}

// New creates a Manager over the given stores.
func New(leaves *records.LeaveStore, tasks *records.TaskStore) *Manager {
	return &Manager{
		leaves: leaves,
		tasks:  tasks,
	}
}

// LeaveBalance reports how many leave days an employee has left.
func (m *Manager) LeaveBalance(id string) Result {
	balance, err := m.leaves.Balance(id)
	if err != nil {
		return failure(KindNotFound, notFoundMessage)
	}

	return success(fmt.Sprintf("%s has %d leave days remaining.", id, balance))
}

// ApplyLeave books one leave day per date.
func (m *Manager) ApplyLeave(id string, dates []string) Result {
	balance, applied, err := m.leaves.Deduct(id, dates)

	var insufficient *records.InsufficientBalanceError

	switch {
	case errors.Is(err, records.ErrNotFound):
		return failure(KindNotFound, notFoundMessage)
	case errors.As(err, &insufficient):
		return failure(KindInsufficientBalance, fmt.Sprintf(
			"Insufficient leave balance. You requested %d day(s) but have only %d.",
			insufficient.Requested, insufficient.Available,
		))
	}

	log.Debug("leave applied", "employee", id, "days", len(applied), "balance", balance)

	return success(fmt.Sprintf(
		"Leave applied for %d day(s). Remaining balance: %d.", len(applied), balance,
	))
}

// LeaveHistory lists the dates an employee has taken leave on.
func (m *Manager) LeaveHistory(id string) Result {
	history, err := m.leaves.History(id)
	if err != nil {
		return failure(KindNotFound, notFoundMessage)
	}

	return success(fmt.Sprintf(
		"Leave history for %s: %s", id, joinOr(history, "No leaves taken."),
	))
}

// LeaveSummarySnapshot returns every employee's balance for rendering.
func (m *Manager) LeaveSummarySnapshot() records.Snapshot {
	return m.leaves.Snapshot()
}

// AssignTask adds a task to an employee's list.
func (m *Manager) AssignTask(id, task string) Result {
	if err := m.tasks.Assign(id, task); err != nil {
		return failure(KindNotFound, notFoundMessage)
	}

	log.Debug("task assigned", "employee", id, "task", task)

	return success(fmt.Sprintf("Task '%s' assigned to %s.", task, id))
}

// CompleteTask marks one of an employee's tasks as done.
func (m *Manager) CompleteTask(id, task string) Result {
	switch err := m.tasks.Complete(id, task); {
	case err == nil:
		log.Debug("task completed", "employee", id, "task", task)
		return success(fmt.Sprintf("Task '%s' marked as completed for %s.", task, id))
	case errors.Is(err, records.ErrNotFound):
		return failure(KindNotFound, notFoundMessage)
	case errors.Is(err, records.ErrTaskNotAssigned):
		return failure(KindTaskNotAssigned, fmt.Sprintf("Task '%s' not found for %s.", task, id))
	default:
		return failure(KindAlreadyCompleted, fmt.Sprintf("Task '%s' is already marked as completed.", task))
	}
}

// ViewTasks lists an employee's completed and pending tasks.
func (m *Manager) ViewTasks(id string) Result {
	pending, completed, err := m.tasks.List(id)
	if err != nil {
		return failure(KindNotFound, notFoundMessage)
	}

	return success(fmt.Sprintf(
		"Tasks for %s:\n✅ Completed: %s\n🕒 Pending: %s",
		id,
		joinOr(completed, "No tasks completed yet."),
		joinOr(pending, "No pending tasks."),
	))
}

func joinOr(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	return strings.Join(items, ", ")
}
