// Package leave provides the MCP tools for leave balances and history.
package leave

import (
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/manager"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/notify"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/records"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/render"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools"
)

// Service is the part of the command layer the leave tools call.
type Service interface {
	LeaveBalance(id string) manager.Result
	ApplyLeave(id string, dates []string) manager.Result
	LeaveHistory(id string) manager.Result
	LeaveSummarySnapshot() records.Snapshot
}

// EmployeeArgs are the arguments of tools that act on one employee.
type EmployeeArgs struct {
	EmployeeID string `json:"employee_id" jsonschema_description:"The employee ID, for example E001"`
}

// ApplyArgs are the arguments of the apply_leave tool.
type ApplyArgs struct {
	EmployeeID string   `json:"employee_id" jsonschema_description:"The employee ID, for example E001"`
	LeaveDates []string `json:"leave_dates" jsonschema_description:"The dates to take off; each date costs one day of balance"`
}

// RegisterLeaveTools returns all the leave tools
func RegisterLeaveTools(
	svc Service,
	text render.Renderer,
	chart render.ImageRenderer,
	notifier notify.Notifier,
) []tools.Tool {
	return []tools.Tool{
		NewBalanceTool(svc),
		NewApplyTool(svc, notifier),
		NewHistoryTool(svc),
		NewSummaryTool(svc, text),
		NewPlotTool(svc, chart),
	}
}
