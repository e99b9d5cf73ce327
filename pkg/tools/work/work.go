// Package work provides the MCP tools for assigning and tracking tasks.
package work

import (
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/manager"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/notify"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools"
)

// Service is the part of the command layer the task tools call.
type Service interface {
	AssignTask(id, task string) manager.Result
	CompleteTask(id, task string) manager.Result
	ViewTasks(id string) manager.Result
}

// TaskArgs are the arguments of tools that act on one task.
type TaskArgs struct {
	EmployeeID string `json:"employee_id" jsonschema_description:"The employee ID, for example E001"`
	Task       string `json:"task" jsonschema_description:"The task name"`
}

// ViewArgs are the arguments of the view_tasks tool.
type ViewArgs struct {
	EmployeeID string `json:"employee_id" jsonschema_description:"The employee ID, for example E001"`
}

// RegisterWorkTools returns all the task tools
func RegisterWorkTools(svc Service, notifier notify.Notifier) []tools.Tool {
	return []tools.Tool{
		NewAssignTool(svc, notifier),
		NewCompleteTool(svc, notifier),
		NewViewTool(svc),
	}
}
