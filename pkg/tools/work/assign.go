package work

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/notify"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools/utils"
)

// AssignTool adds a task to an employee's list.
type AssignTool struct {
	*tools.BaseTool
	svc      Service
	notifier notify.Notifier
}

// NewAssignTool creates a new assign_task tool.
func NewAssignTool(svc Service, notifier notify.Notifier) *AssignTool {
	return &AssignTool{
		BaseTool: tools.NewBaseTool(
			mcp.NewTool(
				"assign_task",
				mcp.WithDescription("Assign a new task to an employee"),
				mcp.WithString(
					"employee_id",
					mcp.Required(),
					mcp.Description("The employee ID, for example E001"),
				),
				mcp.WithString(
					"task",
					mcp.Required(),
					mcp.Description("The task name"),
				),
			),
			TaskArgs{},
		),
		svc:      svc,
		notifier: notifier,
	}
}

// Handler processes assign_task requests
func (tool *AssignTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, task, err := taskParams(request)
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	result := tool.svc.AssignTask(id, task)
	if result.OK() {
		tools.Announce(ctx, tool.notifier, result.Message)
	}

	return tools.NewTextResult(result.Message), nil
}

func taskParams(request mcp.CallToolRequest) (id string, task string, err error) {
	if id, err = utils.GetRequiredStringParam(request, "employee_id"); err != nil {
		return "", "", err
	}

	if task, err = utils.GetRequiredStringParam(request, "task"); err != nil {
		return "", "", err
	}

	return id, task, nil
}
