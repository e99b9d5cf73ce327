package work

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/notify"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools/utils"
)

// CompleteTool marks a task as done.
type CompleteTool struct {
	*tools.BaseTool
	svc      Service
	notifier notify.Notifier
}

// NewCompleteTool creates a new complete_task tool.
func NewCompleteTool(svc Service, notifier notify.Notifier) *CompleteTool {
	return &CompleteTool{
		BaseTool: tools.NewBaseTool(
			mcp.NewTool(
				"complete_task",
				mcp.WithDescription("Mark a specific task as completed"),
				mcp.WithString(
					"employee_id",
					mcp.Required(),
					mcp.Description("The employee ID, for example E001"),
				),
				mcp.WithString(
					"task",
					mcp.Required(),
					mcp.Description("The name of an assigned task"),
				),
			),
			TaskArgs{},
		),
		svc:      svc,
		notifier: notifier,
	}
}

// Handler processes complete_task requests
func (tool *CompleteTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, task, err := taskParams(request)
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	result := tool.svc.CompleteTask(id, task)
	if result.OK() {
		tools.Announce(ctx, tool.notifier, result.Message)
	}

	return tools.NewTextResult(result.Message), nil
}
