package work

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools/utils"
)

// ViewTool lists an employee's completed and pending tasks.
type ViewTool struct {
	*tools.BaseTool
	svc Service
}

// NewViewTool creates a new view_tasks tool.
func NewViewTool(svc Service) *ViewTool {
	return &ViewTool{
		BaseTool: tools.NewBaseTool(
			mcp.NewTool(
				"view_tasks",
				mcp.WithDescription("View pending and completed tasks for an employee"),
				mcp.WithString(
					"employee_id",
					mcp.Required(),
					mcp.Description("The employee ID, for example E001"),
				),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			ViewArgs{},
		),
		svc: svc,
	}
}

// Handler processes view_tasks requests
func (tool *ViewTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := utils.GetRequiredStringParam(request, "employee_id")
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	return tools.NewTextResult(tool.svc.ViewTasks(id).Message), nil
}
