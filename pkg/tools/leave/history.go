package leave

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools/utils"
)

// HistoryTool lists the dates an employee has taken leave on.
type HistoryTool struct {
	*tools.BaseTool
	svc Service
}

// NewHistoryTool creates a new get_leave_history tool.
func NewHistoryTool(svc Service) *HistoryTool {
	return &HistoryTool{
		BaseTool: tools.NewBaseTool(
			mcp.NewTool(
				"get_leave_history",
				mcp.WithDescription("Get leave history for the employee"),
				mcp.WithString(
					"employee_id",
					mcp.Required(),
					mcp.Description("The employee ID, for example E001"),
				),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			EmployeeArgs{},
		),
		svc: svc,
	}
}

// Handler processes get_leave_history requests
func (tool *HistoryTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := utils.GetRequiredStringParam(request, "employee_id")
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	return tools.NewTextResult(tool.svc.LeaveHistory(id).Message), nil
}
