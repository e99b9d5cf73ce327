package leave

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools/utils"
)

// BalanceTool reports an employee's remaining leave days.
type BalanceTool struct {
	*tools.BaseTool
	svc Service
}

// NewBalanceTool creates a new get_leave_balance tool.
func NewBalanceTool(svc Service) *BalanceTool {
	return &BalanceTool{
		BaseTool: tools.NewBaseTool(
			mcp.NewTool(
				"get_leave_balance",
				mcp.WithDescription("Check how many leave days are left for the employee"),
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

// Handler processes get_leave_balance requests
func (tool *BalanceTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := utils.GetRequiredStringParam(request, "employee_id")
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	return tools.NewTextResult(tool.svc.LeaveBalance(id).Message), nil
}
