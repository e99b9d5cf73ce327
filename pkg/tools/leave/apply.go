package leave

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/notify"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools/utils"
)

// ApplyTool books leave days against an employee's balance.
type ApplyTool struct {
	*tools.BaseTool
	svc      Service
	notifier notify.Notifier
}

// NewApplyTool creates a new apply_leave tool.
func NewApplyTool(svc Service, notifier notify.Notifier) *ApplyTool {
	return &ApplyTool{
		BaseTool: tools.NewBaseTool(
			mcp.NewTool(
				"apply_leave",
				mcp.WithDescription("Apply leave for specific dates"),
				mcp.WithString(
					"employee_id",
					mcp.Required(),
					mcp.Description("The employee ID, for example E001"),
				),
				mcp.WithArray(
					"leave_dates",
					mcp.Required(),
					mcp.Description("The dates to take off; each date costs one day of balance"),
					mcp.Items(map[string]any{"type": "string"}),
				),
			),
			ApplyArgs{},
		),
		svc:      svc,
		notifier: notifier,
	}
}

// Handler processes apply_leave requests
func (tool *ApplyTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := utils.GetRequiredStringParam(request, "employee_id")
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	dates, err := utils.GetRequiredStringSliceParam(request, "leave_dates")
	if err != nil {
		return utils.HandleParameterError(err), nil
	}

	result := tool.svc.ApplyLeave(id, dates)
	if result.OK() && len(dates) > 0 {
		tools.Announce(ctx, tool.notifier, fmt.Sprintf("%s: %s", id, result.Message))
	}

	return tools.NewTextResult(result.Message), nil
}
