package leave

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/render"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools"
)

// SummaryTool draws a glyph bar of every employee's balance.
type SummaryTool struct {
	*tools.BaseTool
	svc      Service
	renderer render.Renderer
}

// NewSummaryTool creates a new visualize_leave_summary tool.
func NewSummaryTool(svc Service, renderer render.Renderer) *SummaryTool {
	return &SummaryTool{
		BaseTool: tools.NewBaseTool(
			mcp.NewTool(
				"visualize_leave_summary",
				mcp.WithDescription("Visual summary of all employees' leave balances"),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			nil,
		),
		svc:      svc,
		renderer: renderer,
	}
}

// Handler processes visualize_leave_summary requests
func (tool *SummaryTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := tool.renderer.Render(tool.svc.LeaveSummarySnapshot())
	if err != nil {
		return tools.NewErrorResult(fmt.Errorf("render leave summary: %w", err)), nil
	}

	return tools.NewTextResult(text), nil
}
