package leave

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/render"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/tools"
)

// PlotTool renders every employee's balance as a bar chart image.
type PlotTool struct {
	*tools.BaseTool
	svc   Service
	chart render.ImageRenderer
}

// NewPlotTool creates a new plot_leave_balances tool.
func NewPlotTool(svc Service, chart render.ImageRenderer) *PlotTool {
	return &PlotTool{
		BaseTool: tools.NewBaseTool(
			mcp.NewTool(
				"plot_leave_balances",
				mcp.WithDescription("Generate a bar chart of leave balances and return it as a base64 image string"),
				mcp.WithReadOnlyHintAnnotation(true),
			),
			nil,
		),
		svc:   svc,
		chart: chart,
	}
}

// Handler processes plot_leave_balances requests. The text content carries
// the chart as a data URI; an image block carries the same bytes for clients
// that display images.
func (tool *PlotTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data, mimeType, err := tool.chart.Encode(tool.svc.LeaveSummarySnapshot())
	if err != nil {
		return tools.NewErrorResult(fmt.Errorf("plot leave balances: %w", err)), nil
	}

	return mcp.NewToolResultImage(
		render.DataURI(mimeType, data),
		base64.StdEncoding.EncodeToString(data),
		mimeType,
	), nil
}
