// Package resources exposes read-only MCP resources: the greeting template
// and the leave balance snapshot.
package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/manager"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/records"
)

const (
	greetingScheme = "greeting://"
	summaryURI     = "employees://leave/summary"
)

// SnapshotSource supplies leave balance snapshots.
type SnapshotSource interface {
	LeaveSummarySnapshot() records.Snapshot
}

// Register adds every resource to the server.
func Register(mcpServer *server.MCPServer, source SnapshotSource) {
	mcpServer.AddResourceTemplate(
		mcp.NewResourceTemplate(
			greetingScheme+"{name}",
			"greeting",
			mcp.WithTemplateDescription("Get a personalized greeting"),
			mcp.WithTemplateMIMEType("text/plain"),
		),
		GreetingHandler,
	)

	mcpServer.AddResource(
		mcp.NewResource(
			summaryURI,
			"leave_summary",
			mcp.WithResourceDescription("Every employee's leave balance as JSON"),
			mcp.WithMIMEType("application/json"),
		),
		SummaryHandler(source),
	)
}

// GreetingHandler reads greeting://{name}.
func GreetingHandler(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "text/plain",
			Text:     manager.Greeting(greetingName(request)),
		},
	}, nil
}

// greetingName prefers a plain string template variable and otherwise uses
// the raw URI suffix.
func greetingName(request mcp.ReadResourceRequest) string {
	if name, ok := request.Params.Arguments["name"].(string); ok {
		return name
	}

	return strings.TrimPrefix(request.Params.URI, greetingScheme)
}

// SummaryHandler reads the leave balance snapshot as JSON.
func SummaryHandler(source SnapshotSource) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		data, err := json.Marshal(source.LeaveSummarySnapshot())
		if err != nil {
			return nil, fmt.Errorf("encode leave summary: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      summaryURI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
