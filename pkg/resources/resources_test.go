package resources

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSnapshot records.Snapshot

func (f fixedSnapshot) LeaveSummarySnapshot() records.Snapshot {
	return records.Snapshot(f)
}

func newTestServer() *server.MCPServer {
	mcpServer := server.NewMCPServer("test-server", "1.0.0",
		server.WithResourceCapabilities(false, false),
	)

	Register(mcpServer, fixedSnapshot{
		{EmployeeID: "E001", Balance: 18},
		{EmployeeID: "E002", Balance: 20},
	})

	return mcpServer
}

func readResource(t *testing.T, mcpServer *server.MCPServer, uri string) mcp.TextResourceContents {
	t.Helper()

	message, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  "resources/read",
		"params":  map[string]any{"uri": uri},
	})
	require.NoError(t, err)

	response := mcpServer.HandleMessage(context.Background(), message)
	resp, ok := response.(mcp.JSONRPCResponse)
	require.True(t, ok, "unexpected response %#v", response)

	result, ok := resp.Result.(mcp.ReadResourceResult)
	require.True(t, ok)
	require.Len(t, result.Contents, 1)

	content, ok := result.Contents[0].(mcp.TextResourceContents)
	require.True(t, ok)

	return content
}

func TestGreetingResource(t *testing.T) {
	content := readResource(t, newTestServer(), "greeting://Ada")

	assert.Equal(t, "greeting://Ada", content.URI)
	assert.Equal(t, "text/plain", content.MIMEType)
	assert.Equal(t, "Hello, Ada! Welcome to the Employee Manager. How can I assist you today?", content.Text)
}

func TestGreetingHandlerFallsBackToURI(t *testing.T) {
	request := mcp.ReadResourceRequest{}
	request.Params.URI = "greeting://Grace"

	contents, err := GreetingHandler(context.Background(), request)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Hello, Grace!")
}

func TestSummaryResource(t *testing.T) {
	content := readResource(t, newTestServer(), summaryURI)

	assert.Equal(t, "application/json", content.MIMEType)

	var snapshot records.Snapshot
	require.NoError(t, json.Unmarshal([]byte(content.Text), &snapshot))
	assert.Equal(t, records.Snapshot{
		{EmployeeID: "E001", Balance: 18},
		{EmployeeID: "E002", Balance: 20},
	}, snapshot)
}

func TestGreetingHandlerIgnoresNonStringArgument(t *testing.T) {
	request := mcp.ReadResourceRequest{}
	request.Params.URI = "greeting://Grace Hopper"
	request.Params.Arguments = map[string]any{"name": []string{"Grace", "Hopper"}}

	contents, err := GreetingHandler(context.Background(), request)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "Hello, Grace Hopper! Welcome to the Employee Manager. How can I assist you today?", text.Text)
}
