package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoArgs struct {
	Word string `json:"word" jsonschema_description:"The word to echo"`
}

type echoTool struct {
	*BaseTool
}

func newEchoTool() *echoTool {
	return &echoTool{
		BaseTool: NewBaseTool(
			mcp.NewTool(
				"echo",
				mcp.WithDescription("Echo a word"),
				mcp.WithString("word", mcp.Required()),
			),
			echoArgs{},
		),
	}
}

func (tool *echoTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	word, ok := request.GetArguments()["word"].(string)
	if !ok {
		return NewErrorResult(errors.New("word must be a string")), nil
	}
	return NewTextResult(word), nil
}

type failingTool struct {
	*BaseTool
}

func (tool *failingTool) Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return nil, errors.New("boom")
}

func TestRegistryInvoke(t *testing.T) {
	registry := NewRegistry(nil)
	registry.Register(newEchoTool())

	out, err := registry.Invoke(context.Background(), "echo", map[string]any{"word": "hello"})
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	_, err = registry.Invoke(context.Background(), "echo", map[string]any{"word": 3})
	assert.ErrorIs(t, err, ErrInvalidParams)
	assert.Contains(t, err.Error(), "word must be a string")

	_, err = registry.Invoke(context.Background(), "shout", nil)
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestRegistryHandlerError(t *testing.T) {
	registry := NewRegistry(nil)
	registry.Register(&failingTool{BaseTool: NewBaseTool(mcp.NewTool("fail"), nil)})

	_, err := registry.Invoke(context.Background(), "fail", nil)
	assert.EqualError(t, err, "boom")
}

func TestRegistryKeepsOrderAndReplaces(t *testing.T) {
	registry := NewRegistry(server.NewMCPServer("test", "1.0.0", server.WithToolCapabilities(false)))
	registry.Register(
		newEchoTool(),
		&failingTool{BaseTool: NewBaseTool(mcp.NewTool("fail"), nil)},
		newEchoTool(),
	)

	tools := registry.Tools()
	require.Len(t, tools, 2)
	assert.Equal(t, "echo", tools[0].Name())
	assert.Equal(t, "fail", tools[1].Name())
}

func TestOpenAITools(t *testing.T) {
	registry := NewRegistry(nil)
	registry.Register(
		newEchoTool(),
		&failingTool{BaseTool: NewBaseTool(mcp.NewTool("fail", mcp.WithDescription("Always fails")), nil)},
	)

	openaiTools := registry.OpenAITools()
	require.Len(t, openaiTools, 2)

	echo := openaiTools[0]
	assert.Equal(t, "echo", echo.Function.Name)
	assert.Equal(t, "Echo a word", echo.Function.Description.Value)
	assert.Equal(t, "object", echo.Function.Parameters["type"])
	assert.NotContains(t, echo.Function.Parameters, "$schema")

	properties, ok := echo.Function.Parameters["properties"].(map[string]any)
	require.True(t, ok)
	word, ok := properties["word"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", word["type"])
	assert.Equal(t, "The word to echo", word["description"])

	fail := openaiTools[1]
	assert.Equal(t, "object", fail.Function.Parameters["type"])
	assert.Empty(t, fail.Function.Parameters["properties"])
}

func TestFlatten(t *testing.T) {
	assert.Equal(t, "", Flatten(nil))
	assert.Equal(t, "plain", Flatten(NewTextResult("plain")))
	assert.Equal(t, "data:image/png;base64,AA==", Flatten(mcp.NewToolResultImage("data:image/png;base64,AA==", "AA==", "image/png")))

	result := NewErrorResult(errors.New("bad input"))
	assert.True(t, result.IsError)
	assert.Equal(t, "bad input", Flatten(result))
}

func TestAnthropicTools(t *testing.T) {
	registry := NewRegistry(nil)
	registry.Register(
		newEchoTool(),
		&failingTool{BaseTool: NewBaseTool(mcp.NewTool("fail", mcp.WithDescription("Always fails")), nil)},
	)

	anthropicTools := registry.AnthropicTools()
	require.Len(t, anthropicTools, 2)

	echo := anthropicTools[0].OfTool
	require.NotNil(t, echo)
	assert.Equal(t, "echo", echo.Name)
	assert.Equal(t, "Echo a word", echo.Description.Value)
	assert.Equal(t, []string{"word"}, echo.InputSchema.Required)

	properties, ok := echo.InputSchema.Properties.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, properties, "word")

	fail := anthropicTools[1].OfTool
	require.NotNil(t, fail)
	assert.Equal(t, "fail", fail.Name)
	assert.Empty(t, fail.InputSchema.Required)
	assert.Empty(t, fail.InputSchema.Properties)
}
