// Package tools provides interfaces and implementations for MCP tools
package tools

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"
	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/openai/openai-go"
	"github.com/poojithagummadi/Model-Context-Protocol/pkg/notify"
)

// Standard errors for consistent error handling
var (
	ErrInvalidParams = errors.New("invalid parameters")
	ErrUnknownTool   = errors.New("unknown tool")
)

// Tool defines the interface for all tools in the system
type Tool interface {
	// Handle returns the underlying MCP tool
	Handle() mcp.Tool

	// ToOpenAITool converts the tool to OpenAI format
	ToOpenAITool() openai.ChatCompletionToolParam

	// ToAnthropicTool converts the tool to Anthropic format
	ToAnthropicTool() anthropic.ToolUnionParam

	// Handler processes tool requests and returns responses
	Handler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

	// Name returns the name of the tool
	Name() string
}

// BaseTool provides common functionality for all tools
type BaseTool struct {
	handle mcp.Tool
	args   any
}

// NewBaseTool creates a new BaseTool from an MCP handle and the struct that
// describes its arguments.
func NewBaseTool(handle mcp.Tool, args any) *BaseTool {
	return &BaseTool{
		handle: handle,
		args:   args,
	}
}

// Handle returns the MCP Tool definition
func (b *BaseTool) Handle() mcp.Tool {
	return b.handle
}

// Name returns the name of the tool
func (b *BaseTool) Name() string {
	return b.handle.Name
}

// ToOpenAITool converts the tool to an OpenAI function definition
func (b *BaseTool) ToOpenAITool() openai.ChatCompletionToolParam {
	return openai.ChatCompletionToolParam{
		Type: "function",
		Function: openai.FunctionDefinitionParam{
			Name:        b.handle.Name,
			Description: openai.String(b.handle.Description),
			Parameters:  FunctionParameters(b.args),
		},
	}
}

// ToAnthropicTool converts the tool to an Anthropic tool definition
func (b *BaseTool) ToAnthropicTool() anthropic.ToolUnionParam {
	params := FunctionParameters(b.args)

	inputSchema := anthropic.ToolInputSchemaParam{
		Type:       constant.Object("object"),
		Properties: params["properties"],
	}

	switch required := params["required"].(type) {
	case []string:
		inputSchema.Required = required
	case []any:
		for _, r := range required {
			if name, ok := r.(string); ok {
				inputSchema.Required = append(inputSchema.Required, name)
			}
		}
	}

	tool := anthropic.ToolUnionParamOfTool(inputSchema, b.handle.Name)
	tool.OfTool.Description = anthropic.String(b.handle.Description)

	return tool
}

// NewErrorResult creates a standard error result
func NewErrorResult(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}

// NewTextResult creates a standard text result
func NewTextResult(text string) *mcp.CallToolResult {
	return mcp.NewToolResultText(text)
}

// Flatten joins the text content of a result into a single string.
func Flatten(result *mcp.CallToolResult) string {
	if result == nil {
		return ""
	}

	parts := make([]string, 0, len(result.Content))
	for _, content := range result.Content {
		if text, ok := mcp.AsTextContent(content); ok {
			parts = append(parts, text.Text)
		}
	}

	return strings.Join(parts, "\n")
}

// Announce forwards a successful change to the notifier. Delivery failures
// are logged and never affect the tool result. Notifiers that talk to the
// network belong behind a notify.Queue so the call returns immediately.
func Announce(ctx context.Context, notifier notify.Notifier, text string) {
	if notifier == nil {
		return
	}

	if err := notifier.Notify(ctx, text); err != nil {
		log.Warn("Could not deliver notification", "error", err)
	}
}
