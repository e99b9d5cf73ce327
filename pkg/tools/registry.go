package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/openai/openai-go"
)

// Registry manages tool registration and lets callers invoke tools by name
// without going through a transport.
type Registry struct {
	server   *server.MCPServer
	tools    map[string]Tool
	handlers map[string]server.ToolHandlerFunc
	order    []string
}

// NewRegistry creates a new tool registry. mcpServer may be nil when the
// tools are only invoked in-process.
func NewRegistry(mcpServer *server.MCPServer) *Registry {
	return &Registry{
		server:   mcpServer,
		tools:    make(map[string]Tool),
		handlers: make(map[string]server.ToolHandlerFunc),
	}
}

// RegisterTool registers a tool with the registry and the server
func (r *Registry) RegisterTool(tool Tool) {
	name := tool.Name()
	if _, exists := r.tools[name]; !exists {
		r.order = append(r.order, name)
	}

	handler := logCalls(name, tool.Handler)
	r.tools[name] = tool
	r.handlers[name] = handler

	if r.server != nil {
		r.server.AddTool(tool.Handle(), handler)
	}
}

// Register registers several tools in order
func (r *Registry) Register(tools ...Tool) {
	for _, tool := range tools {
		r.RegisterTool(tool)
	}
}

// Tools returns the registered tools in registration order
func (r *Registry) Tools() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// OpenAITools returns every registered tool in OpenAI format
func (r *Registry) OpenAITools() []openai.ChatCompletionToolParam {
	tools := r.Tools()
	openaiTools := make([]openai.ChatCompletionToolParam, len(tools))
	for i, tool := range tools {
		openaiTools[i] = tool.ToOpenAITool()
	}
	return openaiTools
}

// AnthropicTools returns every registered tool in Anthropic format
func (r *Registry) AnthropicTools() []anthropic.ToolUnionParam {
	tools := r.Tools()
	anthropicTools := make([]anthropic.ToolUnionParam, len(tools))
	for i, tool := range tools {
		anthropicTools[i] = tool.ToAnthropicTool()
	}
	return anthropicTools
}

// Invoke calls a tool by name and flattens its result to a string. Business
// outcomes, successful or not, come back as text; an error is returned only
// for an unknown tool or arguments the tool rejected.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	handler, ok := r.handlers[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	request := mcp.CallToolRequest{}
	request.Params.Name = name
	request.Params.Arguments = args

	result, err := handler(ctx, request)
	if err != nil {
		return "", err
	}

	text := Flatten(result)
	if result.IsError {
		return "", fmt.Errorf("%w: %s", ErrInvalidParams, text)
	}

	return text, nil
}

// logCalls tags each call with an id and logs its outcome and duration.
func logCalls(name string, next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		logger := log.With("tool", name, "call_id", uuid.New().String())
		start := time.Now()

		result, err := next(ctx, request)

		switch {
		case err != nil:
			logger.Error("Tool call failed", "error", err, "duration", time.Since(start))
		case result == nil:
			err = errors.New("tool returned no result")
			logger.Error("Tool call failed", "error", err, "duration", time.Since(start))
		case result.IsError:
			logger.Warn("Tool call rejected", "reason", Flatten(result), "duration", time.Since(start))
		default:
			logger.Debug("Tool call handled", "duration", time.Since(start))
		}

		return result, err
	}
}
