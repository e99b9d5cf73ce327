package utils

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetStringParam safely extracts a string parameter from the request
func GetStringParam(req mcp.CallToolRequest, key string, required bool) (string, error) {
	val, exists := req.GetArguments()[key]
	if !exists || val == nil {
		if required {
			return "", fmt.Errorf("missing required parameter: '%s'", key)
		}
		return "", nil
	}

	str, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("parameter '%s' must be a string", key)
	}

	return str, nil
}

// GetRequiredStringParam is a shorthand for GetStringParam with required=true
func GetRequiredStringParam(req mcp.CallToolRequest, key string) (string, error) {
	return GetStringParam(req, key, true)
}

// GetArrayParam safely extracts an array parameter from the request
func GetArrayParam(req mcp.CallToolRequest, key string, required bool) ([]any, error) {
	val, exists := req.GetArguments()[key]
	if !exists || val == nil {
		if required {
			return nil, fmt.Errorf("missing required parameter: '%s'", key)
		}
		return nil, nil
	}

	switch arr := val.(type) {
	case []any:
		return arr, nil
	case []string:
		items := make([]any, len(arr))
		for i, s := range arr {
			items[i] = s
		}
		return items, nil
	default:
		return nil, fmt.Errorf("parameter '%s' must be an array", key)
	}
}

// GetRequiredStringSliceParam extracts a required array whose items are all strings
func GetRequiredStringSliceParam(req mcp.CallToolRequest, key string) ([]string, error) {
	arr, err := GetArrayParam(req, key, true)
	if err != nil {
		return nil, err
	}

	strs := make([]string, len(arr))
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("parameter '%s' item %d must be a string", key, i)
		}
		strs[i] = s
	}

	return strs, nil
}

// HandleParameterError returns a properly formatted error response for parameter validation errors
func HandleParameterError(err error) *mcp.CallToolResult {
	return mcp.NewToolResultError(err.Error())
}
