package tools

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/invopop/jsonschema"
	"github.com/openai/openai-go"
)

var reflector = &jsonschema.Reflector{
	Anonymous:      true,
	DoNotReference: true,
	ExpandedStruct: true,
}

// FunctionParameters reflects an argument struct into the JSON schema object
// OpenAI expects for function parameters. A nil args describes a function
// without parameters.
func FunctionParameters(args any) openai.FunctionParameters {
	params := openai.FunctionParameters{
		"type":       "object",
		"properties": map[string]any{},
	}

	if args == nil {
		return params
	}

	raw, err := json.Marshal(reflector.Reflect(args))
	if err != nil {
		log.Warn("Could not encode tool arguments schema", "args", fmt.Sprintf("%T", args), "error", err)
		return params
	}

	if err := json.Unmarshal(raw, &params); err != nil {
		log.Warn("Could not decode tool arguments schema", "args", fmt.Sprintf("%T", args), "error", err)
		return params
	}

	delete(params, "$schema")

	return params
}
