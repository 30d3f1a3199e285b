package normalizing

import (
	"fmt"

	"github.com/conneroisu/msgkit/pkg/messages"
	"github.com/conneroisu/msgkit/pkg/msgerrs"
)

// roleTable maps accepted role strings to variant tags. The chat
// variant is deliberately absent: chat messages arrive only as
// already-canonical values or through deserialization.
var roleTable = map[string]messages.MessageType{
	"human":     messages.TypeHuman,
	"user":      messages.TypeHuman,
	"ai":        messages.TypeAI,
	"assistant": messages.TypeAI,
	"system":    messages.TypeSystem,
	"function":  messages.TypeFunction,
	"tool":      messages.TypeTool,
}

// fromRole builds a canonical message from a role string, content, and
// any extra mapping fields.
func fromRole(role string, content messages.Content, fields map[string]any) (messages.Message, error) {
	tag, ok := roleTable[role]
	if !ok {
		return messages.Message{}, msgerrs.NewNormalizationError(
			msgerrs.ErrCodeUnknownMessageType,
			fmt.Sprintf(
				"unknown message role %q: use one of 'human', 'user', 'ai', 'assistant', 'system', 'function', or 'tool'",
				role,
			),
			nil,
		)
	}

	m := messages.Message{Type: tag, Content: content}
	var metadata map[string]any
	for key, value := range fields {
		switch key {
		case "name":
			m.Name, _ = value.(string)
		case "id":
			m.ID, _ = value.(string)
		case "tool_call_id":
			m.ToolCallID, _ = value.(string)
		case "tool_calls":
			m.ToolCalls = asToolCalls(value)
		default:
			if metadata == nil {
				metadata = make(map[string]any)
			}
			metadata[key] = value
		}
	}
	m.AdditionalMetadata = metadata

	return m.DeepCopy(), nil
}

// fromMapping builds a canonical message from a mapping form. The role
// key is preferred over type when both are present; the unconsumed key
// folds into additional metadata along with every other leftover key.
func fromMapping(mapping map[string]any) (messages.Message, error) {
	fields := make(map[string]any, len(mapping))
	for key, value := range mapping {
		fields[key] = value
	}

	rawRole, ok := fields["role"]
	if ok {
		delete(fields, "role")
	} else {
		rawRole, ok = fields["type"]
		if !ok {
			return messages.Message{}, msgerrs.NewNormalizationError(
				msgerrs.ErrCodeMissingRequiredField,
				"message mapping must contain a 'role' or 'type' key",
				nil,
			).WithInput(mapping)
		}
		delete(fields, "type")
	}

	rawContent, ok := fields["content"]
	if !ok {
		return messages.Message{}, msgerrs.NewNormalizationError(
			msgerrs.ErrCodeMissingRequiredField,
			"message mapping must contain a 'content' key",
			nil,
		).WithInput(mapping)
	}
	delete(fields, "content")

	role, ok := rawRole.(string)
	if !ok {
		return messages.Message{}, msgerrs.NewNormalizationError(
			msgerrs.ErrCodeUnknownMessageType,
			fmt.Sprintf("message role must be a string, got %T", rawRole),
			nil,
		)
	}

	content, err := asContent(rawContent)
	if err != nil {
		return messages.Message{}, err
	}

	return fromRole(role, content, fields)
}

// asContent accepts the string and block-list content shapes.
func asContent(raw any) (messages.Content, error) {
	switch content := raw.(type) {
	case string:
		return messages.StringContent(content), nil
	case []map[string]any:
		return messages.BlockListContent(content), nil
	case []any:
		blocks := make(messages.BlockListContent, 0, len(content))
		for _, entry := range content {
			block, ok := entry.(map[string]any)
			if !ok {
				return nil, msgerrs.NewNormalizationError(
					msgerrs.ErrCodeUnsupportedInputShape,
					fmt.Sprintf("content block must be a mapping, got %T", entry),
					nil,
				)
			}
			blocks = append(blocks, block)
		}

		return blocks, nil
	default:
		return nil, msgerrs.NewNormalizationError(
			msgerrs.ErrCodeUnsupportedInputShape,
			fmt.Sprintf("message content must be a string or a list of content blocks, got %T", raw),
			nil,
		)
	}
}

// asToolCalls accepts typed records or their mapping form.
func asToolCalls(raw any) []messages.ToolCall {
	switch calls := raw.(type) {
	case []messages.ToolCall:
		return calls
	case []map[string]any:
		return toolCallsFromMaps(calls)
	case []any:
		entries := make([]map[string]any, 0, len(calls))
		for _, entry := range calls {
			if m, ok := entry.(map[string]any); ok {
				entries = append(entries, m)
			}
		}

		return toolCallsFromMaps(entries)
	default:
		return nil
	}
}

func toolCallsFromMaps(entries []map[string]any) []messages.ToolCall {
	out := make([]messages.ToolCall, len(entries))
	for i, entry := range entries {
		out[i].Name, _ = entry["name"].(string)
		out[i].ID, _ = entry["id"].(string)
		out[i].Args, _ = entry["args"].(map[string]any)
	}

	return out
}
