package codec

import "github.com/conneroisu/msgkit/pkg/messages"

// encodeData flattens a message's fields into the serialized data
// mapping. Zero-valued optional fields are omitted.
func encodeData(m messages.Message) map[string]any {
	copied := m.DeepCopy()
	data := map[string]any{"content": encodeContent(copied.Content)}
	if copied.Name != "" {
		data["name"] = copied.Name
	}
	if copied.ID != "" {
		data["id"] = copied.ID
	}
	if copied.Role != "" {
		data["role"] = copied.Role
	}
	if copied.ToolCallID != "" {
		data["tool_call_id"] = copied.ToolCallID
	}
	if copied.ToolCalls != nil {
		data["tool_calls"] = encodeToolCalls(copied.ToolCalls)
	}
	if copied.AdditionalMetadata != nil {
		data["additional_metadata"] = copied.AdditionalMetadata
	}

	return data
}

func encodeContent(c messages.Content) any {
	switch content := c.(type) {
	case messages.StringContent:
		return string(content)
	case messages.BlockListContent:
		return []map[string]any(content)
	default:
		return ""
	}
}

func encodeToolCalls(calls []messages.ToolCall) []map[string]any {
	out := make([]map[string]any, len(calls))
	for i, call := range calls {
		entry := map[string]any{"name": call.Name, "id": call.ID}
		if call.Args != nil {
			entry["args"] = call.Args
		}
		out[i] = entry
	}

	return out
}

func encodeToolCallChunks(chunks []messages.ToolCallChunk) []map[string]any {
	out := make([]map[string]any, len(chunks))
	for i, chunk := range chunks {
		out[i] = map[string]any{
			"name":  chunk.Name,
			"args":  chunk.Args,
			"id":    chunk.ID,
			"index": chunk.Index,
		}
	}

	return out
}

// decodeMessage rebuilds a message of the given variant from its
// serialized data mapping. Missing content decodes as empty string
// content.
func decodeMessage(tag messages.MessageType, data map[string]any) messages.Message {
	m := messages.Message{Type: tag, Content: decodeContent(data["content"])}
	m.Name, _ = data["name"].(string)
	m.ID, _ = data["id"].(string)
	m.Role, _ = data["role"].(string)
	m.ToolCallID, _ = data["tool_call_id"].(string)
	m.ToolCalls = decodeToolCalls(data["tool_calls"])
	if metadata, ok := data["additional_metadata"].(map[string]any); ok {
		m.AdditionalMetadata = metadata
	}

	return m.DeepCopy()
}

func decodeContent(raw any) messages.Content {
	switch content := raw.(type) {
	case string:
		return messages.StringContent(content)
	case []map[string]any:
		return messages.BlockListContent(content)
	case []any:
		blocks := make(messages.BlockListContent, 0, len(content))
		for _, entry := range content {
			if block, ok := entry.(map[string]any); ok {
				blocks = append(blocks, block)
			}
		}

		return blocks
	default:
		return messages.StringContent("")
	}
}

func decodeToolCalls(raw any) []messages.ToolCall {
	entries := asMapList(raw)
	if entries == nil {
		return nil
	}

	out := make([]messages.ToolCall, len(entries))
	for i, entry := range entries {
		out[i].Name, _ = entry["name"].(string)
		out[i].ID, _ = entry["id"].(string)
		out[i].Args, _ = entry["args"].(map[string]any)
	}

	return out
}

func decodeToolCallChunks(raw any) []messages.ToolCallChunk {
	entries := asMapList(raw)
	if entries == nil {
		return nil
	}

	out := make([]messages.ToolCallChunk, len(entries))
	for i, entry := range entries {
		out[i].Name, _ = entry["name"].(string)
		out[i].Args, _ = entry["args"].(string)
		out[i].ID, _ = entry["id"].(string)
		out[i].Index = asInt(entry["index"])
	}

	return out
}

// asMapList accepts either a typed or untyped list of mappings. JSON
// round trips produce the untyped form.
func asMapList(raw any) []map[string]any {
	switch list := raw.(type) {
	case []map[string]any:
		return list
	case []any:
		out := make([]map[string]any, 0, len(list))
		for _, entry := range list {
			if m, ok := entry.(map[string]any); ok {
				out = append(out, m)
			}
		}

		return out
	default:
		return nil
	}
}

// asInt accepts the int and float64 forms an index arrives in; JSON
// round trips produce float64.
func asInt(raw any) int {
	switch n := raw.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return 0
	}
}
