package messages

// DeepCopy produces a fully independent copy of the message. Content
// blocks, tool calls, and metadata are cloned recursively so mutating
// the copy never leaks into the original.
func (m Message) DeepCopy() Message {
	out := m
	out.Content = copyContent(m.Content)
	out.ToolCalls = copyToolCalls(m.ToolCalls)
	out.AdditionalMetadata = copyAnyMap(m.AdditionalMetadata)

	return out
}

// DeepCopy produces a fully independent copy of the chunk.
func (c MessageChunk) DeepCopy() MessageChunk {
	out := MessageChunk{Message: c.Message.DeepCopy()}
	if c.ToolCallChunks != nil {
		out.ToolCallChunks = make([]ToolCallChunk, len(c.ToolCallChunks))
		copy(out.ToolCallChunks, c.ToolCallChunks)
	}

	return out
}

func copyContent(c Content) Content {
	switch content := c.(type) {
	case StringContent:
		return content
	case BlockListContent:
		out := make(BlockListContent, len(content))
		for i, block := range content {
			out[i] = copyAnyMap(block)
		}

		return out
	default:
		return c
	}
}

func copyToolCalls(calls []ToolCall) []ToolCall {
	if calls == nil {
		return nil
	}

	out := make([]ToolCall, len(calls))
	for i, call := range calls {
		out[i] = call
		out[i].Args = copyAnyMap(call.Args)
	}

	return out
}

func copyAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyAnyValue(v)
	}

	return out
}

func copyAnyValue(v any) any {
	switch value := v.(type) {
	case map[string]any:
		return copyAnyMap(value)
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = copyAnyValue(item)
		}

		return out
	case []map[string]any:
		out := make([]map[string]any, len(value))
		for i, item := range value {
			out[i] = copyAnyMap(item)
		}

		return out
	default:
		return v
	}
}
