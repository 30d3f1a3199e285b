package messages

// ToolCall represents a structured call record carried by an AI message.
type ToolCall struct {
	// Name is the tool being invoked.
	Name string

	// Args contains the call arguments.
	// Intentionally flexible as arguments vary by tool.
	Args map[string]any

	// ID uniquely identifies this call.
	ID string
}

// ToolCallChunk represents a streaming tool-call delta carried by an AI
// message chunk. Deltas arriving with the same Index belong to the same
// call and are combined during chunk merges.
type ToolCallChunk struct {
	// Name is the partial tool name.
	Name string

	// Args is the partial argument payload, accumulated as raw text.
	Args string

	// ID identifies the call the delta belongs to.
	ID string

	// Index orders deltas within the stream.
	Index int
}
