// Package messages provides the canonical message model for msgkit.
// This package contains the tagged-union message value consumed and
// produced by every msgkit operation, its partial (streaming) chunk
// counterpart, and the conversions between the two.
package messages

// MessageType identifies a canonical message variant. The tag doubles as
// the at-rest serialization label for the plain (non-chunk) variants and
// is immutable after construction.
type MessageType string

const (
	// TypeSystem is a system instruction message.
	TypeSystem MessageType = "system"
	// TypeHuman is a message from the user.
	TypeHuman MessageType = "human"
	// TypeAI is a message from the model.
	TypeAI MessageType = "ai"
	// TypeTool is a message carrying a tool execution result.
	TypeTool MessageType = "tool"
	// TypeFunction is a message carrying a legacy function call result.
	TypeFunction MessageType = "function"
	// TypeChat is a message with a free-form role label.
	TypeChat MessageType = "chat"
)

// Valid reports whether t is one of the recognized variant tags.
func (t MessageType) Valid() bool {
	switch t {
	case TypeSystem, TypeHuman, TypeAI, TypeTool, TypeFunction, TypeChat:
		return true
	default:
		return false
	}
}

// Value is the union of plain messages and message chunks. It is the
// type the serialization codec decodes into.
type Value interface {
	// value is a marker method for type safety
	value()
}

// Message is the canonical tagged-union message value.
//
// All variants share Content, Name, and ID. Role, ToolCallID, and
// ToolCalls are variant-specific; fields that do not apply to a variant
// are left at their zero values.
type Message struct {
	// Type is the variant tag. Immutable after construction.
	Type MessageType

	// Content is the message payload.
	// Can be a simple string or a list of content blocks.
	Content Content

	// Name is an optional identifier for the message author.
	Name string

	// ID is an optional message identifier, distinct from Name.
	// Used by the filter.
	ID string

	// Role overrides the implied role label. Chat variant only.
	Role string

	// ToolCallID links the message to the tool call it answers.
	// Tool variant only.
	ToolCallID string

	// ToolCalls carries structured call records. AI variant only.
	ToolCalls []ToolCall

	// AdditionalMetadata holds extension fields that have no dedicated
	// struct field, e.g. the legacy "function_call" field surfaced when
	// rendering AI messages to text.
	AdditionalMetadata map[string]any
}

// value implements the Value interface.
func (Message) value() {}

// Content represents the payload of a message.
//
// Content can be either a simple string or an ordered list of content
// blocks. Each block is a mapping with a "type" key and is otherwise
// opaque; {"type": "text", "text": ...} is the only shape the module
// interprets.
type Content interface {
	content()
}

// StringContent represents simple text content.
type StringContent string

// content implements the Content interface.
func (StringContent) content() {}

// BlockListContent represents structured content blocks.
type BlockListContent []map[string]any

// content implements the Content interface.
func (BlockListContent) content() {}

// NewSystem creates a system message with string content.
func NewSystem(text string) Message {
	return Message{Type: TypeSystem, Content: StringContent(text)}
}

// NewHuman creates a human message with string content.
func NewHuman(text string) Message {
	return Message{Type: TypeHuman, Content: StringContent(text)}
}

// NewAI creates an AI message with string content.
func NewAI(text string) Message {
	return Message{Type: TypeAI, Content: StringContent(text)}
}

// NewTool creates a tool message linked to the tool call it answers.
func NewTool(text, toolCallID string) Message {
	return Message{
		Type:       TypeTool,
		Content:    StringContent(text),
		ToolCallID: toolCallID,
	}
}

// NewFunction creates a function message named after the function that
// produced it.
func NewFunction(text, name string) Message {
	return Message{Type: TypeFunction, Content: StringContent(text), Name: name}
}

// NewChat creates a chat message with a free-form role label.
func NewChat(text, role string) Message {
	return Message{Type: TypeChat, Content: StringContent(text), Role: role}
}

// TextContent flattens the message content to plain text. String content
// is returned as is; block-list content contributes the "text" field of
// every text-typed block, concatenated in order.
func (m Message) TextContent() string {
	switch c := m.Content.(type) {
	case StringContent:
		return string(c)
	case BlockListContent:
		var out string
		for _, block := range c {
			if block["type"] != "text" {
				continue
			}
			if text, ok := block["text"].(string); ok {
				out += text
			}
		}

		return out
	default:
		return ""
	}
}
