package messages

import (
	"fmt"

	"github.com/conneroisu/msgkit/pkg/msgerrs"
)

// MessageChunk is the partial (streaming) counterpart of a Message.
// Every plain variant has a chunk variant with the same tag. Chunks of
// the same variant support the Concat merge operation.
type MessageChunk struct {
	Message

	// ToolCallChunks holds streaming tool-call deltas. The field is
	// transient: converting a chunk back to a plain message drops it.
	ToolCallChunks []ToolCallChunk
}

// ToChunk marks the message as partial so it can participate in chunk
// merges. The chunk holds an independent copy of the message.
func (m Message) ToChunk() MessageChunk {
	return MessageChunk{Message: m.DeepCopy()}
}

// ToMessage converts the chunk back to a plain message, dropping the
// partial marker and the transient streaming tool-call deltas.
func (c MessageChunk) ToMessage() Message {
	return c.Message.DeepCopy()
}

// Concat merges two partial messages into one. Content concatenates
// (string concatenation, or block-list concatenation with adjacent
// same-typed text blocks combined), names and roles must agree or one
// must be empty, the first non-empty ID wins, tool calls append, and
// tool-call deltas sharing an index are combined. Concatenating chunks
// of different variants is an error.
func (c MessageChunk) Concat(other MessageChunk) (MessageChunk, error) {
	if c.Type != other.Type {
		return MessageChunk{}, msgerrs.NewMergeError(
			msgerrs.ErrCodeMismatchedChunkType,
			fmt.Sprintf("cannot concatenate %q chunk with %q chunk", c.Type, other.Type),
			nil,
		)
	}

	merged := c.DeepCopy()

	name, err := mergeScalarField("name", c.Name, other.Name)
	if err != nil {
		return MessageChunk{}, err
	}
	merged.Name = name

	role, err := mergeScalarField("role", c.Role, other.Role)
	if err != nil {
		return MessageChunk{}, err
	}
	merged.Role = role

	toolCallID, err := mergeScalarField("tool_call_id", c.ToolCallID, other.ToolCallID)
	if err != nil {
		return MessageChunk{}, err
	}
	merged.ToolCallID = toolCallID

	merged.Content = mergeContent(c.Content, other.Content)
	if merged.ID == "" {
		merged.ID = other.ID
	}
	if len(other.ToolCalls) > 0 {
		merged.ToolCalls = append(merged.ToolCalls, copyToolCalls(other.ToolCalls)...)
	}
	merged.ToolCallChunks = mergeToolCallChunks(merged.ToolCallChunks, other.ToolCallChunks)
	merged.AdditionalMetadata = mergeMetadata(c.AdditionalMetadata, other.AdditionalMetadata)

	return merged, nil
}

// mergeScalarField combines a scalar chunk field: the values must match
// or one must be empty.
func mergeScalarField(field, a, b string) (string, error) {
	switch {
	case a == "":
		return b, nil
	case b == "" || a == b:
		return a, nil
	default:
		return "", msgerrs.NewMergeError(
			msgerrs.ErrCodeMismatchedChunkField,
			fmt.Sprintf("cannot concatenate chunks with differing %s values %q and %q", field, a, b),
			nil,
		).WithField(field)
	}
}

// mergeContent concatenates two content payloads. String pairs
// concatenate directly; anything involving blocks is merged as block
// lists, with a non-empty string side wrapped as a single text block and
// adjacent text blocks at the junction combined.
func mergeContent(a, b Content) Content {
	if a == nil {
		return copyContent(b)
	}
	if b == nil {
		return copyContent(a)
	}

	left, leftIsString := a.(StringContent)
	right, rightIsString := b.(StringContent)
	if leftIsString && rightIsString {
		return left + right
	}

	blocks := contentAsBlocks(a)
	incoming := contentAsBlocks(b)
	if len(blocks) > 0 && len(incoming) > 0 {
		last := blocks[len(blocks)-1]
		first := incoming[0]
		if last["type"] == "text" && first["type"] == "text" {
			lastText, lastOK := last["text"].(string)
			firstText, firstOK := first["text"].(string)
			if lastOK && firstOK {
				last["text"] = lastText + firstText
				incoming = incoming[1:]
			}
		}
	}

	return append(blocks, incoming...)
}

// contentAsBlocks renders content as an independent block list. Empty
// string content contributes no blocks.
func contentAsBlocks(c Content) BlockListContent {
	switch content := c.(type) {
	case StringContent:
		if content == "" {
			return nil
		}

		return BlockListContent{{"type": "text", "text": string(content)}}
	case BlockListContent:
		return copyContent(content).(BlockListContent)
	default:
		return nil
	}
}

// mergeToolCallChunks appends incoming deltas, combining any that share
// an index with an already accumulated delta.
func mergeToolCallChunks(accumulated, incoming []ToolCallChunk) []ToolCallChunk {
	for _, delta := range incoming {
		combined := false
		for i := range accumulated {
			if accumulated[i].Index != delta.Index {
				continue
			}
			accumulated[i].Name += delta.Name
			accumulated[i].Args += delta.Args
			if accumulated[i].ID == "" {
				accumulated[i].ID = delta.ID
			}
			combined = true

			break
		}
		if !combined {
			accumulated = append(accumulated, delta)
		}
	}

	return accumulated
}

// mergeMetadata merges two metadata maps recursively: string values
// concatenate, nested maps merge, lists append, and anything else keeps
// the left operand.
func mergeMetadata(a, b map[string]any) map[string]any {
	if a == nil && b == nil {
		return nil
	}

	out := copyAnyMap(a)
	if out == nil {
		out = make(map[string]any, len(b))
	}
	for key, incoming := range b {
		existing, ok := out[key]
		if !ok {
			out[key] = copyAnyValue(incoming)

			continue
		}
		switch left := existing.(type) {
		case string:
			if right, ok := incoming.(string); ok {
				out[key] = left + right
			}
		case map[string]any:
			if right, ok := incoming.(map[string]any); ok {
				out[key] = mergeMetadata(left, right)
			}
		case []any:
			if right, ok := incoming.([]any); ok {
				out[key] = append(left, copyAnyValue(right).([]any)...)
			}
		}
	}

	return out
}
