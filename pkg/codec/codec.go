// Package codec provides the at-rest serialization form for canonical
// messages. Every message serializes to {"type": <label>, "data": {...}}
// where the label is the variant tag for plain messages and the
// Chunk-suffixed class label for partial messages. Decoding dispatches
// on the 12 recognized labels.
package codec

import (
	"fmt"

	"github.com/conneroisu/msgkit/pkg/messages"
	"github.com/conneroisu/msgkit/pkg/msgerrs"
)

// chunkLabels maps each variant tag to its chunk serialization label.
var chunkLabels = map[messages.MessageType]string{
	messages.TypeSystem:   "SystemMessageChunk",
	messages.TypeHuman:    "HumanMessageChunk",
	messages.TypeAI:       "AIMessageChunk",
	messages.TypeTool:     "ToolMessageChunk",
	messages.TypeFunction: "FunctionMessageChunk",
	messages.TypeChat:     "ChatMessageChunk",
}

// chunkTypes is the inverse of chunkLabels.
var chunkTypes = func() map[string]messages.MessageType {
	out := make(map[string]messages.MessageType, len(chunkLabels))
	for tag, label := range chunkLabels {
		out[label] = tag
	}

	return out
}()

// Encode serializes a message or chunk to its at-rest representation.
func Encode(v messages.Value) (map[string]any, error) {
	switch m := v.(type) {
	case messages.Message:
		if !m.Type.Valid() {
			return nil, unsupportedVariant(m.Type)
		}

		return map[string]any{
			"type": string(m.Type),
			"data": encodeData(m),
		}, nil
	case messages.MessageChunk:
		label, ok := chunkLabels[m.Type]
		if !ok {
			return nil, unsupportedVariant(m.Type)
		}
		data := encodeData(m.Message)
		if m.ToolCallChunks != nil {
			data["tool_call_chunks"] = encodeToolCallChunks(m.ToolCallChunks)
		}

		return map[string]any{"type": label, "data": data}, nil
	default:
		return nil, unsupportedVariant("")
	}
}

// EncodeAll serializes a sequence of messages and chunks.
func EncodeAll(values []messages.Value) ([]map[string]any, error) {
	out := make([]map[string]any, len(values))
	for i, v := range values {
		encoded, err := Encode(v)
		if err != nil {
			return nil, err
		}
		out[i] = encoded
	}

	return out, nil
}

// Decode reconstructs a message or chunk from its at-rest
// representation, dispatching on the type label.
func Decode(raw map[string]any) (messages.Value, error) {
	label, ok := raw["type"].(string)
	if !ok {
		return nil, msgerrs.NewSerializationError(
			msgerrs.ErrCodeUnrecognizedSerializedType,
			"serialized message is missing its type label",
			nil,
		)
	}

	data, _ := raw["data"].(map[string]any)

	if tag := messages.MessageType(label); tag.Valid() {
		return decodeMessage(tag, data), nil
	}

	if tag, ok := chunkTypes[label]; ok {
		chunk := messages.MessageChunk{Message: decodeMessage(tag, data)}
		chunk.ToolCallChunks = decodeToolCallChunks(data["tool_call_chunks"])

		return chunk, nil
	}

	return nil, msgerrs.NewSerializationError(
		msgerrs.ErrCodeUnrecognizedSerializedType,
		fmt.Sprintf("unrecognized serialized message type %q", label),
		nil,
	).WithTypeLabel(label)
}

// DecodeAll reconstructs a sequence of messages and chunks.
func DecodeAll(raw []map[string]any) ([]messages.Value, error) {
	out := make([]messages.Value, len(raw))
	for i, entry := range raw {
		decoded, err := Decode(entry)
		if err != nil {
			return nil, err
		}
		out[i] = decoded
	}

	return out, nil
}

func unsupportedVariant(tag messages.MessageType) error {
	return msgerrs.NewSerializationError(
		msgerrs.ErrCodeUnsupportedMessageVariant,
		fmt.Sprintf("cannot serialize unrecognized message variant %q", tag),
		nil,
	)
}
