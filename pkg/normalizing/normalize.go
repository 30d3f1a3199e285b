// Package normalizing converts heterogeneous message-like inputs into
// canonical messages.
//
// Supported input shapes, in dispatch order: an already-canonical
// message (passed through), a message chunk (converted to its plain
// variant), a plain string (becomes a human message), a 2-element
// role/content pair, and a mapping carrying role-or-type plus content.
// Anything else is rejected.
package normalizing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/conneroisu/msgkit/pkg/messages"
	"github.com/conneroisu/msgkit/pkg/msgerrs"
)

// Option configures NormalizeAll.
type Option func(*options)

type options struct {
	generateIDs bool
}

// WithGeneratedIDs assigns a fresh UUID to every normalized message
// that does not already carry an ID.
func WithGeneratedIDs() Option {
	return func(o *options) {
		o.generateIDs = true
	}
}

// Normalize converts a single message-like input into a canonical
// message. The result never aliases mutable state owned by the caller.
func Normalize(input any) (messages.Message, error) {
	switch value := input.(type) {
	case messages.Message:
		return value.DeepCopy(), nil
	case *messages.Message:
		if value == nil {
			return messages.Message{}, unsupportedShape(input)
		}

		return value.DeepCopy(), nil
	case messages.MessageChunk:
		return value.ToMessage(), nil
	case string:
		return fromRole("human", messages.StringContent(value), nil)
	case [2]string:
		return fromRole(value[0], messages.StringContent(value[1]), nil)
	case []string:
		if len(value) != 2 {
			return messages.Message{}, unsupportedShape(input)
		}

		return fromRole(value[0], messages.StringContent(value[1]), nil)
	case map[string]any:
		return fromMapping(value)
	default:
		return messages.Message{}, unsupportedShape(input)
	}
}

// NormalizeAll converts a sequence of message-like inputs, order
// preserving and 1:1. The first failing input aborts the conversion.
func NormalizeAll(inputs []any, opts ...Option) ([]messages.Message, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]messages.Message, 0, len(inputs))
	for i, input := range inputs {
		m, err := Normalize(input)
		if err != nil {
			return nil, fmt.Errorf("normalize message %d: %w", i, err)
		}
		if o.generateIDs && m.ID == "" {
			m.ID = uuid.NewString()
		}
		out = append(out, m)
	}

	return out, nil
}

func unsupportedShape(input any) error {
	return msgerrs.NewNormalizationError(
		msgerrs.ErrCodeUnsupportedInputShape,
		fmt.Sprintf("unsupported message input of type %T", input),
		nil,
	).WithInput(input)
}
