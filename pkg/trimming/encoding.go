package trimming

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"

	"github.com/conneroisu/msgkit/pkg/messages"
)

// EncodingCounter counts tokens with a tiktoken BPE encoding. Each
// message contributes the token length of its flattened text content.
type EncodingCounter struct {
	encoding *tiktoken.Tiktoken
}

// NewEncodingCounter creates a counter for a named encoding, e.g.
// "cl100k_base".
func NewEncodingCounter(name string) (*EncodingCounter, error) {
	encoding, err := tiktoken.GetEncoding(name)
	if err != nil {
		return nil, fmt.Errorf("load encoding %q: %w", name, err)
	}

	return &EncodingCounter{encoding: encoding}, nil
}

// NewCounterForModel creates a counter using the encoding registered
// for the given model name.
func NewCounterForModel(model string) (*EncodingCounter, error) {
	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		return nil, fmt.Errorf("load encoding for model %q: %w", model, err)
	}

	return &EncodingCounter{encoding: encoding}, nil
}

// CountTokens implements Counter.
func (c *EncodingCounter) CountTokens(msgs []messages.Message) (int, error) {
	total := 0
	for _, m := range msgs {
		total += len(c.encoding.Encode(m.TextContent(), nil, nil))
	}

	return total, nil
}
