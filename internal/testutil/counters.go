// Package testutil provides test utilities and fixtures.
package testutil

import "github.com/conneroisu/msgkit/pkg/messages"

// PerMessageCost is a deterministic single-message counting function:
// every message costs exactly one token.
func PerMessageCost(messages.Message) (int, error) {
	return 1, nil
}

// TextLengthCost counts one token per rune of a message's flattened
// text content. Block boundaries cost nothing, which makes partial
// truncation outcomes easy to predict in tests.
func TextLengthCost(m messages.Message) (int, error) {
	return len([]rune(m.TextContent())), nil
}

// CountingCounter wraps a sequence counting function and records how
// many times the trimmer invoked it.
type CountingCounter struct {
	Count func([]messages.Message) (int, error)
	Calls int
}

// CountTokens implements trimming.Counter.
func (c *CountingCounter) CountTokens(msgs []messages.Message) (int, error) {
	c.Calls++

	return c.Count(msgs)
}
