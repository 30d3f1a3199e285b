package trimming

import "github.com/conneroisu/msgkit/pkg/messages"

// Counter counts tokens for a sequence of messages. The trimmer treats
// it as a black-box oracle and calls it repeatedly during the boundary
// search, worst case O(n²) across candidate prefixes plus one call per
// dropped content block during partial truncation; callers needing to
// bound that cost should supply a memoizing implementation. Counter
// failures abort the trim and propagate unmodified.
type Counter interface {
	CountTokens(msgs []messages.Message) (int, error)
}

// CounterFunc adapts a whole-sequence counting function to the Counter
// interface.
type CounterFunc func([]messages.Message) (int, error)

// CountTokens implements Counter.
func (f CounterFunc) CountTokens(msgs []messages.Message) (int, error) {
	return f(msgs)
}

// PerMessage adapts a single-message counting function by summing it
// across the sequence. This is the explicit per-message counterpart to
// CounterFunc; callers declare which shape they pass instead of the
// trimmer inspecting the function.
func PerMessage(count func(messages.Message) (int, error)) Counter {
	return CounterFunc(func(msgs []messages.Message) (int, error) {
		total := 0
		for _, m := range msgs {
			n, err := count(m)
			if err != nil {
				return 0, err
			}
			total += n
		}

		return total, nil
	})
}
