// Package merging merges adjacent same-variant messages.
package merging

import "github.com/conneroisu/msgkit/pkg/messages"

// MergeRuns merges every maximal run of same-variant messages into a
// single message via the chunk merge operation. A run boundary is any
// variant change; heterogeneous neighbors are emitted side by side.
// Empty input yields empty output, and input values are never mutated.
func MergeRuns(msgs []messages.Message) ([]messages.Message, error) {
	if len(msgs) == 0 {
		return []messages.Message{}, nil
	}

	merged := []messages.Message{msgs[0].DeepCopy()}
	for _, m := range msgs[1:] {
		curr := m.DeepCopy()
		last := merged[len(merged)-1]
		if curr.Type != last.Type {
			merged = append(merged, curr)

			continue
		}

		combined, err := last.ToChunk().Concat(curr.ToChunk())
		if err != nil {
			return nil, err
		}
		merged[len(merged)-1] = combined.ToMessage()
	}

	return merged, nil
}
