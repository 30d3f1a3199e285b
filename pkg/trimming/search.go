package trimming

import "github.com/conneroisu/msgkit/pkg/messages"

// firstN keeps the longest prefix whose token count fits the budget:
// candidate prefixes are tested from the full length down to a single
// message, and the first (longest) fitting one wins. When nothing fits
// the prefix is empty. With allowPartial, the first excluded message
// may be re-included in truncated form; with a boundary type, the
// prefix then shrinks until it ends on that type.
func firstN(
	msgs []messages.Message,
	maxTokens int,
	counter Counter,
	allowPartial bool,
	endOn messages.MessageType,
	splitter TextSplitter,
) ([]messages.Message, error) {
	working := make([]messages.Message, len(msgs))
	copy(working, msgs)

	idx := 0
	for drop := 0; drop < len(working); drop++ {
		n, err := counter.CountTokens(working[:len(working)-drop])
		if err != nil {
			return nil, err
		}
		if n <= maxTokens {
			idx = len(working) - drop

			break
		}
	}

	if allowPartial && idx < len(working) {
		var err error
		working, idx, err = includePartial(working, idx, maxTokens, counter, splitter)
		if err != nil {
			return nil, err
		}
	}

	if endOn != "" {
		for idx > 0 && working[idx-1].Type != endOn {
			idx--
		}
	}

	out := make([]messages.Message, idx)
	copy(out, working[:idx])

	return out, nil
}

// includePartial tries to extend the prefix with a truncated copy of
// the boundary message. Block-structured content is truncated by
// progressively dropping trailing blocks (the content is never emptied
// entirely); failing that, plain or text-block content is re-split into
// units via the text splitter and the same progressive drop applies.
// Returns the possibly extended sequence and prefix length.
func includePartial(
	working []messages.Message,
	idx, maxTokens int,
	counter Counter,
	splitter TextSplitter,
) ([]messages.Message, int, error) {
	boundary := working[idx]

	if blocks, ok := boundary.Content.(messages.BlockListContent); ok {
		truncated := boundary.DeepCopy()
		kept := truncated.Content.(messages.BlockListContent)
		for drop := 1; drop < len(blocks); drop++ {
			truncated.Content = kept[:len(blocks)-drop]
			candidate := appendTruncated(working[:idx], truncated)
			n, err := counter.CountTokens(candidate)
			if err != nil {
				return nil, 0, err
			}
			if n <= maxTokens {
				return candidate, idx + 1, nil
			}
		}
	}

	text, ok := boundaryText(boundary)
	if !ok || text == "" {
		return working, idx, nil
	}

	units := splitter(text)
	blocks := make(messages.BlockListContent, len(units))
	for i, unit := range units {
		blocks[i] = map[string]any{"type": "text", "text": unit}
	}
	truncated := boundary.DeepCopy()
	for drop := 1; drop < len(units); drop++ {
		truncated.Content = blocks[:len(units)-drop]
		candidate := appendTruncated(working[:idx], truncated)
		n, err := counter.CountTokens(candidate)
		if err != nil {
			return nil, 0, err
		}
		if n <= maxTokens {
			return candidate, idx + 1, nil
		}
	}

	return working, idx, nil
}

// boundaryText extracts the text to re-split: string content as is,
// otherwise the first text-typed block of block-structured content.
func boundaryText(m messages.Message) (string, bool) {
	switch content := m.Content.(type) {
	case messages.StringContent:
		return string(content), true
	case messages.BlockListContent:
		for _, block := range content {
			if block["type"] != "text" {
				continue
			}
			if text, ok := block["text"].(string); ok {
				return text, true
			}
		}

		return "", false
	default:
		return "", false
	}
}

func appendTruncated(prefix []messages.Message, truncated messages.Message) []messages.Message {
	out := make([]messages.Message, 0, len(prefix)+1)
	out = append(out, prefix...)

	return append(out, truncated)
}

// lastN keeps the longest suffix fitting the budget by running the
// prefix search over a reversed view, with startOn acting as the end
// boundary in the reversed frame. With keepSystem, a system message at
// index 0 is set aside before the reversal and unconditionally
// reattached afterwards without being charged against the budget.
func lastN(
	msgs []messages.Message,
	maxTokens int,
	counter Counter,
	allowPartial, keepSystem bool,
	startOn messages.MessageType,
	splitter TextSplitter,
) ([]messages.Message, error) {
	swappedSystem := keepSystem && len(msgs) > 0 && msgs[0].Type == messages.TypeSystem

	var reversed []messages.Message
	if swappedSystem {
		reversed = reverse(msgs[1:])
	} else {
		reversed = reverse(msgs)
	}

	trimmed, err := firstN(reversed, maxTokens, counter, allowPartial, startOn, splitter)
	if err != nil {
		return nil, err
	}

	result := reverse(trimmed)
	if swappedSystem {
		return append([]messages.Message{msgs[0]}, result...), nil
	}

	return result, nil
}

func reverse(msgs []messages.Message) []messages.Message {
	out := make([]messages.Message, len(msgs))
	for i, m := range msgs {
		out[len(msgs)-1-i] = m
	}

	return out
}
