// Package filtering provides predicate-based inclusion and exclusion
// over normalized message sequences.
package filtering

import "github.com/conneroisu/msgkit/pkg/messages"

// Criteria names the message attributes a filter matches on. A message
// matches when its name, variant tag, or ID appears in the
// corresponding list; empty lists never match.
type Criteria struct {
	// Names matches against the message Name field.
	Names []string

	// Types matches against the message variant tag.
	Types []messages.MessageType

	// IDs matches against the message ID field.
	IDs []string
}

func (c Criteria) matches(m messages.Message) bool {
	for _, name := range c.Names {
		if m.Name == name {
			return true
		}
	}
	for _, tag := range c.Types {
		if m.Type == tag {
			return true
		}
	}
	for _, id := range c.IDs {
		if m.ID == id {
			return true
		}
	}

	return false
}

// Filter returns the messages that match at least one include criterion
// and none of the exclude criteria. Exclusion is evaluated first, and
// the relative order of survivors is preserved.
//
// When no include criteria are supplied at all, nothing is kept. The
// asymmetry with the usual include-everything default is deliberate and
// covered by an explicit test.
func Filter(msgs []messages.Message, include, exclude Criteria) []messages.Message {
	filtered := make([]messages.Message, 0, len(msgs))
	for _, m := range msgs {
		if exclude.matches(m) {
			continue
		}
		if include.matches(m) {
			filtered = append(filtered, m)
		}
	}

	return filtered
}
