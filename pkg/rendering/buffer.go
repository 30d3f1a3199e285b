// Package rendering renders message sequences to human-readable text.
package rendering

import (
	"fmt"
	"strings"

	"github.com/conneroisu/msgkit/pkg/messages"
	"github.com/conneroisu/msgkit/pkg/msgerrs"
)

// Option configures BufferString.
type Option func(*config)

type config struct {
	humanPrefix string
	aiPrefix    string
}

// WithHumanPrefix overrides the role label for human messages. The
// default is "Human".
func WithHumanPrefix(prefix string) Option {
	return func(c *config) {
		c.humanPrefix = prefix
	}
}

// WithAIPrefix overrides the role label for AI messages. The default is
// "AI".
func WithAIPrefix(prefix string) Option {
	return func(c *config) {
		c.aiPrefix = prefix
	}
}

// BufferString joins "{role}: {content}" per message with newlines.
// System, function, and tool messages use fixed labels; chat messages
// use their own role field. An AI message carrying a legacy
// "function_call" metadata field has it appended to its line.
func BufferString(msgs []messages.Message, opts ...Option) (string, error) {
	cfg := config{humanPrefix: "Human", aiPrefix: "AI"}
	for _, opt := range opts {
		opt(&cfg)
	}

	lines := make([]string, 0, len(msgs))
	for _, m := range msgs {
		var role string
		switch m.Type {
		case messages.TypeHuman:
			role = cfg.humanPrefix
		case messages.TypeAI:
			role = cfg.aiPrefix
		case messages.TypeSystem:
			role = "System"
		case messages.TypeFunction:
			role = "Function"
		case messages.TypeTool:
			role = "Tool"
		case messages.TypeChat:
			role = m.Role
		default:
			return "", msgerrs.NewRenderError(
				msgerrs.ErrCodeUnsupportedMessageVariant,
				fmt.Sprintf("unsupported message variant %q", m.Type),
				nil,
			)
		}

		line := fmt.Sprintf("%s: %s", role, m.TextContent())
		if m.Type == messages.TypeAI {
			if call, ok := m.AdditionalMetadata["function_call"]; ok {
				line += fmt.Sprintf("%v", call)
			}
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), nil
}
