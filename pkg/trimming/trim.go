// Package trimming enforces a maximum token budget over a normalized
// message sequence. The trimmer never reorders messages: it removes a
// contiguous prefix or suffix, optionally rewriting the content of the
// single boundary message when partial truncation is allowed.
package trimming

import (
	"fmt"
	"strings"

	"github.com/conneroisu/msgkit/pkg/messages"
	"github.com/conneroisu/msgkit/pkg/msgerrs"
)

// Strategy selects which end of the sequence survives trimming.
type Strategy string

const (
	// StrategyFirst keeps the longest prefix that fits the budget.
	StrategyFirst Strategy = "first"
	// StrategyLast keeps the longest suffix that fits the budget.
	StrategyLast Strategy = "last"
)

// TextSplitter splits a string into smaller units for partial
// truncation. Units are re-wrapped as individual text blocks.
type TextSplitter func(text string) []string

// DefaultTextSplitter splits text on newlines.
func DefaultTextSplitter(text string) []string {
	return strings.Split(text, "\n")
}

// Option configures Trim.
type Option func(*config)

type config struct {
	strategy     Strategy
	allowPartial bool
	endOn        messages.MessageType
	startOn      messages.MessageType
	keepSystem   bool
	splitter     TextSplitter
}

// WithStrategy selects the trimming strategy. The default is
// StrategyLast.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// WithAllowPartial permits splitting the boundary message when only
// part of it fits the budget.
func WithAllowPartial() Option {
	return func(c *config) {
		c.allowPartial = true
	}
}

// WithEndOn snaps the kept prefix so its last message has the given
// variant tag. Only valid with StrategyFirst.
func WithEndOn(t messages.MessageType) Option {
	return func(c *config) {
		c.endOn = t
	}
}

// WithStartOn snaps the kept suffix so its first message has the given
// variant tag. Only valid with StrategyLast. A leading system message
// retained by WithKeepSystem is exempt.
func WithStartOn(t messages.MessageType) Option {
	return func(c *config) {
		c.startOn = t
	}
}

// WithKeepSystem always retains a system message sitting at index 0.
// Only valid with StrategyLast. The retained message is not charged
// against the budget, so the result can exceed it by the system
// message's own cost.
func WithKeepSystem() Option {
	return func(c *config) {
		c.keepSystem = true
	}
}

// WithTextSplitter overrides the splitter used for partial truncation
// of plain string content. The default splits on newlines.
func WithTextSplitter(splitter TextSplitter) Option {
	return func(c *config) {
		c.splitter = splitter
	}
}

// Trim returns the longest prefix (StrategyFirst) or suffix
// (StrategyLast) of msgs whose token count, per the supplied counter,
// does not exceed maxTokens. Input values are never mutated; the only
// content rewrite happens on a deep copy of the boundary message when
// partial truncation applies.
func Trim(
	msgs []messages.Message,
	maxTokens int,
	counter Counter,
	opts ...Option,
) ([]messages.Message, error) {
	cfg := config{strategy: StrategyLast, splitter: DefaultTextSplitter}
	for _, opt := range opts {
		opt(&cfg)
	}

	if counter == nil {
		return nil, msgerrs.NewValidationError(
			msgerrs.ErrCodeIncompatibleOptions,
			"a token counter is required",
			nil,
			"counter", nil,
		)
	}

	switch cfg.strategy {
	case StrategyFirst:
		if cfg.startOn != "" {
			return nil, incompatibleOption("start_on", "last", cfg.startOn)
		}
		if cfg.keepSystem {
			return nil, incompatibleOption("keep_system", "last", true)
		}

		return firstN(msgs, maxTokens, counter, cfg.allowPartial, cfg.endOn, cfg.splitter)
	case StrategyLast:
		if cfg.endOn != "" {
			return nil, incompatibleOption("end_on", "first", cfg.endOn)
		}

		return lastN(
			msgs,
			maxTokens,
			counter,
			cfg.allowPartial,
			cfg.keepSystem,
			cfg.startOn,
			cfg.splitter,
		)
	default:
		return nil, msgerrs.NewValidationError(
			msgerrs.ErrCodeUnrecognizedStrategy,
			fmt.Sprintf("unrecognized strategy %q: supported strategies are 'first' and 'last'", cfg.strategy),
			nil,
			"strategy", string(cfg.strategy),
		)
	}
}

func incompatibleOption(option, validStrategy string, value any) error {
	return msgerrs.NewValidationError(
		msgerrs.ErrCodeIncompatibleOptions,
		fmt.Sprintf("%s is only valid with the %q strategy", option, validStrategy),
		nil,
		option, value,
	)
}
