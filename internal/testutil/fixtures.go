package testutil

import "github.com/conneroisu/msgkit/pkg/messages"

// Conversation is a small mixed-variant sequence used across tests.
func Conversation() []messages.Message {
	return []messages.Message{
		messages.NewSystem("you're a good assistant."),
		messages.NewHuman("what's your name"),
		messages.NewAI("steve-o"),
		messages.NewHuman("what's your favorite color"),
		messages.NewAI("silicon blue"),
	}
}

// BlockMessage builds a human message whose content is a list of text
// blocks with the given texts.
func BlockMessage(texts ...string) messages.Message {
	blocks := make(messages.BlockListContent, len(texts))
	for i, text := range texts {
		blocks[i] = map[string]any{"type": "text", "text": text}
	}

	return messages.Message{Type: messages.TypeHuman, Content: blocks}
}
