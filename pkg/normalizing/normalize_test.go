package normalizing_test

import (
	"reflect"
	"testing"

	"github.com/conneroisu/msgkit/pkg/messages"
	"github.com/conneroisu/msgkit/pkg/msgerrs"
	"github.com/conneroisu/msgkit/pkg/normalizing"
)

func TestNormalizeShapes(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  messages.Message
	}{
		{
			name:  "plain string becomes a human message",
			input: "hi",
			want:  messages.NewHuman("hi"),
		},
		{
			name:  "canonical message passes through",
			input: messages.NewAI("hello"),
			want:  messages.NewAI("hello"),
		},
		{
			name:  "message pointer passes through",
			input: &messages.Message{Type: messages.TypeSystem, Content: messages.StringContent("x")},
			want:  messages.NewSystem("x"),
		},
		{
			name:  "chunk converts to its plain variant",
			input: messages.NewAI("hello").ToChunk(),
			want:  messages.NewAI("hello"),
		},
		{
			name:  "role content pair",
			input: [2]string{"system", "x"},
			want:  messages.NewSystem("x"),
		},
		{
			name:  "role content slice",
			input: []string{"assistant", "hello"},
			want:  messages.NewAI("hello"),
		},
		{
			name:  "user alias maps to human",
			input: [2]string{"user", "hi"},
			want:  messages.NewHuman("hi"),
		},
		{
			name:  "mapping with role",
			input: map[string]any{"role": "system", "content": "x"},
			want:  messages.NewSystem("x"),
		},
		{
			name:  "mapping with type",
			input: map[string]any{"type": "human", "content": "hi"},
			want:  messages.NewHuman("hi"),
		},
		{
			name: "mapping with recognized extras",
			input: map[string]any{
				"role":         "tool",
				"content":      "42",
				"name":         "calc",
				"id":           "m1",
				"tool_call_id": "call-1",
			},
			want: messages.Message{
				Type:       messages.TypeTool,
				Content:    messages.StringContent("42"),
				Name:       "calc",
				ID:         "m1",
				ToolCallID: "call-1",
			},
		},
		{
			name: "leftover mapping keys fold into metadata",
			input: map[string]any{
				"role":    "ai",
				"content": "hello",
				"mood":    "chipper",
			},
			want: messages.Message{
				Type:               messages.TypeAI,
				Content:            messages.StringContent("hello"),
				AdditionalMetadata: map[string]any{"mood": "chipper"},
			},
		},
		{
			name: "block list content",
			input: map[string]any{
				"role":    "human",
				"content": []any{map[string]any{"type": "text", "text": "hi"}},
			},
			want: messages.Message{
				Type:    messages.TypeHuman,
				Content: messages.BlockListContent{{"type": "text", "text": "hi"}},
			},
		},
		{
			name: "tool calls decode from mapping form",
			input: map[string]any{
				"role":    "ai",
				"content": "",
				"tool_calls": []any{
					map[string]any{"name": "bash", "args": map[string]any{"cmd": "ls"}, "id": "call-1"},
				},
			},
			want: messages.Message{
				Type:    messages.TypeAI,
				Content: messages.StringContent(""),
				ToolCalls: []messages.ToolCall{
					{Name: "bash", Args: map[string]any{"cmd": "ls"}, ID: "call-1"},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizing.Normalize(tt.input)
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizePairAndMappingAgree(t *testing.T) {
	fromPair, err := normalizing.Normalize([2]string{"system", "x"})
	if err != nil {
		t.Fatalf("Normalize(pair) error = %v", err)
	}

	fromMapping, err := normalizing.Normalize(map[string]any{"role": "system", "content": "x"})
	if err != nil {
		t.Fatalf("Normalize(mapping) error = %v", err)
	}

	if !reflect.DeepEqual(fromPair, fromMapping) {
		t.Errorf("pair form %+v != mapping form %+v", fromPair, fromMapping)
	}
}

func TestNormalizeRolePreferredOverType(t *testing.T) {
	got, err := normalizing.Normalize(map[string]any{
		"role":    "human",
		"type":    "ai",
		"content": "hi",
	})
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	if got.Type != messages.TypeHuman {
		t.Errorf("Type = %v, want human", got.Type)
	}
	// The unconsumed type key folds into metadata.
	if got.AdditionalMetadata["type"] != "ai" {
		t.Errorf("AdditionalMetadata = %v, want type key preserved", got.AdditionalMetadata)
	}
}

func TestNormalizeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input any
		code  msgerrs.ErrorCode
	}{
		{
			name:  "unsupported shape",
			input: 42,
			code:  msgerrs.ErrCodeUnsupportedInputShape,
		},
		{
			name:  "slice of wrong length",
			input: []string{"human"},
			code:  msgerrs.ErrCodeUnsupportedInputShape,
		},
		{
			name:  "unknown role",
			input: [2]string{"wizard", "abracadabra"},
			code:  msgerrs.ErrCodeUnknownMessageType,
		},
		{
			name:  "mapping without role or type",
			input: map[string]any{"content": "hi"},
			code:  msgerrs.ErrCodeMissingRequiredField,
		},
		{
			name:  "mapping without content",
			input: map[string]any{"role": "human"},
			code:  msgerrs.ErrCodeMissingRequiredField,
		},
		{
			name:  "mapping with non-string role",
			input: map[string]any{"role": 3, "content": "hi"},
			code:  msgerrs.ErrCodeUnknownMessageType,
		},
		{
			name:  "mapping with unusable content",
			input: map[string]any{"role": "human", "content": 3},
			code:  msgerrs.ErrCodeUnsupportedInputShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizing.Normalize(tt.input)
			if err == nil {
				t.Fatal("Expected error")
			}
			if !msgerrs.IsCode(err, tt.code) {
				t.Errorf("Expected code %s, got %v", tt.code, err)
			}
		})
	}
}

func TestNormalizeAll(t *testing.T) {
	t.Run("order preserving and 1:1", func(t *testing.T) {
		got, err := normalizing.NormalizeAll([]any{
			"hi",
			[2]string{"ai", "hello"},
			map[string]any{"role": "system", "content": "x"},
		})
		if err != nil {
			t.Fatalf("NormalizeAll() error = %v", err)
		}

		want := []messages.Message{
			messages.NewHuman("hi"),
			messages.NewAI("hello"),
			messages.NewSystem("x"),
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("NormalizeAll() = %+v, want %+v", got, want)
		}
	})

	t.Run("first failing input aborts", func(t *testing.T) {
		_, err := normalizing.NormalizeAll([]any{"hi", 42})
		if !msgerrs.IsCode(err, msgerrs.ErrCodeUnsupportedInputShape) {
			t.Errorf("Expected unsupported_input_shape, got %v", err)
		}
	})

	t.Run("generated IDs fill gaps only", func(t *testing.T) {
		withID := messages.NewAI("hello")
		withID.ID = "keep-me"

		got, err := normalizing.NormalizeAll(
			[]any{"hi", withID, "again"},
			normalizing.WithGeneratedIDs(),
		)
		if err != nil {
			t.Fatalf("NormalizeAll() error = %v", err)
		}

		if got[0].ID == "" || got[2].ID == "" {
			t.Error("Expected generated IDs on messages without one")
		}
		if got[0].ID == got[2].ID {
			t.Error("Expected generated IDs to be unique")
		}
		if got[1].ID != "keep-me" {
			t.Errorf("ID = %q, want keep-me", got[1].ID)
		}
	})
}

func TestNormalizeDoesNotAliasMappingInput(t *testing.T) {
	blocks := []any{map[string]any{"type": "text", "text": "hi"}}
	input := map[string]any{"role": "human", "content": blocks}

	got, err := normalizing.Normalize(input)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	blocks[0].(map[string]any)["text"] = "mutated"

	if text := got.TextContent(); text != "hi" {
		t.Errorf("TextContent() = %q after mutating input, want %q", text, "hi")
	}
}
