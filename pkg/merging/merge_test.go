package merging_test

import (
	"reflect"
	"testing"

	"github.com/conneroisu/msgkit/pkg/merging"
	"github.com/conneroisu/msgkit/pkg/messages"
	"github.com/conneroisu/msgkit/pkg/msgerrs"
)

func TestMergeRuns(t *testing.T) {
	tests := []struct {
		name string
		in   []messages.Message
		want []messages.Message
	}{
		{
			name: "empty input",
			in:   nil,
			want: []messages.Message{},
		},
		{
			name: "adjacent same-variant messages merge",
			in: []messages.Message{
				messages.NewHuman("a"),
				messages.NewHuman("b"),
				messages.NewAI("c"),
			},
			want: []messages.Message{
				messages.NewHuman("ab"),
				messages.NewAI("c"),
			},
		},
		{
			name: "variant changes bound runs",
			in: []messages.Message{
				messages.NewHuman("a"),
				messages.NewAI("b"),
				messages.NewHuman("c"),
			},
			want: []messages.Message{
				messages.NewHuman("a"),
				messages.NewAI("b"),
				messages.NewHuman("c"),
			},
		},
		{
			name: "a full run collapses",
			in: []messages.Message{
				messages.NewSystem("x"),
				messages.NewSystem("y"),
				messages.NewSystem("z"),
			},
			want: []messages.Message{
				messages.NewSystem("xyz"),
			},
		},
		{
			name: "block content concatenates with text combination",
			in: []messages.Message{
				{Type: messages.TypeAI, Content: messages.BlockListContent{
					{"type": "text", "text": "par"},
				}},
				{Type: messages.TypeAI, Content: messages.BlockListContent{
					{"type": "text", "text": "tial"},
					{"type": "tool_use", "id": "call-1"},
				}},
			},
			want: []messages.Message{
				{Type: messages.TypeAI, Content: messages.BlockListContent{
					{"type": "text", "text": "partial"},
					{"type": "tool_use", "id": "call-1"},
				}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := merging.MergeRuns(tt.in)
			if err != nil {
				t.Fatalf("MergeRuns() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MergeRuns() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMergeRunsIdempotent(t *testing.T) {
	in := []messages.Message{
		messages.NewHuman("a"),
		messages.NewHuman("b"),
		messages.NewAI("c"),
		messages.NewAI("d"),
		messages.NewHuman("e"),
	}

	once, err := merging.MergeRuns(in)
	if err != nil {
		t.Fatalf("MergeRuns() error = %v", err)
	}

	twice, err := merging.MergeRuns(once)
	if err != nil {
		t.Fatalf("MergeRuns(MergeRuns()) error = %v", err)
	}

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("re-merging changed the result: %+v != %+v", twice, once)
	}
}

func TestMergeRunsDoesNotMutateInput(t *testing.T) {
	in := []messages.Message{
		{Type: messages.TypeHuman, Content: messages.BlockListContent{
			{"type": "text", "text": "a"},
		}},
		{Type: messages.TypeHuman, Content: messages.BlockListContent{
			{"type": "text", "text": "b"},
		}},
	}

	if _, err := merging.MergeRuns(in); err != nil {
		t.Fatalf("MergeRuns() error = %v", err)
	}

	if got := in[0].TextContent(); got != "a" {
		t.Errorf("input message content = %q after merge, want %q", got, "a")
	}
}

func TestMergeRunsConflictingNames(t *testing.T) {
	in := []messages.Message{
		{Type: messages.TypeHuman, Content: messages.StringContent("a"), Name: "alice"},
		{Type: messages.TypeHuman, Content: messages.StringContent("b"), Name: "bob"},
	}

	_, err := merging.MergeRuns(in)
	if !msgerrs.IsCode(err, msgerrs.ErrCodeMismatchedChunkField) {
		t.Errorf("Expected mismatched_chunk_field, got %v", err)
	}
}
