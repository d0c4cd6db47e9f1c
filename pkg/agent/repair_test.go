package agent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRepair(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want any
	}{
		{
			name: "missing comma same line",
			in:   `{"server": "X" "agent_role_prompt": "Y"}`,
			want: map[string]any{"server": "X", "agent_role_prompt": "Y"},
		},
		{
			name: "single quotes and bare keys",
			in:   `{server: 'X', count: 2}`,
			want: map[string]any{"server": "X", "count": 2.0},
		},
		{
			name: "python literals",
			in:   `{"a": True, "b": False, "c": None}`,
			want: map[string]any{"a": true, "b": false, "c": nil},
		},
		{
			name: "comments",
			in:   "{\n  // persona\n  \"a\": 1, /* inline */\n  \"b\": \"two\"\n}",
			want: map[string]any{"a": 1.0, "b": "two"},
		},
		{
			name: "trailing commas",
			in:   `{"a": [1, 2,],}`,
			want: map[string]any{"a": []any{1.0, 2.0}},
		},
		{
			name: "unclosed object",
			in:   `{"a": "x", "b": "y"`,
			want: map[string]any{"a": "x", "b": "y"},
		},
		{
			name: "code fence",
			in:   "```json\n{\"a\": 1}\n```",
			want: map[string]any{"a": 1.0},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Repair(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRepairRejects(t *testing.T) {
	cases := map[string]string{
		"empty":        "",
		"prose":        "hello there",
		"prose before": `Here it is: {"a": 1}`,
		"prose after":  `{"a": 1} and more`,
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Repair(in)
			require.Error(t, err)
		})
	}
}
