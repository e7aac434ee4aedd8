package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeNotice(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "indented multi-line literal",
			in:   "    line one\n    line two\n    ",
			want: "line one\nline two",
		},
		{
			name: "trailing newlines stripped",
			in:   "body\n\n\n",
			want: "body",
		},
		{
			name: "already clean",
			in:   "single line",
			want: "single line",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizeNotice(tt.in))
		})
	}
}
