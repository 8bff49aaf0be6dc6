package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/prpflow/internal/errors"
)

func TestExtractPRPPath(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		want    string
		wantErr bool
	}{
		{
			name:   "bare path",
			output: "Done! The PRP was written to PRPs/retry-logic.md for review.",
			want:   "PRPs/retry-logic.md",
		},
		{
			name:   "backticked path",
			output: "Created `PRPs/dark_mode-v2.md` successfully.",
			want:   "PRPs/dark_mode-v2.md",
		},
		{
			name:   "first bare match wins",
			output: "PRPs/first.md then PRPs/second.md",
			want:   "PRPs/first.md",
		},
		{
			name:    "no recognizable path",
			output:  "The model wrote something to docs/notes.txt",
			wantErr: true,
		},
		{
			name:    "uppercase filename does not match the convention",
			output:  "see PRPs/Feature.md",
			wantErr: true,
		},
		{
			name:    "empty output",
			output:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPRPPath(tt.output)
			if tt.wantErr {
				require.ErrorIs(t, err, errors.ErrPRPPathNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
