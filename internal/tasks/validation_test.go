package tasks

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateTaskCreate(t *testing.T) {
	tests := []struct {
		name      string
		input     TaskCreate
		wantTypes map[string]string
	}{
		{
			name:  "valid minimal lengths",
			input: TaskCreate{Title: "abc", Description: "abcde"},
		},
		{
			name:  "title at upper bound",
			input: TaskCreate{Title: strings.Repeat("t", 100), Description: "abcde"},
		},
		{
			name:  "title counted in characters, not bytes",
			input: TaskCreate{Title: strings.Repeat("я", 100), Description: "описание"},
		},
		{
			name:  "description has no upper bound",
			input: TaskCreate{Title: "abc", Description: strings.Repeat("d", 10_000)},
		},
		{
			name:      "title too short",
			input:     TaskCreate{Title: "ab", Description: "abcde"},
			wantTypes: map[string]string{"title": "string_too_short"},
		},
		{
			name:      "title too long",
			input:     TaskCreate{Title: strings.Repeat("я", 101), Description: "abcde"},
			wantTypes: map[string]string{"title": "string_too_long"},
		},
		{
			name:      "description too short",
			input:     TaskCreate{Title: "abc", Description: "abcd"},
			wantTypes: map[string]string{"description": "string_too_short"},
		},
		{
			name:      "both missing",
			input:     TaskCreate{},
			wantTypes: map[string]string{"title": "missing", "description": "missing"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTaskCreate(tt.input)
			if tt.wantTypes == nil {
				require.NoError(t, err)
				return
			}

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)

			got := make(map[string]string, len(verr.Violations))
			for _, v := range verr.Violations {
				require.Len(t, v.Loc, 2)
				require.Equal(t, "body", v.Loc[0])
				require.NotEmpty(t, v.Msg)
				got[v.Loc[1]] = v.Type
			}
			require.Equal(t, tt.wantTypes, got)
		})
	}
}

func TestValidationError_Messages(t *testing.T) {
	err := ValidateTaskCreate(TaskCreate{Title: "ab", Description: strings.Repeat("d", 5)})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "String should have at least 3 characters", verr.Violations[0].Msg)
	require.Contains(t, verr.Error(), "body.title")
}
