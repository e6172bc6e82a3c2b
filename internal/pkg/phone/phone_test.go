package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already national", "010-1234-5678", "010-1234-5678"},
		{"digits only", "01012345678", "010-1234-5678"},
		{"with spaces", " 010 1234 5678 ", "010-1234-5678"},
		{"international prefix", "+82 10 1234 5678", "010-1234-5678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "abc", "123"} {
		_, err := Normalize(input)
		assert.ErrorIs(t, err, ErrInvalidNumber, "input %q", input)
	}
}
