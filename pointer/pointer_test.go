package pointer_test

import (
	"testing"

	"github.com/speakeasy-api/asyncapi/pointer"
	"github.com/stretchr/testify/assert"
)

func TestFrom_Success(t *testing.T) {
	t.Parallel()

	s := pointer.From("test")
	assert.Equal(t, "test", *s)

	i := pointer.From(int64(42))
	assert.Equal(t, int64(42), *i)
}

func TestValue_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    *string
		expected string
	}{
		{
			name:     "returns value",
			input:    pointer.From("value"),
			expected: "value",
		},
		{
			name:     "returns zero value for nil",
			input:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, pointer.Value(tt.input))
		})
	}
}
