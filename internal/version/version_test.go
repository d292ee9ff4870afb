package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Success(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		version  string
		expected Version
	}{
		{
			name:     "standard version",
			version:  "2.3.0",
			expected: Version{Major: 2, Minor: 3, Patch: 0},
		},
		{
			name:     "pre-release suffix is ignored",
			version:  "2.6.0-rc1",
			expected: Version{Major: 2, Minor: 6, Patch: 0},
		},
		{
			name:     "build metadata is ignored",
			version:  "10.20.30+build.1",
			expected: Version{Major: 10, Minor: 20, Patch: 30},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			v, err := Parse(tt.version)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, *v)
		})
	}
}

func TestParse_Error(t *testing.T) {
	t.Parallel()

	tests := []string{"", "2", "2.3", "2.3.x", "2.-1.0", "v2.3.0"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()

			_, err := Parse(input)
			require.Error(t, err)
		})
	}
}

func TestVersion_Compare(t *testing.T) {
	t.Parallel()

	v210 := MustParse("2.1.0")
	v230 := MustParse("2.3.0")

	assert.True(t, v210.LessThan(*v230))
	assert.True(t, v230.GreaterThan(*v210))
	assert.True(t, v230.Equal(*MustParse("2.3.0")))
	assert.False(t, v230.LessThan(*v230))
	assert.Equal(t, "2.1.0", v210.String())
}

func TestMustParse_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		MustParse("nope")
	})
}
