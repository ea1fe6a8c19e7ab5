package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutavec.dev/pkg/mutavec/internal/model"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  m.Format
	}{
		{"straight", m.FormatStraight},
		{"append", m.FormatAppend},
		{"null", m.FormatNullTerminate},
		{"semicolon", m.FormatSemicolonPrefix},
		{"append+null", m.FormatAppend | m.FormatNullTerminate},
		{"Append + Null", m.FormatAppend | m.FormatNullTerminate},
		{"semicolon+append+null", m.FormatSemicolonPrefix | m.FormatAppend | m.FormatNullTerminate},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := m.ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat_UnknownFlagName(t *testing.T) {
	_, err := m.ParseFormat("bogus")
	require.Error(t, err)

	_, err = m.ParseFormat("append+bogus")
	require.Error(t, err)
}

func TestFormat_String(t *testing.T) {
	assert.Equal(t, "straight", m.FormatStraight.String())
	assert.Equal(t, "append+null", (m.FormatAppend | m.FormatNullTerminate).String())
	assert.Equal(t, "none", m.Format(0).String())
	assert.Equal(t, "none", m.Format(0b10000000).String())
}

func TestFormat_RoundTrip(t *testing.T) {
	for _, format := range m.DefaultFormats {
		parsed, err := m.ParseFormat(format.String())
		require.NoError(t, err)
		assert.Equal(t, format, parsed)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := m.DefaultOptions()

	assert.Equal(t, m.DefaultFormats, opts.Formats)
	assert.False(t, opts.ParamFlip)
	assert.Nil(t, opts.RespectMethod)

	// The returned slice is a copy of the package default.
	opts.Formats[0] = m.FormatSemicolonPrefix
	assert.Equal(t, m.FormatStraight, m.DefaultFormats[0])
}
