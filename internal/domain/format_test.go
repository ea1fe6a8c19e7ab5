package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"mutavec.dev/pkg/mutavec/internal/domain"
	m "mutavec.dev/pkg/mutavec/internal/model"
)

func TestBuildInjection(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		defaultValue string
		format       m.Format
		want         string
	}{
		{
			name:    "straight injects the payload verbatim",
			payload: "<script>",
			format:  m.FormatStraight,
			want:    "<script>",
		},
		{
			name:         "straight wins over every other bit",
			payload:      "<script>",
			defaultValue: "foo",
			format:       m.FormatStraight | m.FormatAppend | m.FormatNullTerminate | m.FormatSemicolonPrefix,
			want:         "<script>",
		},
		{
			name:         "append prepends the default value",
			payload:      "<script>",
			defaultValue: "foo",
			format:       m.FormatAppend,
			want:         "foo<script>",
		},
		{
			name:         "append with absent default prepends nothing",
			payload:      "<script>",
			defaultValue: "",
			format:       m.FormatAppend,
			want:         "<script>",
		},
		{
			name:    "null terminate appends a single NUL byte",
			payload: "<script>",
			format:  m.FormatNullTerminate,
			want:    "<script>\x00",
		},
		{
			name:    "semicolon prefix",
			payload: "<script>",
			format:  m.FormatSemicolonPrefix,
			want:    ";<script>",
		},
		{
			name:         "append and null terminate combine",
			payload:      "<script>",
			defaultValue: "foo",
			format:       m.FormatAppend | m.FormatNullTerminate,
			want:         "foo<script>\x00",
		},
		{
			name:         "all non-straight bits combine in prefix-append-suffix order",
			payload:      "x",
			defaultValue: "d",
			format:       m.FormatSemicolonPrefix | m.FormatAppend | m.FormatNullTerminate,
			want:         ";dx\x00",
		},
		{
			name:    "unrecognized bits are ignored",
			payload: "x",
			format:  m.Format(0b11110000),
			want:    "x",
		},
		{
			name:    "zero format passes the payload through",
			payload: "x",
			format:  0,
			want:    "x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.BuildInjection(tt.payload, tt.defaultValue, tt.format)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildInjection_NullTerminateEndsWithSingleNUL(t *testing.T) {
	got := domain.BuildInjection("payload", "foo", m.FormatNullTerminate)

	assert.True(t, strings.HasSuffix(got, "\x00"))
	assert.Equal(t, 1, strings.Count(got, "\x00"))
}
