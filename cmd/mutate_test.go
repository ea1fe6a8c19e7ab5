package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutavec.dev/pkg/mutavec/internal/model"
)

func TestParseParams(t *testing.T) {
	params, err := parseParams([]string{"user=john", "q=", "redirect=http://t/?a=b"})
	require.NoError(t, err)

	assert.Equal(t, []string{"user", "q", "redirect"}, params.Keys())
	assert.Equal(t, "john", params.Value("user"))
	assert.Equal(t, "", params.Value("q"))
	assert.Equal(t, "http://t/?a=b", params.Value("redirect"))
}

func TestParseParams_Invalid(t *testing.T) {
	_, err := parseParams([]string{"noequals"})
	assert.Error(t, err)

	_, err = parseParams([]string{"=value"})
	assert.Error(t, err)
}

func TestParseMethod(t *testing.T) {
	method, err := parseMethod("get")
	require.NoError(t, err)
	assert.Equal(t, m.MethodGet, method)

	method, err = parseMethod("POST")
	require.NoError(t, err)
	assert.Equal(t, m.MethodPost, method)

	_, err = parseMethod("PATCH")
	assert.Error(t, err)
}

func TestBuildVector(t *testing.T) {
	vector, err := buildVector("query", "http://t/page?a=1", "", []string{"a=1"}, []string{"a"})
	require.NoError(t, err)

	assert.True(t, vector.QueryBased())
	assert.Equal(t, m.MethodGet, vector.Method())
	assert.Equal(t, "http://t/page?a=1", vector.Target())
	assert.True(t, vector.Immutables().Contains("a"))
}

func TestBuildVector_MethodOverride(t *testing.T) {
	vector, err := buildVector("form", "http://t/", "get", []string{"a=1"}, nil)
	require.NoError(t, err)

	assert.Equal(t, m.MethodGet, vector.Method())
}

func TestBuildVector_Kinds(t *testing.T) {
	for _, kind := range []string{"query", "form", "cookie", "header", "Query"} {
		_, err := buildVector(kind, "http://t/", "", nil, nil)
		assert.NoError(t, err, kind)
	}

	_, err := buildVector("body", "http://t/", "", nil, nil)
	assert.Error(t, err)
}

func TestBuildOptions(t *testing.T) {
	opts, err := buildOptions([]string{"straight", "append+null"}, true, "auto")
	require.NoError(t, err)

	assert.Equal(t, []m.Format{m.FormatStraight, m.FormatAppend | m.FormatNullTerminate}, opts.Formats)
	assert.True(t, opts.ParamFlip)
	assert.Nil(t, opts.RespectMethod)
}

func TestBuildOptions_RespectMethod(t *testing.T) {
	opts, err := buildOptions([]string{"straight"}, false, "true")
	require.NoError(t, err)
	require.NotNil(t, opts.RespectMethod)
	assert.True(t, *opts.RespectMethod)

	opts, err = buildOptions([]string{"straight"}, false, "false")
	require.NoError(t, err)
	require.NotNil(t, opts.RespectMethod)
	assert.False(t, *opts.RespectMethod)

	_, err = buildOptions([]string{"straight"}, false, "maybe")
	assert.Error(t, err)
}

func TestBuildOptions_DefaultFormatsFromConfig(t *testing.T) {
	opts, err := buildOptions(nil, false, "auto")
	require.NoError(t, err)

	assert.Equal(t, m.DefaultFormats, opts.Formats)
}

func TestBuildOptions_BadFormatName(t *testing.T) {
	_, err := buildOptions([]string{"bogus"}, false, "auto")
	assert.Error(t, err)
}

func TestLoadPayloads(t *testing.T) {
	file := filepath.Join(t.TempDir(), "payloads.yaml")
	require.NoError(t, os.WriteFile(file, []byte("- \"<script>\"\n- \"' OR 1=1--\"\n"), 0o600))

	payloads, err := loadPayloads("first", file)
	require.NoError(t, err)

	assert.Equal(t, []string{"first", "<script>", "' OR 1=1--"}, payloads)
}

func TestLoadPayloads_Errors(t *testing.T) {
	_, err := loadPayloads("", "")
	assert.Error(t, err)

	_, err = loadPayloads("", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("not: [valid"), 0o600))

	_, err = loadPayloads("", bad)
	assert.Error(t, err)
}
