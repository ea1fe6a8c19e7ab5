package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mutavec.dev/pkg/mutavec/internal/adapter"
	"mutavec.dev/pkg/mutavec/internal/domain"
	m "mutavec.dev/pkg/mutavec/internal/model"
)

func TestSwitchMethod_GetQueryVectorStripsQuery(t *testing.T) {
	original := adapter.NewQueryVector("http://example.com/search?q=old&lang=en", m.ParamsOf(
		m.Pair{Name: "q", Value: "old"},
	))

	switched := domain.SwitchMethod(original)

	assert.Equal(t, m.MethodPost, switched.Method())
	assert.Equal(t, "http://example.com/search", switched.Target())

	// The original is untouched.
	assert.Equal(t, m.MethodGet, original.Method())
	assert.Equal(t, "http://example.com/search?q=old&lang=en", original.Target())
}

func TestSwitchMethod_GetNonQueryVectorKeepsTarget(t *testing.T) {
	original := adapter.NewCookieVector("http://example.com/a?b=c", m.ParamsOf(
		m.Pair{Name: "session", Value: "1"},
	))

	switched := domain.SwitchMethod(original)

	assert.Equal(t, m.MethodPost, switched.Method())
	assert.Equal(t, "http://example.com/a?b=c", switched.Target())
}

func TestSwitchMethod_PostBecomesGetWithTargetUntouched(t *testing.T) {
	original := adapter.NewFormVector("http://example.com/submit?stale=1", m.ParamsOf(
		m.Pair{Name: "name", Value: "john"},
	))

	switched := domain.SwitchMethod(original)

	// POST to GET does not rebuild a query string from the body parameters.
	assert.Equal(t, m.MethodGet, switched.Method())
	assert.Equal(t, "http://example.com/submit?stale=1", switched.Target())
	assert.True(t, original.Params().Equal(switched.Params()))
}

func TestSwitchMethod_UnparseableTargetCutsAtQuestionMark(t *testing.T) {
	original := adapter.NewQueryVector("http://exa mple/%zz?x=1", m.ParamsOf(
		m.Pair{Name: "x", Value: "1"},
	))

	switched := domain.SwitchMethod(original)

	assert.Equal(t, "http://exa mple/%zz", switched.Target())
}
