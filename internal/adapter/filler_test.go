package adapter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mutavec.dev/pkg/mutavec/internal/adapter"
	m "mutavec.dev/pkg/mutavec/internal/model"
)

func TestSmartFiller_KeepsNonEmptyValues(t *testing.T) {
	filler := adapter.NewSmartFiller()

	params := m.ParamsOf(
		m.Pair{Name: "email", Value: "real@user.net"},
		m.Pair{Name: "q", Value: "books"},
	)

	filled := filler.Fill(params)

	assert.Equal(t, "real@user.net", filled.Value("email"))
	assert.Equal(t, "books", filled.Value("q"))
}

func TestSmartFiller_GuessesFromName(t *testing.T) {
	filler := adapter.NewSmartFiller()

	tests := []struct {
		name string
		want string
	}{
		{"email", "fuzz@example.com"},
		{"user_email", "fuzz@example.com"},
		{"password", "Str0ng.Pass"},
		{"username", "john1234"},
		{"telephone", "5551234567"},
		{"zipcode", "90210"},
		{"birth_date", "01/01/2024"},
		{"callback_url", "https://example.com/"},
		{"product_id", "1"},
		{"something", "56"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filled := filler.Fill(m.ParamsOf(m.Pair{Name: tt.name, Value: ""}))
			assert.Equal(t, tt.want, filled.Value(tt.name))
		})
	}
}

func TestSmartFiller_DoesNotModifyInput(t *testing.T) {
	filler := adapter.NewSmartFiller()

	params := m.ParamsOf(m.Pair{Name: "email", Value: ""})
	filled := filler.Fill(params)

	assert.Equal(t, "", params.Value("email"))
	assert.NotEqual(t, "", filled.Value("email"))

	// Deterministic: repeated fills agree.
	assert.True(t, filled.Equal(filler.Fill(params)))
}

func TestSmartFiller_PreservesOrder(t *testing.T) {
	filler := adapter.NewSmartFiller()

	params := m.ParamsOf(
		m.Pair{Name: "z", Value: ""},
		m.Pair{Name: "a", Value: "1"},
	)

	assert.Equal(t, []string{"z", "a"}, filler.Fill(params).Keys())
}
