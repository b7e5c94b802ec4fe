package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name string `json:"name"`
	N    int    `json:"n"`
}

func TestExtractJSON_PlainObject(t *testing.T) {
	got, err := ExtractJSON[sample](`{"name":"a","n":2}`, nil)
	require.NoError(t, err)
	assert.Equal(t, sample{Name: "a", N: 2}, got)
}

func TestExtractJSON_SurroundingProseAndFences(t *testing.T) {
	raw := "以下是規劃結果：\n```json\n{\"name\":\"route\",\"n\":1}\n```\n希望有幫助。"
	got, err := ExtractJSON[sample](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "route", got.Name)
}

func TestExtractJSON_NestedBracesAndStrings(t *testing.T) {
	raw := `prefix {"name":"a {b} \"c\"","n":3} suffix {"name":"ignored"}`
	got, err := ExtractJSON[sample](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `a {b} "c"`, got.Name)
	assert.Equal(t, 3, got.N)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[sample]("no json here", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_UnbalancedObject(t *testing.T) {
	_, err := ExtractJSON[sample](`{"name":"a"`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	_, err := ExtractJSON[sample](`{"name":""}`, func(s sample) error {
		if s.Name == "" {
			return assert.AnError
		}
		return nil
	})
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
