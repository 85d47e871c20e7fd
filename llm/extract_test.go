package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
}

func TestDecodeLooseStrict(t *testing.T) {
	var p payload
	err := DecodeLoose(`{"name":"acme","score":42}`, &p)
	require.NoError(t, err)
	assert.Equal(t, "acme", p.Name)
	assert.Equal(t, 42, p.Score)
}

func TestDecodeLooseMarkdownFence(t *testing.T) {
	raw := "```json\n{\"name\":\"acme\",\"score\":7}\n```"
	var p payload
	require.NoError(t, DecodeLoose(raw, &p))
	assert.Equal(t, "acme", p.Name)
	assert.Equal(t, 7, p.Score)
}

func TestDecodeLooseProseWrapped(t *testing.T) {
	raw := "Sure! Here is the analysis you asked for:\n" +
		`{"name":"acme","score":3}` +
		"\nLet me know if you need anything else."
	var p payload
	require.NoError(t, DecodeLoose(raw, &p))
	assert.Equal(t, "acme", p.Name)
}

func TestDecodeLooseNestedObjects(t *testing.T) {
	raw := `noise {"name":"outer","score":1,"extra":{"inner":"{not json}"}} trailing`
	var p payload
	require.NoError(t, DecodeLoose(raw, &p))
	assert.Equal(t, "outer", p.Name)
}

func TestDecodeLooseBracesInsideStrings(t *testing.T) {
	raw := `reply: {"name":"curly {brace} co","score":9}`
	var p payload
	require.NoError(t, DecodeLoose(raw, &p))
	assert.Equal(t, "curly {brace} co", p.Name)
	assert.Equal(t, 9, p.Score)
}

func TestDecodeLooseNoObject(t *testing.T) {
	var p payload
	assert.ErrorIs(t, DecodeLoose("there is no json here", &p), ErrNoJSON)
	assert.ErrorIs(t, DecodeLoose("", &p), ErrNoJSON)
	assert.ErrorIs(t, DecodeLoose("unbalanced { opening", &p), ErrNoJSON)
}
