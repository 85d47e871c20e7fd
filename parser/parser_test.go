package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleHTML = `<!DOCTYPE html>
<html>
<head><title>Acme Fitness raises funding</title></head>
<body>
<article>
<h1>Acme Fitness raises funding</h1>
<p>Acme Fitness, a workout planning app for busy professionals, announced a
new funding round today. The company says it now serves over 50,000 monthly
users across Europe and North America.</p>
<p>The investment will fund expansion of its AI coaching features and a push
into corporate wellness programs.</p>
</article>
</body>
</html>`

func TestExtractText(t *testing.T) {
	text := ExtractText(sampleHTML)
	assert.Contains(t, text, "workout planning app")
	assert.Contains(t, text, "corporate wellness")
}

func TestExtractTextEmptyInput(t *testing.T) {
	assert.Equal(t, "", ExtractText(""))
}
