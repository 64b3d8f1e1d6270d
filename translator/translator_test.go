package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsESSL(t *testing.T) {
	assert.True(t, IsESSL("#version 300 es\nvoid main() {}"))
	assert.True(t, IsESSL("\n  #version 300 es\n"))
	assert.False(t, IsESSL("#version 330 core\n"))
	assert.False(t, IsESSL(""))
}

func TestTranslateFragment(t *testing.T) {
	if _, err := GetTranslator(); err != nil {
		t.Skipf("translator unavailable: %v", err)
	}

	src := `#version 300 es
precision mediump float;
uniform vec4 uColor;
out vec4 FragColor;
void main()
{
    FragColor = uColor;
}
`
	res, err := Translate(src, "fragment")
	require.NoError(t, err)
	assert.Contains(t, res.Code, "#version 410")
	require.Contains(t, res.Names, "uColor")
	assert.Contains(t, res.Code, res.Names["uColor"])
}

func TestTranslateRejectsBadSource(t *testing.T) {
	if _, err := GetTranslator(); err != nil {
		t.Skipf("translator unavailable: %v", err)
	}
	_, err := Translate("#version 300 es\nvoid main() { nope }\n", "vertex")
	assert.Error(t, err)
}
