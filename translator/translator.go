package translator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	gst "github.com/richinsley/goshadertranslator"
)

var (
	translator     *gst.ShaderTranslator
	translatorErr  error
	translatorOnce sync.Once
)

// GetTranslator returns the process-wide translator, creating it on first use.
func GetTranslator() (*gst.ShaderTranslator, error) {
	translatorOnce.Do(func() {
		translator, translatorErr = gst.NewShaderTranslator(context.Background())
	})
	return translator, translatorErr
}

// IsESSL reports whether source declares itself as GLSL ES 3.00.
func IsESSL(source string) bool {
	return strings.HasPrefix(strings.TrimSpace(source), "#version 300 es")
}

// Result is a stage translated to desktop GLSL.
type Result struct {
	Code string
	// Names maps each variable's source name to the name the translator emitted.
	Names map[string]string
}

// Translate converts a WebGL2 (ESSL 3.00) stage to GLSL 4.10 core.
// shaderType is "vertex" or "fragment".
func Translate(source, shaderType string) (*Result, error) {
	t, err := GetTranslator()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader translator: %w", err)
	}
	out, err := t.TranslateShader(source, shaderType, gst.ShaderSpecWebGL2, gst.OutputFormatGLSL410)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Code:  out.Code,
		Names: make(map[string]string, len(out.Variables)),
	}
	for name, v := range out.Variables {
		res.Names[name] = v.MappedName
	}
	return res, nil
}
