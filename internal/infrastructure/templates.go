package infrastructure

import (
	"bytes"
	"encoding/json"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// GoTemplateEngine implements domain.TemplatePort using text/template
type GoTemplateEngine struct {
	funcs template.FuncMap
}

func NewGoTemplateEngine() *GoTemplateEngine {
	funcMap := sprig.TxtFuncMap()
	funcMap["jsString"] = jsString
	return &GoTemplateEngine{funcs: funcMap}
}

func (t *GoTemplateEngine) Render(name, tmpl string, data any) ([]byte, error) {
	tObj, err := template.New(name).Funcs(t.funcs).Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tObj.Execute(&buf, data); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// jsString quotes s as a JavaScript string literal
func jsString(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(b)
}
