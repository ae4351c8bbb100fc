package web

import (
	"embed"
	"fmt"
	"html/template"
	"path/filepath"

	"contract-consult/types"
	"contract-consult/vars"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"riskClass": func(level string) string {
		if level == types.RiskLevelHigh {
			return "risk-high"
		}
		return "risk-normal"
	},
	"inc": func(i int) int { return i + 1 },
}

// LoadTemplates dir 为空时使用内嵌模板，缺少分析页直接报错
func LoadTemplates(dir string) (*template.Template, error) {
	var (
		t   *template.Template
		err error
	)
	base := template.New("").Funcs(funcs)
	if dir == "" {
		t, err = base.ParseFS(templateFS, "templates/*.html")
	} else {
		t, err = base.ParseGlob(filepath.Join(dir, "*.html"))
	}
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if t.Lookup(vars.PAGE_ANALYSIS) == nil {
		return nil, fmt.Errorf("template %s not found", vars.PAGE_ANALYSIS)
	}
	return t, nil
}
