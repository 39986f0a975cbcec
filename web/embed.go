package web

import (
	"embed"
	"fmt"
	"html/template"
	"time"
)

// TemplateFS 嵌入的页面模板
//
//go:embed templates/*.html
var TemplateFS embed.FS

// Templates 解析全部页面模板，模板名为文件名
func Templates() (*template.Template, error) {
	return template.New("").Funcs(FuncMap()).ParseFS(TemplateFS, "templates/*.html")
}

// FuncMap 模板辅助函数
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"money": func(v float64) string {
			return fmt.Sprintf("%.2f", v)
		},
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		},
		"negative": func(v float64) bool {
			return v < 0
		},
	}
}
