package report

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/cloud-ru/feasibility-go/internal/model"
	"github.com/cloud-ru/feasibility-go/internal/projection"
)

var renderer = goldmark.New(goldmark.WithExtensions(extension.Table))

const htmlHead = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Feasibility Study Report</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; font-size: 11px; margin-bottom: 1.5em; }
th, td { border: 1px solid #ddd; padding: 4px 6px; text-align: right; white-space: nowrap; }
th:first-child, td:first-child { text-align: left; }
</style>
</head>
<body>
`

// HTML отрисовывает отчёт Markdown в самостоятельную HTML-страницу для печати
func HTML(r *model.ProjectionResult, sens *projection.SensitivityResult) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(htmlHead)
	if err := renderer.Convert([]byte(Markdown(r, sens)), &buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	buf.WriteString("</body>\n</html>\n")
	return buf.Bytes(), nil
}
