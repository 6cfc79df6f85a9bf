package export

import (
	htmltemplate "html/template"
	"io"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

const htmlReport = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{ .Tool | title }} - Statistics</title>
<style>
body { font-family: 'Consolas', monospace; background: #0a0a0a; color: #00ff00; margin: 40px; }
.container { max-width: 800px; margin: 0 auto; border: 1px solid #333; padding: 20px; background: #111; }
h1 { color: #00ff00; border-bottom: 2px solid #333; padding-bottom: 10px; }
.stat { margin: 15px 0; padding: 10px; background: #1a1a1a; border-left: 3px solid #00aa00; }
.highlight { color: #00ffff; font-weight: bold; }
.preview { background: #000; padding: 15px; border: 1px solid #333; margin: 20px 0; white-space: pre-wrap; font-size: 12px; }
</style>
</head>
<body>
<div class="container">
<h1>{{ .Tool | title }} - Analysis Report</h1>
<p>Generated: {{ .Date }}</p>
{{- with .Source }}
<p>Source: {{ . }}</p>
{{- end }}
<h2>Key Statistics</h2>
{{- range .Entries }}
<div class="stat">
<strong>{{ .Key }}:</strong>
{{- if .IsGroup }}
<ul>
{{- range .Items }}
<li>{{ .Key }}: <span class="highlight">{{ .Value }}</span></li>
{{- end }}
</ul>
{{- else }}
<span class="highlight">{{ .Value }}</span>
{{- end }}
</div>
{{- end }}
<h2>Text Preview</h2>
<div class="preview">{{ .Preview }}</div>
<p><em>Report generated by {{ .Tool }} v{{ .Version }}</em></p>
</div>
</body>
</html>
`

const markdownReport = `# {{ .Tool | title }} - Analysis Report

*Generated: {{ .Date }}*
{{- with .Source }}

*Source: {{ . }}*
{{- end }}

## Key Statistics

{{ range .Entries }}{{ if .IsGroup }}
### {{ .Key }}

{{ range .Items }}- **{{ .Key }}**: ` + "`{{ .Value }}`" + `
{{ end }}{{ else }}- **{{ .Key }}**: ` + "`{{ .Value }}`" + `
{{ end }}{{ end }}
## Text Preview

{{ .Fence }}
{{ .Preview }}
{{ .Fence }}

*--- Report generated by {{ .Tool }} v{{ .Version }} ---*
`

var (
	htmlTmpl     = htmltemplate.Must(htmltemplate.New("html").Funcs(sprig.FuncMap()).Parse(htmlReport))
	markdownTmpl = template.Must(template.New("md").Funcs(sprig.TxtFuncMap()).Parse(markdownReport))
)

type reportData struct {
	Tool    string
	Version string
	Date    string
	Source  string
	Entries []entry
	Preview string
	Fence   string
}

func newReportData(doc Document) reportData {
	preview := Preview(doc.Text, reportPreview)
	return reportData{
		Tool:    toolName,
		Version: toolVersion,
		Date:    doc.GeneratedAt.Format("2006-01-02 15:04:05"),
		Source:  doc.Source,
		Entries: entries(doc.Stats),
		Preview: preview,
		Fence:   codeFence(preview),
	}
}

// codeFence returns a backtick fence longer than any backtick run in text.
func codeFence(text string) string {
	longest, run := 0, 0
	for _, r := range text {
		if r != '`' {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	if longest < 3 {
		return "```"
	}
	return strings.Repeat("`", longest+1)
}

func writeHTML(w io.Writer, doc Document) error {
	return htmlTmpl.Execute(w, newReportData(doc))
}

func writeMarkdown(w io.Writer, doc Document) error {
	return markdownTmpl.Execute(w, newReportData(doc))
}
