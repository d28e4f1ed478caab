package render

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/gi8lino/jirafind/internal/jira"

	"github.com/Masterminds/sprig/v3"
)

// issuesTemplate lists one block per issue below a header with the total
// count and a description of the filter that produced the result.
const issuesTemplate = `Found {{ .Total }} issue{{ if ne .Total 1 }}s{{ end }} {{ .Description }}
{{- range .Issues }}

{{ .Key }}  {{ .Fields.Summary }}
  Status: {{ .Fields.StatusName }} | Priority: {{ .Fields.PriorityName }} | Updated: {{ formatDate .Fields.Updated "2006-01-02 15:04" }}
  {{ $.BaseURL }}/browse/{{ .Key }}
{{- end }}
`

var issuesTmpl = template.Must(
	template.New("issues").
		Funcs(templateFuncMap()).
		Parse(issuesTemplate),
)

// page is the template context for one rendered search result.
type page struct {
	Total       int
	Description string
	BaseURL     string
	Issues      []jira.Issue
}

// Issues renders a search result as plain text to w.
func Issues(w io.Writer, result *jira.SearchResult, description, baseURL string) error {
	data := page{
		Total:       result.Total,
		Description: description,
		BaseURL:     strings.TrimRight(baseURL, "/"),
		Issues:      result.Issues,
	}
	if err := issuesTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render issues: %w", err)
	}
	return nil
}

// templateFuncMap returns all helper functions for templates.
func templateFuncMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["formatDate"] = formatDate
	return fm
}
