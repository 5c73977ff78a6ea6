package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/risk-digest/risk-digest/pkg/models/domain"
)

type TableConfig struct {
	TypeWidth  int
	TitleWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		TypeWidth:  8,
		TitleWidth: 60,
	}
}

// Reporter renders digests and archive listings as formatted text.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(digest *domain.Digest) error {
	funcMap := template.FuncMap{
		"formatRow": func(itemType, title string) string {
			return fmt.Sprintf("| %-*s | %-*s |",
				c.config.TypeWidth, itemType,
				c.config.TitleWidth, title)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+",
				strings.Repeat("-", c.config.TypeWidth+2),
				strings.Repeat("-", c.config.TitleWidth+2))
		},
	}

	tmpl := `
{{.Headline}}
Date: {{.Date}}
Items: {{len .Items}}

{{separator}}
{{formatRow "Type" "Title"}}
{{separator}}
{{range .Items}}{{formatRow (printf "%s" .Type) .Title}}
{{end}}{{separator}}

{{range .Items}}
[{{.Type}}] {{.Title}}
  Why: {{.Why}}
  Fix: {{.Fix}}
{{end}}
`
	t, err := template.New("digest").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, digest)
}

// HandleList renders the archive index, newest first.
func (c *Reporter) HandleList(summaries []domain.DigestSummary) error {
	tmpl := `
Archive ({{len .}} digests)
{{range .}}
{{.Date}}  {{.Headline}}{{end}}
`
	t, err := template.New("archive").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, summaries)
}
