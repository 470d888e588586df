package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/raysh454/reportview/internal/report"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// PageTitle is the heading of the report page.
const PageTitle = "API Response Data"

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/*.tmpl"))

type page struct {
	Title        string
	ActivationID string
	ReportID     string
	Loading      bool
	Columns      []report.Column
	Rows         [][]string
	EmptyState   string
	IsError      bool
	GridTemplate template.CSS
}

// Render writes st as a complete HTML page.
func Render(w io.Writer, st State) error {
	p := page{
		Title:        PageTitle,
		ActivationID: st.ActivationID,
		ReportID:     st.ReportID,
		Loading:      st.Loading,
		Columns:      st.Columns,
		Rows:         st.Cells(),
		EmptyState:   st.EmptyState(),
		IsError:      st.Error != "" && len(st.Rows) == 0,
		GridTemplate: gridTemplate(st.Columns),
	}
	if err := pageTemplate.ExecuteTemplate(w, "report", p); err != nil {
		return fmt.Errorf("render report page: %w", err)
	}
	return nil
}

func gridTemplate(cols []report.Column) template.CSS {
	if len(cols) == 0 {
		return "1fr"
	}
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = fmt.Sprintf("minmax(%dpx, auto)", c.Width)
	}
	return template.CSS(strings.Join(parts, " "))
}
