// Package renderer turns report structs into markdown, ready to be printed
// raw or through a terminal markdown renderer.
package renderer

import (
	"embed"
	"fmt"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

// renderTemplate is a generic utility to render one of the embedded templates.
func renderTemplate(templateName, mainFile string, data any) string {
	mainContent, err := templates.ReadFile("templates/" + mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// DetailMarkdown renders the Detail struct to a markdown string.
func DetailMarkdown(d *Detail) string {
	return renderTemplate("detail", "detail.md", d)
}

// StrategiesMarkdown renders the per-portfolio strategy list to a markdown string.
func StrategiesMarkdown(s *Strategies) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Strategies of %s\n\n", s.Portfolio)
	if len(s.Entries) == 0 {
		fmt.Fprintln(&b, "No strategy defined.")
		return b.String()
	}
	fmt.Fprintln(&b, "| Name | Allocation | Amount | Commission |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	for _, e := range s.Entries {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", e.Name, e.Allocation, e.Amount, e.Commission)
	}
	return b.String()
}
