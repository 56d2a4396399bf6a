// Package document renders the approved contract record into the three
// fixed-format legal documents: the employment contract (Perjanjian Kerja),
// the task-commencement statement (SPMT) and the verification sheet. Every
// renderer is a pure function over an already-loaded record snapshot; the
// surrounding legal prose is invariant and only the named substitution slots
// vary. Identical inputs produce byte-identical output.
package document

import (
	"strings"
	"text/template"
)

// Placeholder runs emitted for unset fields, sized to the printed blanks.
const (
	blankNumber    = "............"
	blankSPMT      = "........................."
	blankSK        = "....................................."
	blankPlacement = "............................................."
	blankVerifier  = ".................................."
)

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

func render(tmpl *template.Template, data interface{}) string {
	var b strings.Builder
	// Templates are fixed and data is a plain struct; execution cannot fail.
	_ = tmpl.Execute(&b, data)
	return b.String()
}

func orBlank(s, blank string) string {
	if s == "" {
		return blank
	}
	return s
}
