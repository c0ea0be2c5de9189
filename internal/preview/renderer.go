// Package preview projects a ResumeDocument onto a printable A4 HTML page.
// The rendered page is also the only input of PDF export.
package preview

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"resumebuilder/internal/document"
	"resumebuilder/internal/model"
)

// PlaceholderName is shown in the header while the name is empty.
const PlaceholderName = "Your Name"

// ErrEmptyDocument is returned when exporting a document with no name and
// no experience or education.
var ErrEmptyDocument = errors.New("add some content to the resume before exporting")

//go:embed templates/resume.html.tmpl
var templateFS embed.FS

// Renderer is safe for concurrent use.
type Renderer struct {
	tpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tpl, err := template.ParseFS(templateFS, "templates/resume.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse resume template: %w", err)
	}
	return &Renderer{tpl: tpl}, nil
}

type view struct {
	Name         string
	Info         model.PersonalInfo
	Experience   []model.Experience
	Education    []model.Education
	Skills       []string
	Projects     []model.Project
	Certificates []model.Certificate
	Achievements []model.Achievement
	Links        []model.Link
}

// newView works on a normalized copy so the caller's document is never
// touched and every section is present.
func newView(doc model.ResumeDocument) view {
	d := doc.Clone()
	d.Normalize()
	name := d.PersonalInfo.Name
	if name == "" {
		name = PlaceholderName
	}
	return view{
		Name:         name,
		Info:         d.PersonalInfo,
		Experience:   d.Experience,
		Education:    d.Education,
		Skills:       d.Skills,
		Projects:     d.Projects,
		Certificates: d.Certificates,
		Achievements: d.Achievements,
		Links:        d.Links,
	}
}

func (r *Renderer) RenderTo(w io.Writer, doc model.ResumeDocument) error {
	if err := r.tpl.Execute(w, newView(doc)); err != nil {
		return fmt.Errorf("render resume: %w", err)
	}
	return nil
}

func (r *Renderer) Render(doc model.ResumeDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.RenderTo(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CheckExportable returns ErrEmptyDocument when doc has nothing worth
// exporting.
func CheckExportable(doc model.ResumeDocument) error {
	if !document.HasContent(doc) {
		return ErrEmptyDocument
	}
	return nil
}

// ExportFilename names a locally exported PDF after the person.
func ExportFilename(doc model.ResumeDocument) string {
	if doc.PersonalInfo.Name == "" {
		return "resume.pdf"
	}
	return doc.PersonalInfo.Name + ".pdf"
}
