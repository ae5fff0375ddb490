package mail

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// AssignmentData fills assignment.html.
type AssignmentData struct {
	AssigneeName string
	AssignedBy   string
	EntityLabel  string
	RecordName   string
	Link         string
}

// ContactData fills contact_admin.html and contact_reply.html.
type ContactData struct {
	Name           string
	Email          string
	Phone          string
	ProductCompany string
	Message        string
}

// Render executes the named template.
func Render(name string, data interface{}) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
