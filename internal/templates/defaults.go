package templates

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// defaultNames lists the seeded templates in seeding order.
var defaultNames = []string{
	"booking_confirmation",
	"inquiry_response",
	"special_request",
	"checkout_reminder",
	"feedback_request",
}

// defaultDoc is the YAML shape of an embedded default template.
type defaultDoc struct {
	Subject string `yaml:"subject"`
	Body    string `yaml:"body"`
}

// Defaults returns the built-in templates written when a store directory is
// created for the first time.
func Defaults() ([]Template, error) {
	defaults := make([]Template, 0, len(defaultNames))
	for _, name := range defaultNames {
		tmpl, err := loadDefault(name)
		if err != nil {
			return nil, err
		}
		defaults = append(defaults, tmpl)
	}
	return defaults, nil
}

// loadDefault parses one embedded default template.
func loadDefault(name string) (Template, error) {
	path := "defaults/" + name + ".yaml"
	data, err := defaultsFS.ReadFile(path)
	if err != nil {
		return Template{}, fmt.Errorf("reading default template %s: %w", path, err)
	}

	var doc defaultDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Template{}, fmt.Errorf("parsing default template %s: %w", path, err)
	}
	if strings.TrimSpace(doc.Subject) == "" || strings.TrimSpace(doc.Body) == "" {
		return Template{}, fmt.Errorf("default template %s: subject and body are required", path)
	}

	return Template{Name: name, Subject: doc.Subject, Body: doc.Body}, nil
}
