package render

import (
	"sort"
	"strings"

	"github.com/gorewood/guestmail/internal/templates"
)

// RecipientField is the value that becomes the To address of a rendered
// email.
const RecipientField = "guest_email"

// Email is a fully rendered message.
type Email struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MissingFieldError lists the fields a render call lacked values for.
type MissingFieldError struct {
	Template string
	Fields   []string
}

func (e *MissingFieldError) Error() string {
	msg := "missing required guest details: " + strings.Join(e.Fields, ", ")
	if e.Template == "" {
		return msg
	}
	return msg + " (template " + e.Template + ")"
}

// RequiredFields returns every field referenced by the subject or body of t,
// sorted and without duplicates.
func RequiredFields(t templates.Template) []string {
	seen := make(map[string]bool)
	var fields []string
	for _, text := range []string{t.Subject, t.Body} {
		for _, name := range Placeholders(text) {
			if !seen[name] {
				seen[name] = true
				fields = append(fields, name)
			}
		}
	}
	sort.Strings(fields)
	return fields
}

// MissingFields returns the required fields of t that values does not
// supply, sorted.
func MissingFields(t templates.Template, values map[string]string) []string {
	var missing []string
	for _, field := range RequiredFields(t) {
		if _, ok := values[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}

// Render substitutes values into t. Every required field must be present in
// values, otherwise a *MissingFieldError naming all of them is returned and
// nothing is rendered. Extra values are ignored. The To address is
// values[RecipientField], or empty.
func Render(t templates.Template, values map[string]string) (Email, error) {
	if missing := MissingFields(t, values); len(missing) > 0 {
		return Email{}, &MissingFieldError{Template: t.Name, Fields: missing}
	}

	return Email{
		To:      values[RecipientField],
		Subject: substitute(t.Subject, values),
		Body:    substitute(t.Body, values),
	}, nil
}

// substitute expands every placeholder in text. Callers guarantee that
// values holds every referenced field.
func substitute(text string, values map[string]string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, tok := range scan(text) {
		if tok.field {
			b.WriteString(values[tok.text])
			continue
		}
		b.WriteString(tok.text)
	}
	return b.String()
}
