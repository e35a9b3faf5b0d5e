package templates

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// namePattern is the accepted shape of a template name.
var namePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Template is a named subject and body pair. Both parts may contain
// placeholders; see package render for the syntax.
type Template struct {
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Patch carries a partial update. A nil field keeps its current value.
type Patch struct {
	Subject *string
	Body    *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Subject == nil && p.Body == nil
}

// ValidName reports whether name is an acceptable template name: lowercase
// letters, digits and underscores, not starting with a digit.
func ValidName(name string) bool {
	return namePattern.MatchString(name)
}

// record is the on-disk shape of a template. The name is carried by the file
// name, not the record.
type record struct {
	Subject *string `json:"subject"`
	Body    *string `json:"body"`
}

// errMalformedRecord reports a record that is not exactly {subject, body}.
var errMalformedRecord = errors.New("record must be an object with string fields \"subject\" and \"body\"")

// encodeRecord serializes the subject and body of t. HTML escaping is off so
// that hand-inspected files show "<", ">" and "&" as written.
func encodeRecord(t Template) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(record{Subject: &t.Subject, Body: &t.Body}); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return buf.Bytes(), nil
}

// decodeRecord parses a record file. Unknown keys, missing keys and
// non-string values are all rejected.
func decodeRecord(name string, data []byte) (Template, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var rec record
	if err := dec.Decode(&rec); err != nil {
		return Template{}, fmt.Errorf("%w: %w", errMalformedRecord, err)
	}
	if dec.More() {
		return Template{}, fmt.Errorf("%w: trailing data", errMalformedRecord)
	}
	if rec.Subject == nil || rec.Body == nil {
		return Template{}, errMalformedRecord
	}

	return Template{Name: name, Subject: *rec.Subject, Body: *rec.Body}, nil
}
