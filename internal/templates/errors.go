package templates

import "fmt"

// NotFoundError is returned when a named template does not exist.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("template not found: %s", e.Name)
}

// DuplicateError is returned when adding a template whose name is taken.
type DuplicateError struct {
	Name string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("template already exists: %s", e.Name)
}

// InvalidNameError is returned when a name does not match the accepted
// pattern (see ValidName).
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid template name %q: use lowercase letters, digits and underscores, not starting with a digit", e.Name)
}

// InvalidTextError is returned when a subject or body is not valid UTF-8.
// Records are JSON, which cannot hold such text unchanged.
type InvalidTextError struct {
	Name string
	Part string
}

func (e *InvalidTextError) Error() string {
	return fmt.Sprintf("template %s: %s is not valid UTF-8 text", e.Name, e.Part)
}

// StorageError wraps a failure to read or write the template directory,
// including records that cannot be parsed.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause.
func (e *StorageError) Unwrap() error {
	return e.Err
}
