package templates

import (
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Store is the in-memory view of a template directory. Every mutation is
// persisted through the Backend before the in-memory collection changes.
//
// A Store is not safe for concurrent use.
type Store struct {
	backend Backend
	logger  zerolog.Logger

	templates map[string]Template
	order     []string
}

// NewStore creates a Store backed by a FileStorage rooted at dir.
// Call Initialize before using it.
func NewStore(dir string, logger zerolog.Logger) *Store {
	return NewStoreWithBackend(NewFileStorage(dir), logger)
}

// NewStoreWithBackend creates a Store over an arbitrary Backend.
func NewStoreWithBackend(backend Backend, logger zerolog.Logger) *Store {
	return &Store{
		backend:   backend,
		logger:    logger,
		templates: make(map[string]Template),
	}
}

// Open creates and initializes a Store rooted at dir.
func Open(dir string, logger zerolog.Logger) (*Store, error) {
	store := NewStore(dir, logger)
	if err := store.Initialize(); err != nil {
		return nil, err
	}
	return store, nil
}

// Initialize loads every template from the backing directory. If the
// directory does not exist it is created and seeded with Defaults first.
// Any previously loaded state is replaced only when loading succeeds.
func (s *Store) Initialize() error {
	exists, err := s.backend.Exists()
	if err != nil {
		return err
	}
	if !exists {
		if err := s.seed(); err != nil {
			return err
		}
	}

	loaded, err := s.backend.Load()
	if err != nil {
		return err
	}

	templates := make(map[string]Template, len(loaded))
	order := make([]string, 0, len(loaded))
	for _, tmpl := range loaded {
		templates[tmpl.Name] = tmpl
		order = append(order, tmpl.Name)
	}
	s.templates = templates
	s.order = order

	s.logger.Debug().Int("count", len(order)).Msg("templates loaded")
	return nil
}

// seed creates the backing directory and writes the default templates. If
// any write fails the directory is discarded, so the next Initialize seeds
// again instead of loading a partial set.
func (s *Store) seed() error {
	defaults, err := Defaults()
	if err != nil {
		return &StorageError{Op: "seed", Err: err}
	}
	if err := s.backend.Create(); err != nil {
		return err
	}
	for _, tmpl := range defaults {
		if err := s.backend.Write(tmpl); err != nil {
			if discardErr := s.backend.Discard(); discardErr != nil {
				s.logger.Error().Err(discardErr).Msg("partial seed left behind")
			}
			return err
		}
	}

	s.logger.Info().Int("count", len(defaults)).Msg("seeded default templates")
	return nil
}

// Names returns every template name in insertion order: loaded templates
// first (sorted by name), then templates added since, in the order added.
func (s *Store) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Len returns the number of templates.
func (s *Store) Len() int {
	return len(s.order)
}

// Get returns a copy of the named template.
func (s *Store) Get(name string) (Template, error) {
	tmpl, ok := s.templates[name]
	if !ok {
		return Template{}, &NotFoundError{Name: name}
	}
	return tmpl, nil
}

// Has reports whether a template with the given name exists.
func (s *Store) Has(name string) bool {
	_, ok := s.templates[name]
	return ok
}

// Add creates a new template and persists it. It returns the name on
// success.
func (s *Store) Add(name, subject, body string) (string, error) {
	if !ValidName(name) {
		return "", &InvalidNameError{Name: name}
	}
	if s.Has(name) {
		return "", &DuplicateError{Name: name}
	}

	tmpl := Template{Name: name, Subject: subject, Body: body}
	if err := checkText(tmpl); err != nil {
		return "", err
	}
	if err := s.backend.Write(tmpl); err != nil {
		return "", err
	}

	s.templates[name] = tmpl
	s.order = append(s.order, name)

	s.logger.Info().Str("template", name).Msg("template added")
	return name, nil
}

// Update replaces the parts of an existing template that the patch sets.
// An empty patch rewrites the record unchanged. It returns the name on
// success.
func (s *Store) Update(name string, patch Patch) (string, error) {
	current, ok := s.templates[name]
	if !ok {
		return "", &NotFoundError{Name: name}
	}

	updated := current
	if patch.Subject != nil {
		updated.Subject = *patch.Subject
	}
	if patch.Body != nil {
		updated.Body = *patch.Body
	}
	if err := checkText(updated); err != nil {
		return "", err
	}

	if err := s.backend.Write(updated); err != nil {
		return "", err
	}
	s.templates[name] = updated

	s.logger.Info().
		Str("template", name).
		Bool("subject", patch.Subject != nil).
		Bool("body", patch.Body != nil).
		Msg("template updated")
	return name, nil
}

// Delete removes a template and its record. It returns the name on success.
func (s *Store) Delete(name string) (string, error) {
	if !s.Has(name) {
		return "", &NotFoundError{Name: name}
	}

	if err := s.backend.Remove(name); err != nil {
		return "", err
	}

	delete(s.templates, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	s.logger.Info().Str("template", name).Msg("template deleted")
	return name, nil
}

// checkText rejects text that would not survive the record encoding byte for
// byte.
func checkText(t Template) error {
	if !utf8.ValidString(t.Subject) {
		return &InvalidTextError{Name: t.Name, Part: "subject"}
	}
	if !utf8.ValidString(t.Body) {
		return &InvalidTextError{Name: t.Name, Part: "body"}
	}
	return nil
}
