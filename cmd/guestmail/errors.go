package main

import (
	"errors"

	"github.com/gorewood/guestmail/internal/output"
	"github.com/gorewood/guestmail/internal/render"
	"github.com/gorewood/guestmail/internal/templates"
)

// toExitError maps template and render errors onto CLI exit codes.
// Errors that already carry an exit code pass through unchanged.
func toExitError(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	code := output.ExitUserError
	var (
		duplicate *templates.DuplicateError
		storage   *templates.StorageError
		notFound  *templates.NotFoundError
		invalid   *templates.InvalidNameError
		badText   *templates.InvalidTextError
		missing   *render.MissingFieldError
	)
	switch {
	case errors.As(err, &duplicate):
		code = output.ExitConflict
	case errors.As(err, &storage):
		code = output.ExitSystemError
	case errors.As(err, &notFound), errors.As(err, &invalid), errors.As(err, &badText), errors.As(err, &missing):
		code = output.ExitUserError
	}

	return output.WithCode(code, err)
}

// fail prints err through printer and returns it with an exit code attached.
func fail(printer *output.Printer, err error) error {
	err = toExitError(err)
	printer.Error(err)
	return err
}
