// Package templates owns the durable collection of guest email templates.
//
// A Store maps template names to a subject pattern and a body pattern. Every
// template lives in its own JSON file inside the store directory:
//
//	templates/
//	  booking_confirmation.json
//	  checkout_reminder.json
//	  ...
//
// Each file holds exactly two string fields, "subject" and "body". The Store
// loads the whole directory on Initialize and writes through on every
// mutation, so the directory is always the source of truth between runs.
// When the directory does not exist yet, Initialize creates it and seeds the
// built-in default templates.
//
// A mutation that fails to persist leaves the in-memory collection exactly
// as it was before the call.
package templates
