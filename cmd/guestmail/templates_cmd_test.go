package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorewood/guestmail/internal/output"
)

func TestListCommand(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantContains []string
	}{
		{
			name:         "table",
			args:         []string{"list"},
			wantContains: []string{"NAME", "FIELDS", "booking_confirmation", "feedback_request", "Booking Confirmation - $hotel_name"},
		},
		{
			name:         "alias",
			args:         []string{"ls"},
			wantContains: []string{"checkout_reminder"},
		},
		{
			name:         "json",
			args:         []string{"list", "--json"},
			wantContains: []string{`"count": 5`, `"fields"`, `"guest_name"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeRoot(t, "", tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v\noutput: %s", err, out)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\noutput: %s", want, out)
				}
			}
		})
	}
}

func TestShowCommand(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantErr      bool
		wantCode     int
		wantContains []string
	}{
		{
			name:         "found",
			args:         []string{"show", "special_request"},
			wantContains: []string{"Your Special Request - $hotel_name", "Required Fields", "special_request", "custom_response"},
		},
		{
			name:         "not found",
			args:         []string{"show", "ghost"},
			wantErr:      true,
			wantCode:     output.ExitUserError,
			wantContains: []string{"template not found: ghost"},
		},
		{
			name:         "json",
			args:         []string{"show", "inquiry_response", "--json"},
			wantContains: []string{`"subject"`, `"body"`, `"inquiry_subject"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeRoot(t, "", tt.args...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v\noutput: %s", err, tt.wantErr, out)
			}
			if tt.wantErr && output.GetExitCode(err) != tt.wantCode {
				t.Errorf("exit code = %d, want %d", output.GetExitCode(err), tt.wantCode)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\noutput: %s", want, out)
				}
			}
		})
	}
}

func TestFieldsCommand(t *testing.T) {
	out, _, err := executeRoot(t, "", "fields", "booking_confirmation")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := "check_in_date\ncheck_out_date\nguest_name\nhotel_contact\nhotel_name\nnum_guests\nreservation_number\nroom_type\nstaff_name\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestAddCommand(t *testing.T) {
	out, dir, err := executeRoot(t, "", "add", "greeting",
		"--subject", "Hi $guest_name", "--body", "Welcome to $hotel_name", "--json")
	if err != nil {
		t.Fatalf("Execute() error = %v\noutput: %s", err, out)
	}

	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if result["name"] != "greeting" || result["status"] != "created" {
		t.Errorf("result = %v", result)
	}

	data, err := os.ReadFile(filepath.Join(dir, "greeting.json"))
	if err != nil {
		t.Fatalf("record not written: %v", err)
	}
	if !strings.Contains(string(data), `"body": "Welcome to $hotel_name"`) {
		t.Errorf("record = %s", data)
	}
}

func TestAddCommand_BodyFromPrompt(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")
	stdin := "Dear $guest_name,\n\nSee you soon.\n.\nignored\n"

	out, err := executeRootIn(t, dir, stdin, "add", "note", "--subject", "Note", "--prompt")
	if err != nil {
		t.Fatalf("Execute() error = %v\noutput: %s", err, out)
	}

	out, err = executeRootIn(t, dir, "", "show", "note", "--json")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	var result showResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if result.Body != "Dear $guest_name,\n\nSee you soon." {
		t.Errorf("Body = %q", result.Body)
	}
}

func TestAddCommand_BodyFromStdinFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")
	body := "Line one\nLine two\n"

	if out, err := executeRootIn(t, dir, body, "add", "piped", "--subject", "S", "--body-file", "-"); err != nil {
		t.Fatalf("Execute() error = %v\noutput: %s", err, out)
	}

	out, err := executeRootIn(t, dir, "", "show", "piped", "--json")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	var result showResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if result.Body != body {
		t.Errorf("Body = %q, want %q", result.Body, body)
	}
}

func TestAddCommand_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "duplicate",
			args:     []string{"add", "booking_confirmation", "--subject", "s", "--body", "b"},
			wantCode: output.ExitConflict,
			wantMsg:  "already exists",
		},
		{
			name:     "invalid name",
			args:     []string{"add", "Bad-Name", "--subject", "s", "--body", "b"},
			wantCode: output.ExitUserError,
			wantMsg:  "invalid template name",
		},
		{
			name:     "missing subject",
			args:     []string{"add", "fresh", "--body", "b"},
			wantCode: output.ExitUserError,
			wantMsg:  "--subject",
		},
		{
			name:     "no body without terminal",
			args:     []string{"add", "fresh", "--subject", "s"},
			wantCode: output.ExitUserError,
			wantMsg:  "specify --body or --body-file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeRoot(t, "", tt.args...)
			if err == nil {
				t.Fatalf("expected error\noutput: %s", out)
			}
			if code := output.GetExitCode(err); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(out, tt.wantMsg) {
				t.Errorf("output missing %q\noutput: %s", tt.wantMsg, out)
			}
		})
	}
}

func TestUpdateCommand_Partial(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")

	if out, err := executeRootIn(t, dir, "", "add", "greeting", "--subject", "Hi $guest_name", "--body", "Welcome to $hotel_name"); err != nil {
		t.Fatalf("add error = %v\n%s", err, out)
	}
	if out, err := executeRootIn(t, dir, "", "update", "greeting", "--subject", "Hello $guest_name"); err != nil {
		t.Fatalf("update error = %v\n%s", err, out)
	}

	out, err := executeRootIn(t, dir, "", "show", "greeting", "--json")
	if err != nil {
		t.Fatalf("show error = %v", err)
	}
	var result showResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if result.Subject != "Hello $guest_name" {
		t.Errorf("Subject = %q", result.Subject)
	}
	if result.Body != "Welcome to $hotel_name" {
		t.Errorf("Body = %q", result.Body)
	}
}

func TestUpdateCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "nothing to update", args: []string{"update", "special_request"}, wantMsg: "nothing to update"},
		{name: "not found", args: []string{"update", "ghost", "--subject", "x"}, wantMsg: "template not found"},
		{name: "both body flags", args: []string{"update", "special_request", "--body", "x", "--body-file", "y"}, wantMsg: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeRoot(t, "", tt.args...)
			if err == nil {
				t.Fatalf("expected error\noutput: %s", out)
			}
			if !strings.Contains(out+err.Error(), tt.wantMsg) {
				t.Errorf("error output missing %q\noutput: %s\nerr: %v", tt.wantMsg, out, err)
			}
		})
	}
}

func TestDeleteCommand(t *testing.T) {
	tests := []struct {
		name       string
		stdin      string
		args       []string
		wantGone   bool
		wantOutput string
	}{
		{name: "confirmed", stdin: "y\n", args: []string{"delete", "feedback_request", "--prompt"}, wantGone: true, wantOutput: "deleted"},
		{name: "declined", stdin: "n\n", args: []string{"delete", "feedback_request", "--prompt"}, wantGone: false, wantOutput: "Cancelled"},
		{name: "no answer", stdin: "", args: []string{"delete", "feedback_request", "--prompt"}, wantGone: false, wantOutput: "Cancelled"},
		{name: "forced", args: []string{"delete", "feedback_request", "--force"}, wantGone: true, wantOutput: "deleted"},
		{name: "json skips prompt", args: []string{"rm", "feedback_request", "--json"}, wantGone: true, wantOutput: `"status": "deleted"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, dir, err := executeRoot(t, tt.stdin, tt.args...)
			if err != nil {
				t.Fatalf("Execute() error = %v\noutput: %s", err, out)
			}
			if !strings.Contains(out, tt.wantOutput) {
				t.Errorf("output missing %q\noutput: %s", tt.wantOutput, out)
			}

			_, statErr := os.Stat(filepath.Join(dir, "feedback_request.json"))
			if gone := os.IsNotExist(statErr); gone != tt.wantGone {
				t.Errorf("record gone = %v, want %v", gone, tt.wantGone)
			}
		})
	}
}

func TestDeleteCommand_NonInteractiveNeedsForce(t *testing.T) {
	out, dir, err := executeRoot(t, "y\n", "delete", "feedback_request")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Fatalf("error = %v, want user error\noutput: %s", err, out)
	}
	if !strings.Contains(out, "--force") {
		t.Errorf("output should point at --force\noutput: %s", out)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "feedback_request.json")); statErr != nil {
		t.Errorf("record should be kept: %v", statErr)
	}
}

func TestDeleteCommand_NotFound(t *testing.T) {
	_, _, err := executeRoot(t, "", "delete", "ghost", "--force")
	if output.GetExitCode(err) != output.ExitUserError {
		t.Errorf("error = %v, want user error", err)
	}
}

func TestStorageError_ExitCode(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := executeRootIn(t, dir, "", "list")
	if code := output.GetExitCode(err); code != output.ExitSystemError {
		t.Errorf("exit code = %d, want %d (err %v)", code, output.ExitSystemError, err)
	}
}
