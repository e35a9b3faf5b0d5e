package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestPrinter_JSON_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false) // json=true, tty=false

	data := map[string]any{
		"status": "created",
		"name":   "welcome",
	}

	err := printer.Success(data)
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["status"] != "created" {
		t.Errorf("status = %v, want %q", result["status"], "created")
	}
	if result["name"] != "welcome" {
		t.Errorf("name = %v, want %q", result["name"], "welcome")
	}
}

func TestPrinter_JSON_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false) // json=true, tty=false

	exitErr := NewUserError("template not found: welcome")
	printer.Error(exitErr)

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}

	if result["error"] != "template not found: welcome" {
		t.Errorf("error = %v, want %q", result["error"], "template not found: welcome")
	}
	if code, ok := result["code"].(float64); !ok || int(code) != ExitUserError {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
}

func TestPrinter_Human_Success(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false) // json=false, tty=false (no colors)

	data := map[string]any{
		"message": "Template added",
	}

	err := printer.Success(data)
	if err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Template added") {
		t.Errorf("output = %q, want to contain 'Template added'", output)
	}
}

func TestPrinter_Human_SuccessSortedKeys(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	if err := printer.Success(map[string]any{"status": "deleted", "name": "welcome"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if buf.String() != "name: welcome\nstatus: deleted\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrinter_WriteJSON_NoHTMLEscape(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	if err := printer.WriteJSON(map[string]string{"body": "Rooms & <suites>"}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Rooms & <suites>") {
		t.Errorf("output = %q, want raw template text", buf.String())
	}
}

func TestPrinter_Human_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false) // json=false, tty=false

	exitErr := NewUserError("template not found: welcome")
	printer.Error(exitErr)

	output := buf.String()
	if !strings.Contains(output, "Error") {
		t.Errorf("output should contain 'Error': %q", output)
	}
	if !strings.Contains(output, "template not found: welcome") {
		t.Errorf("output should contain error message: %q", output)
	}
}

func TestPrinter_PrintAndPrintln(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Print("Dear %s,", "Ana")
	printer.Println()

	if buf.String() != "Dear Ana,\n" {
		t.Errorf("output = %q, want %q", buf.String(), "Dear Ana,\n")
	}
}

func TestPrinter_ErrorToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	printer := NewPrinter(&out, false, false).WithStderr(&errOut)

	printer.Error(NewUserError("template not found: welcome"))

	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	if errOut.String() != "Error: template not found: welcome\n" {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestPrinter_Table_WideCells(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table([]string{"NAME", "SUBJECT"}, [][]string{
		{"café", "x"},
		{"ab", "y"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[1] != "café  x      " || lines[2] != "ab    y      " {
		t.Errorf("rows = %q", lines[1:])
	}
}

func TestPrinter_IsJSON(t *testing.T) {
	var buf bytes.Buffer

	jsonPrinter := NewPrinter(&buf, true, false)
	if !jsonPrinter.IsJSON() {
		t.Error("IsJSON() should return true for JSON printer")
	}

	humanPrinter := NewPrinter(&buf, false, false)
	if humanPrinter.IsJSON() {
		t.Error("IsJSON() should return false for human printer")
	}
}

func TestPrinter_Warn_Human(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Warn("template %s references no fields", "welcome")

	output := buf.String()
	if !strings.Contains(output, "Warning") {
		t.Errorf("output should contain 'Warning': %q", output)
	}
	if !strings.Contains(output, "references no fields") {
		t.Errorf("output should contain message: %q", output)
	}
}

func TestPrinter_Warn_JSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, true, false)

	printer.Warn("unused value: room_tyep")

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse JSON: %v\nOutput: %s", err, buf.String())
	}
	if result["warning"] != "unused value: room_tyep" {
		t.Errorf("warning = %v, want %q", result["warning"], "unused value: room_tyep")
	}
}

func TestErrorJSON_Format(t *testing.T) {
	// {"error": "...", "code": N}
	result := ErrorJSON("test error", ExitUserError)

	var parsed struct {
		Error string `json:"error"`
		Code  int    `json:"code"`
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("Failed to parse ErrorJSON output: %v", err)
	}

	if parsed.Error != "test error" {
		t.Errorf("error = %q, want %q", parsed.Error, "test error")
	}
	if parsed.Code != ExitUserError {
		t.Errorf("code = %d, want %d", parsed.Code, ExitUserError)
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Table([]string{"NAME", "FIELDS"}, [][]string{
		{"booking_confirmation", "9"},
		{"welcome", "1"},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(lines), buf.String())
	}
	if lines[0] != "NAME                  FIELDS" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[2] != "welcome               1     " {
		t.Errorf("row = %q", lines[2])
	}
}

func TestPrinter_SectionAndKeyValue(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Section("Template")
	printer.KeyValue("Subject", "Hi $guest_name")

	want := "\nTemplate\n────────\nSubject: Hi $guest_name\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrinter_Bullets(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Bullets([]string{"guest_name", "hotel_name"})

	if buf.String() != "  - guest_name\n  - hotel_name\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrinter_Box_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, false)

	printer.Box("Subject", "Body text")

	if buf.String() != "Subject\n\nBody text\n" {
		t.Errorf("output = %q", buf.String())
	}
}
