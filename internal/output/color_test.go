package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		mode  string
		isTTY bool
		want  bool
	}{
		{"never", true, false},
		{"never", false, false},
		{"always", true, true},
		{"always", false, true},
		{"auto", true, true},
		{"auto", false, false},
		{"", true, true},
		{"bogus", false, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveColorMode(tt.mode, tt.isTTY), "mode=%q tty=%v", tt.mode, tt.isTTY)
	}
}

func TestIsTTY_NonFileWriters(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, IsTTY(&buf))
	assert.False(t, IsInteractive(strings.NewReader("yes\n")))
}

func TestNewPrinter_StylesFollowColor(t *testing.T) {
	var buf bytes.Buffer
	none := lipgloss.NewStyle().GetForeground()

	plain := NewPrinter(&buf, false, ResolveColorMode("never", true))
	assert.False(t, plain.IsTTY())
	assert.Equal(t, none, plain.styles.Error.GetForeground())

	colored := NewPrinter(&buf, false, ResolveColorMode("always", false))
	assert.True(t, colored.IsTTY())
	assert.NotEqual(t, none, colored.styles.Error.GetForeground())

	jsonMode := NewPrinter(&buf, true, true)
	assert.Equal(t, none, jsonMode.styles.Error.GetForeground())
}

func TestPrinter_NeverWritesNoANSI(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf, false, ResolveColorMode("never", true))

	printer.Error(NewUserError("template not found: welcome"))
	printer.Section("Required Fields")

	assert.NotContains(t, buf.String(), "\x1b[")
}
