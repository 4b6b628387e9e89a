package printer

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// OutputType defines the output format
type OutputType string

const (
	// OutputTypeTable outputs in table format (default)
	OutputTypeTable OutputType = "table"
	// OutputTypeJSON outputs in JSON format
	OutputTypeJSON OutputType = "json"
	// OutputTypeYAML outputs in YAML format
	OutputTypeYAML OutputType = "yaml"
)

var (
	dryRunStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	applyStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// ModeBanner renders the run-mode header. Apply mode is highlighted since it
// performs irreversible deletions.
func ModeBanner(apply bool) string {
	if apply {
		return applyStyle.Render("== APPLY ==")
	}
	return dryRunStyle.Render("== DRY-RUN ==")
}

// Successf prints a ✓ line to the given writer.
func Successf(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(out, "%s %s\n", successStyle.Render("✓"), fmt.Sprintf(format, args...))
}

// Failuref prints a ✗ line to the given writer.
func Failuref(out io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(out, "%s %s\n", failureStyle.Render("✗"), fmt.Sprintf(format, args...))
}

// PrintJSON writes data as indented JSON.
func PrintJSON(out io.Writer, data any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML writes data as YAML.
func PrintYAML(out io.Writer, data any) error {
	encoder := yaml.NewEncoder(out)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(data)
}
