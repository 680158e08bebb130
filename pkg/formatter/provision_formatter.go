// File: pkg/formatter/provision_formatter.go
package formatter

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"wormbucket/pkg/storage"

	"gopkg.in/yaml.v3"
)

type ProvisionFormatter struct{}

func NewProvisionFormatter() *ProvisionFormatter {
	return &ProvisionFormatter{}
}

// Renders the result in one of the supported output formats (text, table, yaml, json)
func (f *ProvisionFormatter) Format(result storage.ProvisionResult, format string) (string, error) {
	switch format {
	case "", "text":
		return f.FormatSummary(result), nil
	case "table":
		return f.FormatTable(result), nil
	case "yaml":
		out, err := yaml.Marshal(result)
		if err != nil {
			return "", fmt.Errorf("error encoding result as yaml: %w", err)
		}
		return strings.TrimRight(string(out), "\n"), nil
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", fmt.Errorf("error encoding result as json: %w", err)
		}
		return string(out), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// The one-line confirmation printed by default
func (f *ProvisionFormatter) FormatSummary(result storage.ProvisionResult) string {
	return fmt.Sprintf("Created bucket '%s' with Object Lock mode=%s and retention_days=%d.",
		result.Bucket, result.RetentionMode, result.RetentionDays)
}

func (f *ProvisionFormatter) FormatTable(result storage.ProvisionResult) string {
	var sb strings.Builder

	sb.WriteString(FormatSectionTitle("Bucket: " + result.Bucket))
	sb.WriteString("\n")

	table := NewTable([]string{"Parameter", "Value"})

	locationConstraint := "(none)"
	if result.LocationConstraint {
		locationConstraint = result.Region
	}

	details := []struct {
		Key   string
		Value string
	}{
		{"Provider", string(result.Provider)},
		{"Endpoint", result.Endpoint},
		{"Region", result.Region},
		{"Location Constraint", locationConstraint},
		{"Versioning", enabledString(result.VersioningEnabled)},
		{"Object Lock", "Enabled"},
		{"Retention Mode", string(result.RetentionMode)},
		{"Retention Days", strconv.Itoa(int(result.RetentionDays))},
	}

	for _, detail := range details {
		table.AddRow([]string{detail.Key, detail.Value})
	}

	sb.WriteString(table.String())
	return sb.String()
}

func enabledString(enabled bool) string {
	if enabled {
		return "Enabled"
	}
	return "Disabled"
}
