package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatYAML  OutputFormat = "yaml"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp interface{}, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(resp)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatHuman formats the response in human-readable format
func formatHuman(resp interface{}) (string, error) {
	switch v := resp.(type) {
	case *LocationsResponseCLI:
		return formatLocationsHuman(v), nil
	case *SymbolsResponseCLI:
		return formatSymbolsHuman(v), nil
	default:
		// For unknown types, fall back to JSON
		return FormatResponse(resp, FormatJSON)
	}
}

func formatLocationsHuman(resp *LocationsResponseCLI) string {
	if !resp.Found {
		return "No navigable symbol under the cursor."
	}
	if len(resp.Locations) == 0 {
		return "No results."
	}

	var b strings.Builder
	for _, loc := range resp.Locations {
		b.WriteString(fmt.Sprintf("%s:%d:%d\n",
			loc.URI, loc.Range.Start.Line, loc.Range.Start.Character))
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatSymbolsHuman(resp *SymbolsResponseCLI) string {
	if len(resp.Symbols) == 0 {
		return "No functions found."
	}

	var b strings.Builder
	for _, sym := range resp.Symbols {
		b.WriteString(fmt.Sprintf("%-24s %d:%d\n",
			sym.Name, sym.Location.Range.Start.Line, sym.Location.Range.Start.Character))
	}
	return strings.TrimRight(b.String(), "\n")
}
