// Package presentation renders registry contents for the beans CLI.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates an output format name. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use text, json or yaml)", s)
	}
}

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
	format Format
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer, format Format) *Formatter {
	if format == "" {
		format = FormatText
	}
	return &Formatter{
		writer: writer,
		format: format,
	}
}

// FormatDefinitions writes definitions in registration order.
func (f *Formatter) FormatDefinitions(defs []DefinitionDTO) error {
	switch f.format {
	case FormatJSON:
		return f.encodeJSON(defs)
	case FormatYAML:
		return f.encodeYAML(defs)
	}

	tw := tabwriter.NewWriter(f.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tPRIMARY")
	for _, def := range defs {
		primary := ""
		if def.Primary {
			primary = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", def.Name, def.Type, primary)
	}
	return tw.Flush()
}

// FormatInstance writes a single resolved instance.
func (f *Formatter) FormatInstance(instance InstanceDTO) error {
	switch f.format {
	case FormatJSON:
		return f.encodeJSON(instance)
	case FormatYAML:
		return f.encodeYAML(instance)
	}

	_, err := fmt.Fprintf(f.writer, "%s (%s): %+v\n", instance.Name, instance.Type, instance.Value)
	return err
}

func (f *Formatter) encodeJSON(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (f *Formatter) encodeYAML(v any) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}
