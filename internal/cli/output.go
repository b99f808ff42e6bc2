package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/mockhouse/mockhouse/internal/metadata"
	"github.com/mockhouse/mockhouse/internal/tui"
)

// statusSymbol renders the per-file pass/fail marker, styled when color is
// on.
func statusSymbol(ok, color bool) string {
	if ok {
		if color {
			return tui.SuccessStyle.Render(tui.SymbolCheck)
		}
		return tui.SymbolCheck
	}
	if color {
		return tui.ErrorStyle.Render(tui.SymbolCross)
	}
	return tui.SymbolCross
}

// muted dims secondary detail text when color is on.
func muted(s string, color bool) string {
	if color {
		return tui.MutedStyle.Render(s)
	}
	return s
}

// renderJSON writes the raw mapping as indented JSON.
func renderJSON(w io.Writer, raw metadata.RawMetadata) error {
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// renderYAML writes the raw mapping as YAML.
func renderYAML(w io.Writer, raw metadata.RawMetadata) error {
	data, err := yaml.Marshal(raw)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// renderText writes a human-readable field listing in schema declaration
// order, optionally styled.
func renderText(w io.Writer, title string, raw metadata.RawMetadata, color bool) error {
	style := func(s string) string { return s }
	nameStyle := style
	if color {
		style = func(s string) string { return tui.TitleStyle.Render(s) }
		nameStyle = func(s string) string { return tui.FieldNameStyle.Render(s) }
	}

	if _, err := fmt.Fprintln(w, style(title)); err != nil {
		return err
	}

	for _, f := range metadata.Default().Fields() {
		value, ok := raw[f.RawKey]
		if !ok {
			continue
		}
		switch v := value.(type) {
		case string:
			fmt.Fprintf(w, "  %s: %s\n", nameStyle(f.RawKey), v)
		case []string:
			fmt.Fprintf(w, "  %s:\n", nameStyle(f.RawKey))
			for _, item := range v {
				fmt.Fprintf(w, "    %s %s\n", tui.SymbolBullet, item)
			}
		case map[string]string:
			fmt.Fprintf(w, "  %s:\n", nameStyle(f.RawKey))
			labels := make([]string, 0, len(v))
			for label := range v {
				labels = append(labels, label)
			}
			sort.Strings(labels)
			for _, label := range labels {
				fmt.Fprintf(w, "    %s %s: %s\n", tui.SymbolBullet, label, v[label])
			}
		}
	}
	return nil
}
