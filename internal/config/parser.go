package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	apperrors "github.com/alexisbeaulieu97/splitpane/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseLayout loads a layout file from disk, validates it, and returns it.
func ParseLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return DecodeLayout(data, path)
}

// DecodeLayout parses a layout document. source names the document in errors.
func DecodeLayout(data []byte, source string) (*Layout, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, apperrors.NewParseError(source, 0, fmt.Errorf("empty layout document"))
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var layout Layout
	if err := dec.Decode(&layout); err != nil && err != io.EOF {
		return nil, apperrors.NewParseError(source, extractLine(err), err)
	}

	if err := ValidateLayout(&layout); err != nil {
		return nil, err
	}

	return &layout, nil
}

// Marshal renders the layout back to YAML.
func (l *Layout) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
