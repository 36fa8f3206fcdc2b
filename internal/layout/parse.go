package layout

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	storefronterrors "github.com/alexisbeaulieu97/storefront/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Parse decodes a layout document. JSON is tried first; anything that does
// not start like a JSON object is read as YAML with the same shape. The
// result is normalized. path is only used in error messages.
func Parse(path string, data []byte) (Layout, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return Layout{}, storefronterrors.NewParseError(path, 0, fmt.Errorf("empty layout document"))
	}

	if trimmed[0] != '{' {
		converted, err := yamlToJSON(trimmed)
		if err != nil {
			return Layout{}, storefronterrors.NewParseError(path, extractLine(err), err)
		}
		trimmed = converted
	}

	var l Layout
	if err := json.Unmarshal(trimmed, &l); err != nil {
		line := 0
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			line = bytes.Count(trimmed[:min(int(syntaxErr.Offset), len(trimmed))], []byte("\n")) + 1
		}
		return Layout{}, storefronterrors.NewParseError(path, line, err)
	}
	return Normalize(l), nil
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, fmt.Errorf("layout document must be a mapping")
	}
	return json.Marshal(doc)
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
