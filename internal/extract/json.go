package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// extractJSON flattens a JSON document into plain text.
//
// For a mapping root: every top-level string value is concatenated, and
// any value that is itself a mapping with a "text" field contributes
// that field (joined if it is a sequence). For a sequence root each
// element is stringified and joined. Keys are walked in sorted order so
// the output is deterministic.
func (s *Service) extractJSON(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %v", ErrExtraction, filepath.Base(path), err)
	}

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return "", fmt.Errorf("%w: parse json: %v", ErrExtraction, err)
	}

	switch v := root.(type) {
	case map[string]any:
		return flattenObject(v), nil
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, "\n\n"), nil
	default:
		return stringify(root), nil
	}
}

func flattenObject(obj map[string]any) string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		switch val := obj[k].(type) {
		case string:
			sb.WriteString(val)
			sb.WriteString("\n\n")
		case map[string]any:
			text, ok := val["text"]
			if !ok {
				continue
			}
			switch t := text.(type) {
			case []any:
				parts := make([]string, len(t))
				for i, item := range t {
					parts[i] = stringify(item)
				}
				sb.WriteString(strings.Join(parts, "\n"))
				sb.WriteString("\n\n")
			default:
				sb.WriteString(stringify(t))
				sb.WriteString("\n\n")
			}
		}
	}
	return sb.String()
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
