package criterion

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Parse decodes a criterion tree from a YAML (or JSON) document.
//
// Every node is a mapping with exactly one key naming the node type:
//
//	and:
//	  - content_id: [1, 2]
//	  - not:
//	      is_container: true
//	  - custom_field: {field: price_i, operator: between, value: [10, 20]}
//
// Leaf bodies are either a bare value (scalar or list, default operator) or a
// mapping with "operator" and "value" keys ("field" for custom_field).
func Parse(data []byte) (Criterion, error) {
	var node any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&node); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return Decode(node)
}

// LoadFile reads and decodes a criterion tree file.
func LoadFile(path string) (Criterion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read criterion file: %w", err)
	}
	return Parse(data)
}

// Decode builds a criterion from a generic decoded YAML value.
func Decode(node any) (Criterion, error) {
	return decodeAt(node, "$")
}

func decodeAt(node any, path string) (Criterion, error) {
	m, ok := node.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: expected a mapping, got %T", ErrInvalid, path, node)
	}
	if len(m) != 1 {
		return nil, fmt.Errorf("%w: %s: expected exactly one key, got %v", ErrInvalid, path, sortedKeys(m))
	}

	var key string
	var body any
	for k, v := range m {
		key, body = k, v
	}
	path = path + "." + key

	switch key {
	case "and", "or":
		list, ok := body.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s: expected a list, got %T", ErrInvalid, path, body)
		}
		children := make([]Criterion, 0, len(list))
		for i, item := range list {
			child, err := decodeAt(item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			children = append(children, child)
		}
		if key == "and" {
			return &LogicalAnd{Criteria: children}, nil
		}
		return &LogicalOr{Criteria: children}, nil
	case "not":
		child, err := decodeAt(body, path)
		if err != nil {
			return nil, err
		}
		return &LogicalNot{Criterion: child}, nil
	case "content_id", "location_id", "parent_location_id", "content_type_id", "section_id":
		return decodeIDs(key, body, path)
	case "is_container":
		op, values, err := decodeLeafBody(body, path, EQ)
		if err != nil {
			return nil, err
		}
		flags := make([]int, 0, len(values))
		for _, v := range values {
			switch t := v.(type) {
			case bool:
				flags = append(flags, boolToInt(t))
			default:
				n, err := toInt64(v)
				if err != nil {
					return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
				}
				flags = append(flags, int(n))
			}
		}
		return &IsContainer{Operator: op, Value: flags}, nil
	case "is_bookmarked":
		op, values, err := decodeLeafBody(body, path, EQ)
		if err != nil {
			return nil, err
		}
		flags := make([]bool, 0, len(values))
		for _, v := range values {
			b, ok := v.(bool)
			if !ok {
				return nil, fmt.Errorf("%w: %s: expected a boolean, got %T", ErrInvalid, path, v)
			}
			flags = append(flags, b)
		}
		return &IsBookmarked{Operator: op, Value: flags}, nil
	case "custom_field":
		return decodeCustomField(body, path)
	case "match_all":
		return &MatchAll{}, nil
	case "match_none":
		return &MatchNone{}, nil
	default:
		return nil, fmt.Errorf("%w: %s: unknown criterion %q", ErrInvalid, path, key)
	}
}

func decodeIDs(key string, body any, path string) (Criterion, error) {
	op, values, err := decodeLeafBody(body, path, IN)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(values))
	for _, v := range values {
		id, err := toInt64(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		}
		ids = append(ids, id)
	}

	switch key {
	case "content_id":
		return &ContentID{Operator: op, Value: ids}, nil
	case "location_id":
		return &LocationID{Operator: op, Value: ids}, nil
	case "parent_location_id":
		return &ParentLocationID{Operator: op, Value: ids}, nil
	case "content_type_id":
		return &ContentTypeID{Operator: op, Value: ids}, nil
	default:
		return &SectionID{Operator: op, Value: ids}, nil
	}
}

func decodeCustomField(body any, path string) (Criterion, error) {
	m, ok := body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: expected a mapping, got %T", ErrInvalid, path, body)
	}
	field, ok := m["field"].(string)
	if !ok || field == "" {
		return nil, fmt.Errorf("%w: %s: field is required", ErrInvalid, path)
	}

	rest := make(map[string]any, len(m))
	for k, v := range m {
		if k != "field" {
			rest[k] = v
		}
	}

	// A bare scalar value defaults to EQ, a list to IN.
	def := EQ
	if _, isList := rest["value"].([]any); isList {
		def = IN
	}
	op, values, err := decodeLeafBody(rest, path, def)
	if err != nil {
		return nil, err
	}
	return &CustomField{Field: field, Operator: op, Value: values}, nil
}

// decodeLeafBody reads a leaf body in short form (bare value) or long form
// ({operator: ..., value: ...}).
func decodeLeafBody(body any, path string, def Operator) (Operator, []any, error) {
	m, ok := body.(map[string]any)
	if !ok {
		return def, asList(body), nil
	}

	op := def
	for k, v := range m {
		switch k {
		case "operator":
			name, ok := v.(string)
			if !ok {
				return "", nil, fmt.Errorf("%w: %s: operator must be a string", ErrInvalid, path)
			}
			parsed, ok := ParseOperator(name)
			if !ok {
				return "", nil, fmt.Errorf("%w: %s: unknown operator %q", ErrInvalid, path, name)
			}
			op = parsed
		case "value":
		default:
			return "", nil, fmt.Errorf("%w: %s: unknown key %q", ErrInvalid, path, k)
		}
	}

	value, ok := m["value"]
	if !ok {
		return "", nil, fmt.Errorf("%w: %s: value is required", ErrInvalid, path)
	}
	return op, asList(value), nil
}

func asList(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{v}
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("id %d out of range", n)
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("id %v is not an integer", n)
		}
		return int64(n), nil
	case string:
		id, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("id %q is not an integer", n)
		}
		return id, nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
