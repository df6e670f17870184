package querysolr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// phraseEscaper escapes the characters that terminate a quoted Solr phrase.
var phraseEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// quote renders a value as a quoted Solr phrase: "value".
// Strings are NFC normalized so differently composed input matches the
// normalized index.
func quote(v any) (string, error) {
	s, err := formatValue(v)
	if err != nil {
		return "", err
	}
	return `"` + phraseEscaper.Replace(s) + `"`, nil
}

// rangeBound renders a range bound: numbers bare, everything else quoted.
func rangeBound(v any) (string, error) {
	switch v.(type) {
	case string, bool:
		return quote(v)
	default:
		return formatValue(v)
	}
}

// formatValue renders a scalar criterion value as Solr literal text.
func formatValue(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return norm.NFC.String(t), nil
	case bool:
		return strconv.FormatBool(t), nil
	case int:
		return strconv.Itoa(t), nil
	case int8:
		return strconv.FormatInt(int64(t), 10), nil
	case int16:
		return strconv.FormatInt(int64(t), 10), nil
	case int32:
		return strconv.FormatInt(int64(t), 10), nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case uint:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint8:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint16:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(t), 10), nil
	case uint64:
		return strconv.FormatUint(t, 10), nil
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case fmt.Stringer:
		return norm.NFC.String(t.String()), nil
	default:
		return "", fmt.Errorf("%w: unsupported value type %T", ErrMalformedValue, v)
	}
}
