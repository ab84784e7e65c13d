package datastore

import (
	"errors"
	"regexp"
	"strings"
)

// Marker closes the ITEMS array. Appends go in front of its last occurrence.
const Marker = "];"

// ErrFormat is returned when the data file has no closing marker to append
// in front of.
var ErrFormat = errors.New("datastore: closing marker \"];\" not found")

// Append splices serialized in front of the last Marker in text. If there is
// no marker, text is returned unchanged together with ErrFormat.
func Append(text, serialized string) (string, error) {
	i := strings.LastIndex(text, Marker)
	if i < 0 {
		return text, ErrFormat
	}
	var b strings.Builder
	b.Grow(len(text) + len(serialized))
	b.WriteString(text[:i])
	b.WriteString(serialized)
	b.WriteString(text[i:])
	return b.String(), nil
}

// Contains reports whether text already holds an entry for sku. Quoted and
// unquoted keys are both recognised.
func Contains(text, sku string) bool {
	re := regexp.MustCompile(`"?\bsku"?\s*:\s*"` + regexp.QuoteMeta(sku) + `"`)
	return re.MatchString(text)
}
