// internals/helpers/strings.go
package helper

import "strings"

// EscapeLike neutralizes LIKE/ILIKE metacharacters so user-supplied titles
// can be used as substring probes. The old dashboard fed raw titles into a
// regex match and broke on metacharacters.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// TrimPtr trims a string pointer and collapses empty to nil.
func TrimPtr(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}
