package security

import "strings"

// EscapeLike prepares raw user input for use inside a SQL LIKE pattern by
// escaping the wildcard metacharacters, so a search for "100%" matches the
// literal text instead of everything starting with "100".
func EscapeLike(query string) string {
	if query == "" {
		return ""
	}

	query = strings.ReplaceAll(query, `\`, `\\`)
	query = strings.ReplaceAll(query, "%", `\%`)
	query = strings.ReplaceAll(query, "_", `\_`)

	return query
}

// ContainsPattern builds a case-normalized LIKE pattern that matches any
// value containing the given substring.
func ContainsPattern(query string) string {
	return "%" + strings.ToLower(EscapeLike(strings.TrimSpace(query))) + "%"
}
