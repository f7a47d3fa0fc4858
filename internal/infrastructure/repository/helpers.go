package repository

import "strings"

// escapeLike lowercases the input and escapes LIKE metacharacters so user
// text is always treated literally inside a pattern.
func escapeLike(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
