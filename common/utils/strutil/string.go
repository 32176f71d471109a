package strutil

import (
	"strings"
	"unicode"
)

// ParseArgsRespectQuotes splits a command line on whitespace while keeping
// double-quoted parts together. Inside quotes \" and \\ are unescaped.
func ParseArgsRespectQuotes(input string) []string {
	var (
		args     []string
		current  strings.Builder
		inQuotes bool
		hasToken bool
	)
	runes := []rune(input)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case inQuotes && r == '\\' && i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\\'):
			current.WriteRune(runes[i+1])
			i++
		case r == '"':
			inQuotes = !inQuotes
			hasToken = true
		case !inQuotes && unicode.IsSpace(r):
			if hasToken {
				args = append(args, current.String())
				current.Reset()
				hasToken = false
			}
		default:
			current.WriteRune(r)
			hasToken = true
		}
	}
	if hasToken {
		args = append(args, current.String())
	}
	return args
}
