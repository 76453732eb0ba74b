package awscred

import "strings"

// Parse reads credentials file text into a Store.
//
// Blank lines and lines starting with '#' or ';' are skipped. A "[name]"
// line opens a profile; a repeated section name merges into the existing
// profile. A "key = value" line is split on the first '=' with both sides
// trimmed; assigning an existing key overwrites its value in place. Parsing
// stops at the first error, which is a *ParseError carrying the 1-based line
// number. Empty input is valid and yields an empty store.
func Parse(text string) (*Store, error) {
	store := NewStore()

	var current *Profile
	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || line[0] == '#' || line[0] == ';' {
			continue
		}
		switch {
		case line[0] == '[' && line[len(line)-1] == ']':
			name := strings.TrimSpace(line[1 : len(line)-1])
			if name == "" {
				return nil, &ParseError{Line: i + 1, Err: ErrInvalidSectionHeader}
			}
			current = store.Profile(name)
		case strings.Contains(line, "="):
			if current == nil {
				return nil, &ParseError{Line: i + 1, Err: ErrKeyOutsideSection}
			}
			key, value, _ := strings.Cut(line, "=")
			current.Set(strings.TrimSpace(key), strings.TrimSpace(value))
		default:
			return nil, &ParseError{Line: i + 1, Err: ErrMalformedLine}
		}
	}

	return store, nil
}
