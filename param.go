package dynsql

import "strings"

// isValidSQLIdentifier checks if a string is a plain SQL identifier:
// a letter or underscore followed by letters, digits or underscores.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	return true
}

// isValidPropertyPath checks a dotted property path such as "address.city".
// Every segment must be an identifier.
func isValidPropertyPath(path string) bool {
	if path == "" {
		return false
	}
	for _, segment := range strings.Split(path, ".") {
		if !isValidSQLIdentifier(segment) {
			return false
		}
	}
	return true
}
