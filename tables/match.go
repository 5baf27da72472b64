package tables

import "strconv"

const (
	// spritePrefixLen is how many characters of a sprite name are significant.
	spritePrefixLen = 4

	// soundPrefixLen is how many characters of a seed sound name are
	// significant when resolving a reference.
	soundPrefixLen = 6
)

// equalFoldN reports whether the first n bytes of a and b match under ASCII
// case folding. A string shorter than n must match in full.
func equalFoldN(a, b string, n int) bool {
	if len(a) > n {
		a = a[:n]
	}
	if len(b) > n {
		b = b[:n]
	}
	return equalFoldASCII(a, b)
}

func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// parseNumeral parses a key made only of decimal digits.
func parseNumeral(key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(key)
	if err != nil {
		return 0, false
	}
	return n, true
}
