package export

import "fmt"

// checkPlaceholders verifies that the curly-brace placeholders in a translated
// value are balanced. Translators regularly drop a closing brace, which breaks
// interpolation at runtime, so an unbalanced value fails the whole export.
func checkPlaceholders(value string) error {
	depth := 0
	for _, ch := range value {
		switch ch {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return fmt.Errorf("unbalanced placeholder in %q", value)
			}
			depth--
		}
	}
	if depth != 0 {
		return fmt.Errorf("unbalanced placeholder in %q", value)
	}
	return nil
}
