package export

import "testing"

func TestCheckPlaceholders(t *testing.T) {
	valid := []string{
		"",
		"no placeholders",
		"{{name}}",
		"{{a}} and {{b}}",
		"nested {outer {inner}}",
	}
	for _, value := range valid {
		if err := checkPlaceholders(value); err != nil {
			t.Errorf("checkPlaceholders(%q) = %v, want nil", value, err)
		}
	}

	invalid := []string{
		"{",
		"}",
		"{{name}",
		"{name}}",
		"}{",
	}
	for _, value := range invalid {
		if err := checkPlaceholders(value); err == nil {
			t.Errorf("checkPlaceholders(%q) = nil, want error", value)
		}
	}
}
