package validation

import "strings"

// Violations maps a field name to every message recorded for it, so a
// form can show all problems at once instead of failing on the first.
type Violations map[string][]string

func (v Violations) Empty() bool { return len(v) == 0 }

func (v Violations) Add(field, message string) {
	v[field] = append(v[field], message)
}

// Has reports whether any message was recorded for field.
func (v Violations) Has(field string) bool { return len(v[field]) > 0 }

// Basic validators

func Required(field, value, message string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, message)
	}
}

func PositiveFloat(field string, val float64, message string, v Violations) {
	if val <= 0 {
		v.Add(field, message)
	}
}

// OneOf records a violation unless value matches one of the allowed literals.
func OneOf(field, value string, allowed []string, message string, v Violations) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, message)
}
