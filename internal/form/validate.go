package form

import (
	"fmt"
	"strings"
)

var humanizer = strings.NewReplacer("_", " ", "-", " ")

// Humanize turns an internal field name into display words
func Humanize(name string) string {
	return humanizer.Replace(name)
}

// Validate returns one warning per empty field, in registration order.
// Only presence is checked; paths are not tested for existence.
func Validate(reg *Registry) []string {
	var warnings []string
	for _, f := range reg.fields {
		if f.value == "" {
			warnings = append(warnings, fmt.Sprintf("Error: %s has not been selected.", Humanize(f.name)))
		}
	}
	return warnings
}
