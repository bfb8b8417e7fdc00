// Package form provides field-level validation errors for user input.
package form

import (
	"fmt"
	"sort"
	"strings"
)

// Errors maps a field name to a validation message.
type Errors map[string]string

// Empty returns true if no field failed validation.
func (e Errors) Empty() bool { return len(e) == 0 }

// Fields returns the failed field names in sorted order.
func (e Errors) Fields() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Error formats all field errors as a single message.
func (e Errors) Error() string {
	var parts []string
	for _, f := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

// Required records an error when value is empty or whitespace.
func Required(field, value string, e Errors) {
	if strings.TrimSpace(value) == "" {
		e[field] = "is required"
	}
}
