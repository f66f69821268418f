package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Errors maps a field name to the messages recorded against it.
// A nil or empty map means the value passed validation.
type Errors map[string][]string

// Add records a message against a field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether any message was recorded against the field.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Empty reports whether no field has an error.
func (e Errors) Empty() bool {
	return len(e) == 0
}

// Error implements the error interface so Errors can travel through
// the usual error-returning call chain.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e[field], "; ")))
	}
	return strings.Join(parts, ", ")
}
