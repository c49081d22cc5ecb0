package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationErrors maps a field name to its violation message. All violations
// of one submission attempt are collected together, not short-circuited.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) match without wrapping.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}
