package validation

import (
	"fmt"
	"strings"
)

// MissingFieldsError lists required fields absent from an input. Workflow
// operations return it before touching the store.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// Missing builds a MissingFieldsError, or nil when no field is missing.
func Missing(fields ...string) error {
	if len(fields) == 0 {
		return nil
	}
	return &MissingFieldsError{Fields: fields}
}
