package http

import (
	"errors"
	"strings"
	"testing"
)

type validationProbe struct {
	ID       string `validate:"omitempty,hex32"`
	Zone     string `validate:"omitempty,zona"`
	Status   string `validate:"omitempty,estado_herramienta"`
	Type     string `validate:"omitempty,tipo_solicitud"`
	Priority int    `validate:"omitempty,prioridad"`
}

func TestCustomValidatorTags(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		name      string
		in        validationProbe
		wantField string
	}{
		{"all empty passes", validationProbe{}, ""},
		{"valid values pass", validationProbe{
			ID:       strings.Repeat("a", 32),
			Zone:     "TALLER",
			Status:   "REGULAR",
			Type:     "REPARACION",
			Priority: 2,
		}, ""},
		{"uppercase hex rejected", validationProbe{ID: strings.Repeat("A", 32)}, "ID"},
		{"short id rejected", validationProbe{ID: "abc123"}, "ID"},
		{"unknown zone", validationProbe{Zone: "BODEGA"}, "Zone"},
		{"unknown status", validationProbe{Status: "OXIDADA"}, "Status"},
		{"unknown request type", validationProbe{Type: "PRESTAMO"}, "Type"},
		{"priority out of range", validationProbe{Priority: 4}, "Priority"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := cv.Validate(&tc.in)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("Validate(%+v): %v", tc.in, err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate(%+v) passed, want failure on %s", tc.in, tc.wantField)
			}
			fields := ToFieldErrors(err)
			if len(fields) != 1 || fields[0].Field != tc.wantField {
				t.Fatalf("field errors = %+v, want single error on %s", fields, tc.wantField)
			}
		})
	}
}

func TestToFieldErrors_Messages(t *testing.T) {
	cv := NewValidator()

	var in struct {
		Zone string `validate:"required,zona"`
	}
	err := cv.Validate(&in)
	if err == nil {
		t.Fatal("expected validation error")
	}
	fields := ToFieldErrors(err)
	if len(fields) != 1 || fields[0].Message != "is required" {
		t.Fatalf("field errors = %+v", fields)
	}

	in.Zone = "PATIO"
	fields = ToFieldErrors(cv.Validate(&in))
	if len(fields) != 1 || !strings.Contains(fields[0].Message, "INSTALACIONES") {
		t.Fatalf("field errors = %+v", fields)
	}
}

func TestToFieldErrors_NonValidatorError(t *testing.T) {
	fields := ToFieldErrors(errors.New("boom"))
	if len(fields) != 1 || fields[0].Field != "_" || fields[0].Message != "boom" {
		t.Fatalf("field errors = %+v", fields)
	}
}
