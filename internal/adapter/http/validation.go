package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"sils-backend/internal/domain/request"
	"sils-backend/internal/domain/tool"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// public ids = 32-char lowercase hex
	_ = v.RegisterValidation("hex32", func(fl validator.FieldLevel) bool {
		return reHex32.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("zona", func(fl validator.FieldLevel) bool {
		return tool.ValidZone(tool.Zone(fl.Field().String()))
	})
	_ = v.RegisterValidation("estado_herramienta", func(fl validator.FieldLevel) bool {
		return tool.ValidStatus(tool.Status(fl.Field().String()))
	})
	_ = v.RegisterValidation("tipo_solicitud", func(fl validator.FieldLevel) bool {
		return request.ValidType(request.Type(fl.Field().String()))
	})
	_ = v.RegisterValidation("prioridad", func(fl validator.FieldLevel) bool {
		n := fl.Field().Int()
		return n >= 1 && n <= 3
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors to []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "hex32":
			out = append(out, FieldError{Field: field, Message: "must be 32-char lowercase hex"})
		case "zona":
			out = append(out, FieldError{Field: field, Message: "must be INSTALACIONES, MANTENIMIENTO or TALLER"})
		case "estado_herramienta":
			out = append(out, FieldError{Field: field, Message: "must be a known tool status"})
		case "tipo_solicitud":
			out = append(out, FieldError{Field: field, Message: "must be NUEVA, REPARACION or CAMBIO"})
		case "prioridad":
			out = append(out, FieldError{Field: field, Message: "must be between 1 and 3"})
		case "email":
			out = append(out, FieldError{Field: field, Message: "must be a valid email"})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must be at least " + e.Param() + " characters"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "lte":
			out = append(out, FieldError{Field: field, Message: "must be less than or equal to " + e.Param()})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
