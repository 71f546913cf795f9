package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"credvault/internal/model"
)

// FieldError describes one rejected request field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Validator checks request bodies against their struct tags. Field names are
// reported by their JSON key.
type Validator struct {
	v *validator.Validate
}

// NewValidator creates a Validator with the project's custom rules registered.
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("salary_range", validSalaryRange)
	return &Validator{v: v}
}

func validSalaryRange(fl validator.FieldLevel) bool {
	switch r := fl.Field().Interface().(type) {
	case model.SalaryRange:
		return r.Valid()
	case *model.SalaryRange:
		return r == nil || r.Valid()
	default:
		return false
	}
}

// Struct validates s and returns the failing fields, or nil.
func (val *Validator) Struct(s any) []FieldError {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s layout", fe.Field(), fe.Param())
	case "salary_range":
		return fmt.Sprintf("%s must be [min, max] with 0 <= min <= max", fe.Field())
	default:
		return fmt.Sprintf("%s failed the %s rule", fe.Field(), fe.Tag())
	}
}
