package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const tagDecimalPositive = "decimal_positive"

// Validator checks request structs against their `validate` tags
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a validator that reports fields by JSON name and
// understands decimal amounts
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterCustomTypeFunc(decimalAsString, decimal.Decimal{})
	if err := v.RegisterValidation(tagDecimalPositive, decimalPositive); err != nil {
		panic(err)
	}

	return &Validator{validate: v}
}

// GetValidator returns the shared validator used by request decoding
var GetValidator = sync.OnceValue(NewValidator)

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

var validationMessages = map[string]func(param string) string{
	"required":         func(string) string { return "This field is required" },
	tagDecimalPositive: func(string) string { return "Must be a positive amount" },
	"gt":               func(p string) string { return fmt.Sprintf("Must be greater than %s", p) },
	"max":              func(p string) string { return fmt.Sprintf("Must be at most %s characters", p) },
	"min":              func(p string) string { return fmt.Sprintf("Must be at least %s characters", p) },
	"printascii":       func(string) string { return "Contains invalid characters" },
}

// FormatValidationError maps each failing field, by JSON name, to a message a
// client can act on. Internal struct names never leak.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg := "Invalid value"
		if format, ok := validationMessages[fe.Tag()]; ok {
			msg = format(fe.Param())
		}
		fields[strings.ToLower(fe.Field())] = msg
	}
	return fields
}

func decimalAsString(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func decimalPositive(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.IsPositive()
}
