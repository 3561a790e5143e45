package validator

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/shandysiswandi/cartcheck/internal/pkg/check"
	"github.com/shandysiswandi/cartcheck/internal/pkg/strcase"
)

// Validator validates structs. Business code depends on this interface so
// validation can be shared and tested consistently.
type Validator interface {
	Validate(data any) error
}

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// V10ValidationError is a field-to-message map returned when validation fails.
//
// Keys are field names in snake_case to match typical JSON conventions.
type V10ValidationError map[string]string

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs)
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return vs
}

// NewV10Validator constructs a V10Validator with English translations and the
// cart field rules registered.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	if err := v10CustomValidation(validate, enTrans); err != nil {
		return nil, err
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		errV10 := make(V10ValidationError)
		for _, fe := range validateErrs {
			errV10[strcase.FieldKey(fe.Field())] = fe.Translate(v.translator)
		}

		return errV10
	}

	return nil
}

// v10CustomValidation registers the cart field rules. Both delegate to
// package check so struct-tag validation and loose-value validation cannot
// drift apart.
func v10CustomValidation(validate *validator.Validate, enTrans ut.Translator) error {
	if err := validate.RegisterValidation("quantity", func(fl validator.FieldLevel) bool {
		return check.Quantity(fl.Field().Interface()).OK()
	}); err != nil {
		return err
	}

	if err := validate.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		return check.Price(fl.Field().Interface()).OK()
	}); err != nil {
		return err
	}

	if err := validate.RegisterTranslation("quantity", enTrans,
		func(ut ut.Translator) error {
			return ut.Add("quantity", "{0} must be a non-negative integer", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				return fe.Field() + " must be a non-negative integer"
			}
			return t
		},
	); err != nil {
		return err
	}

	return validate.RegisterTranslation("price", enTrans,
		func(ut ut.Translator) error {
			return ut.Add("price", "{0} must be a non-negative number", false)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, err := ut.T(fe.Tag(), fe.Field())
			if err != nil {
				return fe.Field() + " must be a non-negative number"
			}
			return t
		},
	)
}
