package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// structValidator returns the shared validator. Field names in messages use
// the form tag, falling back to the json tag.
func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if label := fld.Tag.Get("form"); label != "" {
				return label
			}
			const maxSplits = 2
			name := strings.SplitN(fld.Tag.Get("json"), ",", maxSplits)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterStructValidation(handshakeRecipient, NewHandshake{})
		validate = v
	})
	return validate
}

// Validate runs the struct rules of a form and returns ValidationErrors when
// any rule fails.
func Validate(form any) error {
	if err := structValidator().Struct(form); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return formatValidationErrors(validationErrs)
		}
		return err
	}
	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	out := make(ValidationErrors, 0, len(errs))
	for _, err := range errs {
		field := err.Field()
		if field == "" {
			field = err.StructField()
		}
		out = append(out, ValidationError{
			Field:   field,
			Tag:     err.Tag(),
			Value:   fmt.Sprintf("%v", err.Value()),
			Message: errorMessage(field, err),
		})
	}
	return out
}

func errorMessage(field string, err validator.FieldError) string {
	param := err.Param()
	switch err.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "url", "http_url":
		return field + " must be a valid http(s) URL"
	case "hostname_rfc1123", "fqdn":
		return field + " must be a valid domain"
	case "recipient_email":
		return field + " must be an email address for the EMAIL method"
	case "recipient_handle":
		return field + " must be a handle for the " + param + " method"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	default:
		return fmt.Sprintf("%s failed validation on '%s'", field, err.Tag())
	}
}

// handshakeRecipient checks the recipient against the outreach method.
func handshakeRecipient(sl validator.StructLevel) {
	h, ok := sl.Current().Interface().(NewHandshake)
	if !ok || h.Recipient == "" {
		return
	}

	switch strings.ToUpper(h.Method) {
	case "EMAIL":
		if err := sl.Validator().Var(h.Recipient, "email"); err != nil {
			sl.ReportError(h.Recipient, "Recipient", "Recipient", "recipient_email", "")
		}
	case "TWITTER", "GITHUB":
		if strings.ContainsAny(strings.TrimPrefix(h.Recipient, "@"), " @/") {
			sl.ReportError(h.Recipient, "Recipient", "Recipient", "recipient_handle", strings.ToUpper(h.Method))
		}
	}
}
