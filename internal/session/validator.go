package session

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var defaultValidator = validator.New()

var fieldLabels = map[string]string{
	"FullName": "full name",
	"Email":    "email",
	"Password": "password",
}

// validateStruct is shortcut of defaultValidator.Struct
func validateStruct(s any) error {
	return defaultValidator.Struct(s)
}

// describe turns validation errors into a short user-facing message.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		label, ok := fieldLabels[fe.StructField()]
		if !ok {
			label = strings.ToLower(fe.StructField())
		}
		switch {
		case fe.StructField() == "ConfirmPassword":
			msgs = append(msgs, "passwords do not match")
		case fe.Tag() == "required":
			msgs = append(msgs, label+" is required")
		case fe.Tag() == "email":
			msgs = append(msgs, "email is not valid")
		case fe.Tag() == "min":
			msgs = append(msgs, label+" must be at least "+fe.Param()+" characters")
		default:
			msgs = append(msgs, label+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}
