package lms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return v
}()

// Validate checks a request payload before it is sent to the server
func Validate(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, fieldMessage(fieldErr))
	}
	return fmt.Errorf("invalid %s: %s", typeName(payload), strings.Join(messages, ", "))
}

func fieldMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return err.Field() + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
	case "gt":
		return err.Field() + " must be a valid id"
	case "gte":
		return err.Field() + " must not be negative"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", err.Field(), strings.ReplaceAll(err.Param(), " ", ", "))
	case "email":
		return err.Field() + " must be a valid email address"
	case "url":
		return err.Field() + " must be a valid URL"
	}
	return fmt.Sprintf("%s failed the %s check", err.Field(), err.Tag())
}

func typeName(payload interface{}) string {
	t := reflect.TypeOf(payload)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return strings.ToLower(strings.TrimSuffix(t.Name(), "Request"))
}
