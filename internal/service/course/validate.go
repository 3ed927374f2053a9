package course

import (
	"TubeCourse/internal/app_errors"
	"TubeCourse/internal/models"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the constraints a stored course must satisfy.
func Validate(c *models.Course) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describe(fe))
	}
	return &app_errors.ValidationError{Details: details}
}

func describe(fe validator.FieldError) string {
	path := fe.Namespace()
	if i := strings.IndexByte(path, '.'); i >= 0 {
		path = path[i+1:]
	}
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s: `%v` is not a valid enum value, expected one of [%s]", path, fe.Value(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed on %s", path, fe.Tag())
	}
}
