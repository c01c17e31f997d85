package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate = validator.New()

func init() {
	// Báo lỗi theo tên field trong JSON thay vì tên field Go.
	Validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
}

// FieldError là một lỗi validate cho một field, dashboard hiển thị ngay dưới input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateStruct runs the `validate` tags and converts failures into the
// field-error list the API returns with status 400.
func ValidateStruct(s interface{}) []FieldError {
	err := Validate.Struct(s)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s là bắt buộc", fe.Field())
	case "min":
		return fmt.Sprintf("%s phải có ít nhất %s ký tự", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s không phải là URL hợp lệ", fe.Field())
	case "oneof":
		return fmt.Sprintf("%s phải là một trong: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s không hợp lệ", fe.Field())
	}
}
