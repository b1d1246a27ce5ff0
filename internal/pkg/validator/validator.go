// Package validator runs the `validate` struct tags that the domain
// entities and DTOs carry.
package validator

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks v's tagged fields and returns a field-to-tag map of the
// failures, or nil when everything passes.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	failed := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		failed[fe.Field()] = fe.Tag()
	}
	return failed
}
