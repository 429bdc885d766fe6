package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the struct tags on a record. It is applied at ingress
// boundaries (edit forms, command flags); the state container itself
// trusts its callers.
func Validate(v any) error {
	if err := validate.Struct(v); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			fe := errs[0]
			return fmt.Errorf("medan %s tidak sah (%s)", fe.Field(), fe.Tag())
		}
		return err
	}
	return nil
}
