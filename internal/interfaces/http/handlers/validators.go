package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

// RegisterCustomValidators installs the binding-level validators used by the
// request structs. Must run once before the router serves traffic.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("sector", func(fl validator.FieldLevel) bool {
		return vo.Sector(fl.Field().String()).IsValid()
	})
}
