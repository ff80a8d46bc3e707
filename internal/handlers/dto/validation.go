package dto

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rafabene/federa-backend/internal/domain/valueobjects"
)

// RegisterValidators registra as tags customizadas no validador do Gin
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterValidatorsOn(v)
}

// RegisterValidatorsOn registra as tags customizadas num validador qualquer
func RegisterValidatorsOn(v *validator.Validate) error {
	return v.RegisterValidation("tenantdomain", func(fl validator.FieldLevel) bool {
		return valueobjects.IsValidTenantDomain(fl.Field().String())
	})
}
