package server

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/rezonia/price-engine/internal/price"
)

// registerValidators adds the currency tag to gin's validator engine
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("currency", validateCurrency)
}

func validateCurrency(fl validator.FieldLevel) bool {
	_, err := price.NewCurrency(fl.Field().String())
	return err == nil
}
