// Package validator registers the domain validation tags on gin's
// binding engine.
package validator

import (
	"errors"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// fdiTooth accepts two-digit FDI tooth numbers: quadrant 1-4 for
// permanent teeth, 5-8 for deciduous, position 1-8 within the quadrant.
func fdiTooth(fl validator.FieldLevel) bool {
	n := fl.Field().Int()
	quadrant := n / 10
	position := n % 10
	return quadrant >= 1 && quadrant <= 8 && position >= 1 && position <= 8
}

// Register installs the custom tags. Call once at startup, before any
// request binding happens.
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return v.RegisterValidation("fdi_tooth", fdiTooth)
}
