package middleware

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/bizmate/booking-api/internal/workhours"
)

// RegisterValidators installs custom binding rules on gin's validator and
// makes validation errors report json field names.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	if err := v.RegisterValidation("hhmm", validHHMM); err != nil {
		panic(err)
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return fld.Name
		}
		return name
	})
}

// validHHMM accepts clock-style "HH:MM" values. Grid rounding is a domain
// rule checked later with a precise error message.
func validHHMM(fl validator.FieldLevel) bool {
	_, err := workhours.ParseTime(fl.Field().String())
	return err == nil
}
