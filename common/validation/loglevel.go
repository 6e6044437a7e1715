package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

var IsValidLogLevel validator.Func = func(fl validator.FieldLevel) bool {
	_, err := logrus.ParseLevel(fl.Field().String())
	return err == nil
}
