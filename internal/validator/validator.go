package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"
	optsGenValidator "github.com/kazhuravlev/options-gen/pkg/validator"
)

var Validator = validator.New()

func init() {
	optsGenValidator.Set(Validator)

	// url_prefix: absolute URL path without a trailing slash, e.g. "/api".
	_ = Validator.RegisterValidation("url_prefix", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return len(s) > 1 &&
			strings.HasPrefix(s, "/") &&
			!strings.HasSuffix(s, "/") &&
			!strings.ContainsAny(s, "?# ")
	})
}
