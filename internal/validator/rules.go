package validator

import (
	"log"
	"regexp"

	"realestate_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// North American numbers with an optional country code, e.g. "+1 (555) 123-4567".
var phonePattern = regexp.MustCompile(`^(\+\d{1,3}( )?)?((\(\d{3}\))|\d{3})[- .]?\d{3}[- .]?\d{4}$`)

// registerCustomRules registers the domain validation tags on v.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-type", validateUserType)
	mustRegister("is-property-type", validatePropertyType)
	mustRegister("is-phone", validatePhone)
}

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empty values
	}
	return models.UserType(value).IsValid()
}

func validatePropertyType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.PropertyType(value).IsValid()
}

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return phonePattern.MatchString(value)
}
