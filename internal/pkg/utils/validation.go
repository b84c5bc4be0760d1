package utils

import (
	"mommycare-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	specialCharRegex = regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar)
	uppercaseRegex   = regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase)
	httpURLRegex     = regexp.MustCompile(constvars.RegexHTTPURL)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("date_only", validateDateOnly)
	validate.RegisterValidation("request_type", validateRequestType)
	validate.RegisterValidation("preferred_time", validatePreferredTime)
	validate.RegisterValidation("product_category", validateProductCategory)
	validate.RegisterValidation("http_url", validateHTTPURL)
	validate.RegisterValidation("user_role", validateUserRole)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	return len(password) >= 8 &&
		specialCharRegex.MatchString(password) &&
		uppercaseRegex.MatchString(password)
}

func validateDateOnly(fl validator.FieldLevel) bool {
	_, err := ParseDateOnly(fl.Field().String())
	return err == nil
}

func validateRequestType(fl validator.FieldLevel) bool {
	return containsString(constvars.ClinicVisitRequestTypes, fl.Field().String())
}

func validatePreferredTime(fl validator.FieldLevel) bool {
	return containsString(constvars.PreferredTimeSlots, fl.Field().String())
}

func validateProductCategory(fl validator.FieldLevel) bool {
	return containsString(constvars.ProductCategories, fl.Field().String())
}

func validateHTTPURL(fl validator.FieldLevel) bool {
	return httpURLRegex.MatchString(fl.Field().String())
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RoleMom, constvars.RoleDoctor, constvars.RoleMidwife, constvars.RoleServiceProvider:
		return true
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
