package utils

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("clock", validateClock)
	validate.RegisterValidation("booking_date", validateBookingDate)
	validate.RegisterValidation("gender", validateGender)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateClock(fl validator.FieldLevel) bool {
	re := regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d(:[0-5]\d)?$`)
	return re.MatchString(fl.Field().String())
}

func validateBookingDate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "MALE" || value == "FEMALE" || value == "OTHER"
}
