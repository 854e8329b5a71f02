package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	appErrors "postal-pickup-api/pkg/errors"
)

var validate *validator.Validate

// Patterns shared by input validation and persistence constraints: Sri
// Lankan local phone numbers and 5-digit postal codes.
var (
	phonePattern      = regexp.MustCompile(`^(\+94|0)[0-9]{9}$`)
	postalCodePattern = regexp.MustCompile(`^[0-9]{5}$`)
)

func init() {
	validate = validator.New()

	register := map[string]validator.Func{
		"sl_phone":       validatePhone,
		"postal_code":    validatePostalCode,
		"service_type":   oneOfValues("letter", "document", "package", "goods"),
		"priority":       oneOfValues("standard", "express", "urgent"),
		"pickup_time":    oneOfValues("morning", "afternoon", "evening"),
		"pickup_status":  oneOfValues("pending", "confirmed", "picked_up", "in_transit", "delivered", "cancelled"),
		"payment_method": oneOfValues("cash", "card", "bank_transfer", "mobile_wallet"),
		"user_role":      oneOfValues("customer", "operator", "admin"),
	}
	for tag, fn := range register {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(fmt.Sprintf("register validation %q: %v", tag, err))
		}
	}
}

// ValidateStruct runs tag validation and converts failures into a
// field-level AppError.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return appErrors.NewAppError(appErrors.CodeValidation, "Invalid input", err)
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		fields[fieldPath(fe)] = fieldMessage(fe)
	}
	return appErrors.NewValidationError(fields)
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}

func validatePostalCode(fl validator.FieldLevel) bool {
	return postalCodePattern.MatchString(fl.Field().String())
}

func oneOfValues(values ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		for _, allowed := range values {
			if v == allowed {
				return true
			}
		}
		return false
	}
}

// fieldPath drops the root struct name: "CreateRequest.PickupAddress.City"
// becomes "PickupAddress.City".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "email":
		return "must be a valid email address"
	case "sl_phone":
		return "must be a valid Sri Lankan phone number"
	case "postal_code":
		return "must be a valid 5-digit postal code"
	case "service_type":
		return "must be one of letter, document, package, goods"
	case "priority":
		return "must be one of standard, express, urgent"
	case "pickup_time":
		return "must be one of morning, afternoon, evening"
	case "pickup_status":
		return "must be a valid pickup status"
	case "payment_method":
		return "must be one of cash, card, bank_transfer, mobile_wallet"
	case "user_role":
		return "must be one of customer, operator, admin"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// IsValidEmail reports whether email looks like an address.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(strings.ToLower(email))
	re := regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)
	return re.MatchString(email)
}
