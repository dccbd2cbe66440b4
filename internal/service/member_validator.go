package service

import (
	stderrors "errors"
	"regexp"

	"github.com/go-playground/validator/v10"

	"gymcloud/internal/errors"
	"gymcloud/internal/model"
)

var (
	emailRegex      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex      = regexp.MustCompile(`^(\+39)?[0-9]{10}$`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// MemberValidator validates create requests.
type MemberValidator struct {
	validate *validator.Validate
}

// NewMemberValidator creates a validator with the member_email and
// member_phone tags registered.
func NewMemberValidator() *MemberValidator {
	v := validator.New()
	_ = v.RegisterValidation("member_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
	_ = v.RegisterValidation("member_phone", func(fl validator.FieldLevel) bool {
		return IsValidPhone(fl.Field().String())
	})
	return &MemberValidator{validate: v}
}

// ValidateCreate checks required fields first, then the email format, then
// the phone format, and returns the first failing rule in that order.
func (v *MemberValidator) ValidateCreate(req *model.CreateMemberRequest) error {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return err
	}

	var emailErr, phoneErr bool
	for _, fe := range fieldErrs {
		switch {
		case fe.Tag() == "required":
			return errors.ErrNameEmailRequired
		case fe.Field() == "Email":
			emailErr = true
		case fe.Field() == "Phone":
			phoneErr = true
		}
	}
	if emailErr {
		return errors.ErrInvalidEmail
	}
	if phoneErr {
		return errors.ErrInvalidPhone
	}
	return err
}

// IsValidEmail performs a basic local@domain.tld check.
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone accepts an optional +39 prefix followed by exactly 10 digits,
// ignoring whitespace anywhere in the number.
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(NormalizePhone(phone))
}

// NormalizePhone strips all whitespace.
func NormalizePhone(phone string) string {
	return whitespaceRegex.ReplaceAllString(phone, "")
}
