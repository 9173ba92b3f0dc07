// Package validation checks request DTOs before they are sent to the API.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/stockdesk/internal/common"
	"github.com/go-playground/validator/v10"
)

// specialChars is the set accepted as "special" by the strong password rule.
const specialChars = `!@#$%^&*()_+-=[]{};':"\|,.<>/?`

// signupChars are the only symbols allowed in a sign-up password.
const signupChars = `@$!%*#?&`

var personNameRe = regexp.MustCompile(`^[a-zA-ZÀ-ÿ\s]+$`)

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return lowerFirst(fld.Name)
		}
		return name
	})

	// Registration only fails on an empty tag name or nil func.
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return StrongPasswordProblem(fl.Field().String()) == ""
	})
	_ = v.RegisterValidation("signuppassword", func(fl validator.FieldLevel) bool {
		return IsSignupPassword(fl.Field().String())
	})
	_ = v.RegisterValidation("personname", func(fl validator.FieldLevel) bool {
		return personNameRe.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Validate checks s and returns Errors with one entry per failing field.
func (v *Validator) Validate(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

// FieldError describes one failed rule.
type FieldError struct {
	Field   string
	Tag     string
	Message string
}

type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Message
	}
	return strings.Join(msgs, "; ")
}

// Is reports a password confirmation mismatch as common.ErrPasswordMismatch.
func (e Errors) Is(target error) bool {
	if target != common.ErrPasswordMismatch {
		return false
	}
	for _, fe := range e {
		if fe.Tag == "eqfield" {
			return true
		}
	}
	return false
}

// Field returns the message for the named field, if it failed.
func (e Errors) Field(name string) (string, bool) {
	for _, fe := range e {
		if fe.Field == name {
			return fe.Message, true
		}
	}
	return "", false
}

func message(fe validator.FieldError) string {
	field := fe.Field()

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "eqfield":
		return common.ErrPasswordMismatch.Error()
	case "strongpassword":
		return fmt.Sprintf("%s %s", field, StrongPasswordProblem(fe.Value().(string)))
	case "signuppassword":
		return fmt.Sprintf("%s must have at least 6 characters with letters and numbers (symbols allowed: %s)", field, signupChars)
	case "personname":
		return fmt.Sprintf("%s may only contain letters and spaces", field)
	default:
		return fmt.Sprintf("%s failed validation for %s", field, fe.Tag())
	}
}

// StrongPasswordProblem returns "" when pw has at least 6 characters, a digit
// and a special character, otherwise a description of the first missing
// requirement.
func StrongPasswordProblem(pw string) string {
	switch {
	case len([]rune(pw)) < 6:
		return "must have at least 6 characters"
	case !strings.ContainsFunc(pw, unicode.IsDigit):
		return "must include at least one number"
	case !strings.ContainsAny(pw, specialChars):
		return "must include at least one special character"
	}
	return ""
}

// IsSignupPassword reports whether pw has 6+ characters drawn from letters,
// digits and signupChars, with at least one letter and one digit.
func IsSignupPassword(pw string) bool {
	if len(pw) < 6 {
		return false
	}
	var letter, digit bool
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
			letter = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(signupChars, r):
		default:
			return false
		}
	}
	return letter && digit
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
