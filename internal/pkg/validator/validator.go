package validator

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	api "github.com/nasafacts/community-service/internal/generated"
	"github.com/nasafacts/community-service/internal/model"
)

// Validator checks request bodies before they reach the domain services.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return &Validator{v: v}
}

func (v *Validator) ValidateSendMessage(req *api.SendMessageRequest) error {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return fmt.Errorf("%w: content cannot be empty", model.ErrValidation)
	}

	if utf8.RuneCountInString(content) > model.MaxMessageLength {
		return fmt.Errorf("%w: content exceeds maximum length of %d characters", model.ErrValidation, model.MaxMessageLength)
	}

	return nil
}

// ValidateUpdateProfile trims the display name and parses the optional birthdate.
func (v *Validator) ValidateUpdateProfile(req *api.UpdateProfileRequest) (model.ProfileUpdate, error) {
	req.DisplayName = strings.TrimSpace(req.DisplayName)

	if err := v.v.Struct(req); err != nil {
		return model.ProfileUpdate{}, formatError(err)
	}

	update := model.ProfileUpdate{DisplayName: req.DisplayName}

	if req.Birthdate != nil && *req.Birthdate != "" {
		birthdate, err := time.Parse(time.DateOnly, *req.Birthdate)
		if err != nil {
			return model.ProfileUpdate{}, fmt.Errorf("%w: birthdate must be YYYY-MM-DD", model.ErrValidation)
		}
		update.Birthdate = &birthdate
	}

	return update, nil
}

func formatError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fmt.Errorf("%w: %w", model.ErrValidation, err)
	}

	fields := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		fields = append(fields, e.Field()+" "+friendlyMessage(e))
	}
	sort.Strings(fields)

	return fmt.Errorf("%w: %s", model.ErrValidation, strings.Join(fields, "; "))
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "datetime":
		return "must be a date in " + e.Param() + " format"
	default:
		return "is invalid"
	}
}
