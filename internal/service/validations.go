package service

import (
	"errors"
	"fmt"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
	errorvalues "github.com/limbo/engagement/internal/error_values"
	"github.com/limbo/engagement/pkg/entity"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

const maxStreamKeyLen = 64

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("alphanum_underscore", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			for i, char := range value {
				// Cannot be started with a digit or underscore
				if i == 0 && (unicode.IsDigit(char) || char == '_') {
					return false
				}
				// Digits, letters or underscore
				if !unicode.IsLetter(char) && !unicode.IsDigit(char) && char != '_' {
					return false
				}
			}
			return true
		})
		// Lowercase latin letters, digits, underscore and dash
		validate.RegisterValidation("stream_key", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if value == "" || len(value) > maxStreamKeyLen {
				return false
			}
			for _, char := range value {
				if (char < 'a' || char > 'z') && (char < '0' || char > '9') && char != '_' && char != '-' {
					return false
				}
			}
			return true
		})
	})
}

// validateStruct joins every field error under kind.
func validateStruct(s any, kind error) error {
	InitValidator()
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		err = kind
		for _, fieldErr := range validationErrors {
			err = errors.Join(err, fieldErr)
		}
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}

func ValidateStreakConfiguration(cfg entity.StreakConfiguration) error {
	if err := validateStruct(cfg, errorvalues.ErrInvalidConfiguration); err != nil {
		return err
	}
	if _, err := cfg.Location(); err != nil {
		return fmt.Errorf("%w: %w", errorvalues.ErrInvalidConfiguration, err)
	}
	return nil
}

func ValidateExperienceConfiguration(cfg entity.ExperienceConfiguration) error {
	if err := validateStruct(cfg, errorvalues.ErrInvalidConfiguration); err != nil {
		return err
	}
	if _, err := cfg.Location(); err != nil {
		return fmt.Errorf("%w: %w", errorvalues.ErrInvalidConfiguration, err)
	}
	return nil
}

func ValidateProgressConfiguration(cfg entity.ProgressConfiguration) error {
	return validateStruct(cfg, errorvalues.ErrInvalidConfiguration)
}
