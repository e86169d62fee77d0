package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report fields by their configuration key
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// Validate checks every configured region. All problems are reported
// together.
func (cfg *File) Validate() error {
	var errs error
	for _, region := range cfg.Role.Regions() {
		if strings.TrimSpace(region) == "" {
			errs = multierror.Append(errs, fmt.Errorf("role: region name is required"))
			continue
		}
		if err := validate.Struct(cfg.Role[region]); err != nil {
			errs = multierror.Append(errs, formatValidationError("role."+region, err))
		}
	}
	return errs
}

func formatValidationError(prefix string, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	var messages []string
	for _, e := range validationErrors {
		key := prefix + "." + e.Field()
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required but not provided", key))
		case "startswith":
			messages = append(messages, fmt.Sprintf("%s must start with %q, got %q", key, e.Param(), e.Value()))
		default:
			messages = append(messages, fmt.Sprintf("%s failed validation: %s", key, e.Tag()))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}
