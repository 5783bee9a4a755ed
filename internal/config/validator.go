package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks a configuration struct against its tags.
func Validate(cfg *Config) error {
	return validateStruct(cfg, ErrMsgInvalidConfig)
}

func validateStruct(s any, msg string) error {
	err := structValidator().Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%s: %w", msg, err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		if e.Param() != "" {
			fields = append(fields, fmt.Sprintf("%s (%s=%s)", e.Namespace(), e.Tag(), e.Param()))
		} else {
			fields = append(fields, fmt.Sprintf("%s (%s)", e.Namespace(), e.Tag()))
		}
	}
	return fmt.Errorf("%s: %s", msg, strings.Join(fields, ", "))
}

// Warnings reports non-fatal configuration issues worth logging.
func Warnings(cfg *Config) []string {
	var warnings []string

	if _, err := os.Stat(cfg.DataDir); err != nil {
		warnings = append(warnings, fmt.Sprintf(WarnDataDirMissing, cfg.DataDir))
	}
	if _, err := os.Stat(cfg.OutputDir); err != nil {
		warnings = append(warnings, fmt.Sprintf(WarnOutputDirAbsent, cfg.OutputDir))
	}

	return warnings
}
