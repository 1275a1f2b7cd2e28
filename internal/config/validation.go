// Package config provides configuration management for the PropsEdge pricing
// and statistics pipelines.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	// Registration only fails for empty tags, which are all literals here
	_ = v.RegisterValidation("environment", validateEnvironment)
	_ = v.RegisterValidation("loglevel", validateLogLevel)
	_ = v.RegisterValidation("refmode", validateReferenceMode)

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateReferenceMode validates the edge comparison mode
func validateReferenceMode(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "book", "second_best", "sharp_mean", "model":
		return true
	default:
		return false
	}
}

// validateCrossField performs cross-field validations
func validateCrossField(cfg *Config) error {
	// Grade tiers must be strictly ordered or grading is ambiguous
	t := cfg.Pricing.GradeThresholds
	if t.A <= t.B || t.B <= t.C {
		return fmt.Errorf("grade thresholds must be strictly decreasing: a=%.2f b=%.2f c=%.2f", t.A, t.B, t.C)
	}

	if cfg.Pricing.ReferenceMode == "book" && cfg.Pricing.ReferenceBook == "" {
		return fmt.Errorf("reference_mode 'book' requires reference_book to be set")
	}

	if cfg.Staking.MaxStake > 0 && cfg.Staking.MaxStake > cfg.Staking.Bankroll {
		return fmt.Errorf("max_stake cannot exceed bankroll")
	}

	return nil
}

// formatValidationErrors formats validation errors into a readable string
func formatValidationErrors(validationErrors validator.ValidationErrors) error {
	var errMsg string
	for _, fieldError := range validationErrors {
		field := fieldError.StructField()
		tag := fieldError.Tag()
		value := fieldError.Value()

		switch tag {
		case "required":
			errMsg += fmt.Sprintf("- Field '%s' is required\n", field)
		case "min", "max":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: %s constraint violated\n", field, tag)
		case "gt", "gte", "lt", "lte":
			errMsg += fmt.Sprintf("- Field '%s' validation failed: numeric constraint %s violated\n", field, tag)
		case "environment":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: development, staging, production\n", field)
		case "loglevel":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: debug, info, warn, error\n", field)
		case "refmode":
			errMsg += fmt.Sprintf("- Field '%s' must be one of: book, second_best, sharp_mean, model\n", field)
		default:
			errMsg += fmt.Sprintf("- Field '%s' failed validation: %s (got '%v')\n", field, tag, value)
		}
	}
	return fmt.Errorf("configuration validation failed:\n%s", errMsg)
}
