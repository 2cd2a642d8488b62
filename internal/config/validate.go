package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hance08/fbar/internal/constants"
	"github.com/shopspring/decimal"
	"go.uber.org/zap/zapcore"
)

var ErrInvalid = errors.New("invalid configuration")

type FieldError struct {
	Field   string
	Problem string
}

// ValidationError collects every invalid field found in one pass.
type ValidationError struct {
	Problems []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Field, p.Problem))
	}
	return fmt.Sprintf("%s: %s", ErrInvalid, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

type validator struct {
	problems []FieldError
}

func (v *validator) add(field, format string, args ...any) {
	v.problems = append(v.problems, FieldError{Field: field, Problem: fmt.Sprintf(format, args...)})
}

func (v *validator) err() error {
	if len(v.problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: v.problems}
}

// ValidateSource checks the settings needed to reach the account source.
func (c *Config) ValidateSource() error {
	v := &validator{}
	c.checkSource(v)
	return v.err()
}

// ValidateReport checks everything a report run needs, including the source.
func (c *Config) ValidateReport(now time.Time) error {
	v := &validator{}

	switch {
	case c.Year == 0:
		v.add("year", "is required")
	case c.Year < 1900 || c.Year > now.Year():
		v.add("year", "must be between 1900 and %d, got %d", now.Year(), c.Year)
	}

	if strings.TrimSpace(c.ConversionRate) == "" {
		v.add("conversion_rate", "is required")
	} else if rate, err := decimal.NewFromString(strings.TrimSpace(c.ConversionRate)); err != nil {
		v.add("conversion_rate", "%q is not a number", c.ConversionRate)
	} else if !rate.IsPositive() {
		v.add("conversion_rate", "must be positive, got %s", rate)
	}

	if strings.TrimSpace(c.Currency.Source.Code) == "" {
		v.add("currency.source.code", "is required")
	}
	if strings.TrimSpace(c.Currency.Reporting.Code) == "" {
		v.add("currency.reporting.code", "is required")
	}

	c.checkSource(v)

	return v.err()
}

func (c *Config) checkSource(v *validator) {
	switch c.Source.Kind {
	case constants.SourceYNAB:
		if strings.TrimSpace(c.Token) == "" {
			v.add("token", "is required when source.kind is %q", constants.SourceYNAB)
		}
		if c.YNAB.BaseURL == "" {
			v.add("ynab.base_url", "is required")
		}
		if c.YNAB.Timeout <= 0 {
			v.add("ynab.timeout", "must be positive")
		}
	case constants.SourceSQLite:
	default:
		v.add("source.kind", "must be %q or %q, got %q", constants.SourceYNAB, constants.SourceSQLite, c.Source.Kind)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		v.add("log.level", "unknown level %q", c.Log.Level)
	}
}
