package prompts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/shopspring/decimal"
)

type InitAnswers struct {
	Year           int
	ConversionRate string
	Token          string
	SourceCode     string
	ReportingCode  string
}

// PromptInitConfig asks for the values a report run needs. defaults
// pre-fill the form.
func PromptInitConfig(defaults InitAnswers) (InitAnswers, error) {
	year := ""
	if defaults.Year != 0 {
		year = strconv.Itoa(defaults.Year)
	}
	rate := defaults.ConversionRate
	token := defaults.Token
	sourceCode := defaults.SourceCode
	reportingCode := defaults.ReportingCode

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Report year").
				Description("Calendar year to find the maximum balances for").
				Value(&year).
				Validate(ValidateYear),
			huh.NewInput().
				Title("YNAB personal access token").
				Description("Stored in the config file; FBAR_TOKEN overrides it").
				EchoMode(huh.EchoModePassword).
				Value(&token).
				Validate(required("token")),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Source currency code").
				Value(&sourceCode).
				Validate(required("currency code")),
			huh.NewInput().
				Title("Reporting currency code").
				Value(&reportingCode).
				Validate(required("currency code")),
			huh.NewInput().
				Title("Conversion rate").
				Description("Units of source currency per one unit of reporting currency").
				Value(&rate).
				Validate(ValidateRate),
		),
	)

	if err := form.Run(); err != nil {
		return InitAnswers{}, err
	}

	y, _ := strconv.Atoi(strings.TrimSpace(year))

	return InitAnswers{
		Year:           y,
		ConversionRate: strings.TrimSpace(rate),
		Token:          strings.TrimSpace(token),
		SourceCode:     strings.ToUpper(strings.TrimSpace(sourceCode)),
		ReportingCode:  strings.ToUpper(strings.TrimSpace(reportingCode)),
	}, nil
}

func ValidateYear(s string) error {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return errors.New("year must be a number, e.g. 2021")
	}
	if y < 1900 {
		return fmt.Errorf("year %d is too early", y)
	}
	return nil
}

func ValidateRate(s string) error {
	rate, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return errors.New("rate must be a number, e.g. 0.846")
	}
	if !rate.IsPositive() {
		return errors.New("rate must be positive")
	}
	return nil
}

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}
