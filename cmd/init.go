package cmd

import (
	"fmt"
	"time"

	"github.com/hance08/fbar/internal/ui/prompts"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type initRunner struct {
	rt *runtime
}

func NewInitCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:         "init",
		Short:       "Interactively write the report settings to the config file",
		Annotations: map[string]string{skipApp: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &initRunner{rt: rt}
			return runner.Run()
		},
	}
}

func (r *initRunner) Run() error {
	cfg := r.rt.cfg

	if cfg.Token != "" && cfg.Year != 0 && cfg.ConversionRate != "" {
		overwrite, err := prompts.PromptConfirm("A configuration already exists. Overwrite it?", false)
		if err != nil {
			return err
		}
		if !overwrite {
			pterm.Info.Println("Configuration left unchanged")
			return nil
		}
	}

	defaults := prompts.InitAnswers{
		Year:           cfg.Year,
		ConversionRate: cfg.ConversionRate,
		Token:          cfg.Token,
		SourceCode:     cfg.Currency.Source.Code,
		ReportingCode:  cfg.Currency.Reporting.Code,
	}
	if defaults.Year == 0 {
		defaults.Year = time.Now().Year() - 1
	}

	answers, err := prompts.PromptInitConfig(defaults)
	if err != nil {
		return err
	}

	viper.Set("year", answers.Year)
	viper.Set("conversion_rate", answers.ConversionRate)
	viper.Set("token", answers.Token)
	viper.Set("currency.source.code", answers.SourceCode)
	viper.Set("currency.reporting.code", answers.ReportingCode)

	if err := viper.WriteConfig(); err != nil {
		return fmt.Errorf("failed to save config to file: %w", err)
	}

	pterm.Success.Printf("Configuration saved to %s\n", viper.ConfigFileUsed())

	return nil
}
