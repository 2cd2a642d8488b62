package cmd

import (
	"fmt"
	"os"

	"github.com/hance08/fbar/internal/app"
	"github.com/hance08/fbar/internal/config"
	"github.com/hance08/fbar/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	cfg *config.Config
}

func NewInfoCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:         "info",
		Short:       "Display application information",
		Long:        `Display current configuration, database path, and account source.`,
		Annotations: map[string]string{skipApp: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				cfg: rt.cfg,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	configPath := r.cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	dbPath, err := app.DBPath(r.cfg)
	if err != nil {
		return err
	}

	dbExists := false
	if _, err := os.Stat(dbPath); err == nil {
		dbExists = true
	}

	items := views.SystemInfoItem{
		ConfigPath: configPath,
		DBPath:     dbPath,
		DBExists:   dbExists,
		SourceKind: r.cfg.Source.Kind,
		TokenSet:   r.cfg.Token != "",
		Year:       r.cfg.Year,
		Rate:       r.cfg.ConversionRate,
		ReportingPair: fmt.Sprintf("%s -> %s",
			r.cfg.Currency.Source.Code, r.cfg.Currency.Reporting.Code),
		AppDataDir: getAppDataDirOrUnknown(),
	}

	if err := views.RenderSystemInfo(items); err != nil {
		return err
	}
	return nil
}

func getAppDataDirOrUnknown() string {
	dir, err := app.AppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
