package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/hance08/fbar/internal/app"
	"github.com/hance08/fbar/internal/config"
	"github.com/hance08/fbar/internal/errhandler"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// annotation set on commands that only need the configuration
const skipApp = "skip-app"

type rootFlags struct {
	cfgFile string
	verbose bool
}

// runtime is filled in before a command runs; commands hold a pointer to it
// because flags are only parsed once cobra starts executing.
type runtime struct {
	migrations fs.FS
	cfg        *config.Config
	app        *app.App
	cleanup    func()
}

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := NewRootCmd(migrations)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		errhandler.HandleError(err)
	}
}

func NewRootCmd(migrations fs.FS) *cobra.Command {
	flags := &rootFlags{}
	rt := &runtime{migrations: migrations}

	rootCmd := &cobra.Command{
		Use:   "fbar",
		Short: "fbar reports the maximum balance of each foreign account in a year",
		Long: `fbar reads accounts and transactions from YNAB (or a local mirror),
rebuilds each account's balance history and prints the maximum balance held
during the report year, converted into the reporting currency.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(cmd, flags); err != nil {
				return err
			}

			cfg, err := config.Load(viper.GetViper())
			if err != nil {
				return err
			}
			rt.cfg = cfg

			if cmd.Annotations[skipApp] == "true" {
				return nil
			}

			application, cleanup, err := app.NewApp(cfg, rt.migrations)
			if err != nil {
				return err
			}
			rt.app = application
			rt.cleanup = cleanup

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.cleanup != nil {
				rt.cleanup()
			}
		},
	}

	reportCmd := NewReportCmd(rt)
	rootCmd.RunE = reportCmd.RunE

	rootCmd.PersistentFlags().StringVarP(&flags.cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log requests and computations to stderr")
	rootCmd.PersistentFlags().IntP("year", "y", 0, "report year (overrides config)")
	rootCmd.PersistentFlags().StringP("rate", "r", "", "conversion rate, source currency per reporting currency (overrides config)")
	rootCmd.PersistentFlags().String("source", "", "account source: ynab or sqlite (overrides config)")

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(NewAccountsCmd(rt))
	rootCmd.AddCommand(NewSyncCmd(rt))
	rootCmd.AddCommand(NewInitCmd(rt))
	rootCmd.AddCommand(NewInfoCmd(rt))

	return rootCmd
}

func initConfig(cmd *cobra.Command, flags *rootFlags) error {
	viper.Reset()
	config.SetDefaults(viper.GetViper())

	if flags.cfgFile != "" {
		viper.SetConfigFile(flags.cfgFile)
	} else {
		appDir, err := app.AppDataDir()
		if err != nil {
			return fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	viper.SetEnvPrefix("FBAR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // allow using environment variables to override

	if err := viper.ReadInConfig(); err != nil {

		if flags.cfgFile != "" {
			return fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("config file error: %w", err)
		}
	}

	pf := cmd.Flags()
	for key, name := range map[string]string{
		"year":            "year",
		"conversion_rate": "rate",
		"source.kind":     "source",
	} {
		if f := pf.Lookup(name); f != nil && f.Changed {
			if err := viper.BindPFlag(key, f); err != nil {
				return err
			}
		}
	}
	if flags.verbose {
		viper.Set("log.level", "debug")
	}

	return nil
}

// createDefaultConfig writes the registered defaults to config.yaml when the
// file does not exist yet.
func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
