package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/fbar/internal/constants"
	"github.com/hance08/fbar/internal/service"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type syncFlags struct {
	Since string
}

type syncRunner struct {
	svc   *service.Service
	flags *syncFlags
}

func NewSyncCmd(rt *runtime) *cobra.Command {
	flags := &syncFlags{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Copy YNAB accounts and transactions into the local ledger",
		Long: `Copy every account and its cleared transactions from YNAB into the
local SQLite ledger so that reports can run offline with --source sqlite.
Only the window starting at --since is replaced.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &syncRunner{
				svc:   rt.app.Service,
				flags: flags,
			}
			return runner.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&flags.Since, "since", "", "first date to copy, YYYY-MM-DD (default: January 1 of the report year)")

	return cmd
}

func (r *syncRunner) Run(ctx context.Context) error {
	since, err := r.sinceDate()
	if err != nil {
		return err
	}

	spinner, _ := pterm.DefaultSpinner.Start("Syncing accounts from YNAB...")

	res, err := r.svc.Sync.Sync(ctx, since)
	if err != nil {
		if spinner != nil {
			spinner.Fail("Sync failed")
		}
		return err
	}

	msg := fmt.Sprintf("Synced %d accounts and %d transactions", res.Accounts, res.Transactions)
	if spinner != nil {
		spinner.Success(msg)
	} else {
		pterm.Success.Println(msg)
	}

	return nil
}

func (r *syncRunner) sinceDate() (time.Time, error) {
	if r.flags.Since != "" {
		since, err := time.Parse(constants.DateFormat, r.flags.Since)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --since date %q, expected YYYY-MM-DD", r.flags.Since)
		}
		return since, nil
	}

	if year := r.svc.Config.Year; year != 0 {
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, nil
}
