package cmd

import (
	"context"

	"github.com/hance08/fbar/internal/service"
	"github.com/hance08/fbar/internal/ui/views"
	"github.com/spf13/cobra"
)

type reportRunner struct {
	svc  *service.Service
	view *views.MaxBalanceReportView
}

func NewReportCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print the maximum balance of every account for the report year",
		Long: `Print one row per account with the maximum balance held during the
report year, its value in the reporting currency and the date range over which
it held. Accounts without transactions in the year are listed with "-".`,
		Example: `  fbar report --year 2021 --rate 0.846
  FBAR_TOKEN=... fbar`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &reportRunner{
				svc:  rt.app.Service,
				view: views.NewMaxBalanceReportView(),
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *reportRunner) Run(ctx context.Context) error {
	report, err := r.svc.Report.Build(ctx)
	if err != nil {
		return err
	}

	return r.view.Render(report)
}
