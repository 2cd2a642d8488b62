package cmd

import (
	"context"

	"github.com/hance08/fbar/internal/service"
	"github.com/hance08/fbar/internal/ui/views"
	"github.com/spf13/cobra"
)

type accountsRunner struct {
	svc *service.AccountService
}

func NewAccountsCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"ls"},
		Short:   "List all accounts with their current cleared balances",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &accountsRunner{
				svc: rt.app.Service.Account,
			}
			return runner.Run(cmd.Context())
		},
	}
}

func (r *accountsRunner) Run(ctx context.Context) error {
	accounts, err := r.svc.List(ctx)
	if err != nil {
		return err
	}

	return views.NewAccountListView().Render(accounts)
}
