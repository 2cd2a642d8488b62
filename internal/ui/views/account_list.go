package views

import (
	"github.com/hance08/fbar/internal/model"
	"github.com/hance08/fbar/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct{}

func NewAccountListView() *AccountListView {
	return &AccountListView{}
}

func (v *AccountListView) Render(accounts []model.Account) error {
	headers := []string{"Name", "Currency", "Balance", "Status"}
	tableData := pterm.TableData{headers}

	for _, acc := range accounts {
		balance := utils.FormatFromCents(acc.Balance)

		var coloredAccount, coloredBalance, status string
		switch {
		case acc.Closed: // Closed - Gray
			coloredAccount = pterm.Gray(acc.Name)
			coloredBalance = pterm.Gray(balance)
			status = pterm.Gray("Closed")
		case acc.Balance < 0: // Overdrawn - Red
			coloredAccount = pterm.Red(acc.Name)
			coloredBalance = pterm.Red(balance)
			status = "Open"
		default:
			coloredAccount = pterm.Green(acc.Name)
			coloredBalance = pterm.Green(balance)
			status = "Open"
		}
		tableData = append(tableData, []string{coloredAccount, acc.Currency, coloredBalance, status})
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d accounts\n", len(accounts))

	return nil
}
