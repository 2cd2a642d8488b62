package views

import (
	"github.com/hance08/fbar/internal/constants"
	"github.com/hance08/fbar/internal/service"
	"github.com/hance08/fbar/internal/utils"
	"github.com/pterm/pterm"
)

type MaxBalanceReportView struct{}

func NewMaxBalanceReportView() *MaxBalanceReportView {
	return &MaxBalanceReportView{}
}

// TableData builds the uncolored report table, header row first.
func (v *MaxBalanceReportView) TableData(report *service.Report) pterm.TableData {
	tableData := pterm.TableData{{
		"Name",
		"Max Balance " + report.Source.Code,
		"Max Balance " + report.Reporting.Code,
		"Start Date",
		"End Date",
	}}

	for _, row := range report.Rows {
		if row.NoActivity() {
			tableData = append(tableData, []string{
				row.Name,
				constants.NoActivityCell,
				constants.NoActivityCell,
				constants.NoActivityCell,
				constants.NoActivityCell,
			})
			continue
		}

		tableData = append(tableData, []string{
			row.Name,
			utils.FormatMinor(row.Result.Max, report.Source.Symbol),
			utils.FormatMinor(row.MaxReporting, report.Reporting.Symbol),
			row.Result.Start.Format(constants.DateFormat),
			row.Result.End.Format(constants.DateFormat),
		})
	}

	return tableData
}

func (v *MaxBalanceReportView) Render(report *service.Report) error {
	pterm.DefaultSection.Printf("Maximum Account Balances %d", report.Year)

	tableData := v.TableData(report)
	for i := 1; i < len(tableData); i++ {
		if tableData[i][1] == constants.NoActivityCell {
			tableData[i][0] = pterm.Gray(tableData[i][0])
		}
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(tableData).Render(); err != nil {
		return err
	}

	inactive := 0
	for _, row := range report.Rows {
		if row.NoActivity() {
			inactive++
		}
	}

	pterm.Info.Printf("Total: %d accounts, rate %s %s per %s\n",
		len(report.Rows), report.Rate.String(), report.Source.Code, report.Reporting.Code)
	if inactive > 0 {
		pterm.Warning.Printf("%d accounts had no activity in %d\n", inactive, report.Year)
	}

	return nil
}
