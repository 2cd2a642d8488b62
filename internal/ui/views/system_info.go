package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath    string
	DBPath        string
	DBExists      bool // true = Found, false = Not Found
	SourceKind    string
	TokenSet      bool
	Year          int
	Rate          string
	ReportingPair string
	AppDataDir    string
}

func RenderSystemInfo(data SystemInfoItem) error {
	dbStatus := pterm.Green("Found")
	if !data.DBExists {
		dbStatus = pterm.Red("Not Found (Will be created)")
	}

	token := pterm.Green("Set")
	if !data.TokenSet {
		token = pterm.Red("Missing")
	}

	year := "(not set)"
	if data.Year != 0 {
		year = pterm.Sprint(data.Year)
	}

	rate := data.Rate
	if rate == "" {
		rate = "(not set)"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Database Path", data.DBPath},
		{"Database Status", dbStatus},
		{"Account Source", data.SourceKind},
		{"YNAB Token", token},
		{"Report Year", year},
		{"Conversion Rate", rate},
		{"Currencies", data.ReportingPair},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
