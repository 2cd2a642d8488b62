package constants

const (
	CentsPerUnit      = 100
	MilliunitsPerUnit = 1000
)

const (
	SourceYNAB   = "ynab"
	SourceSQLite = "sqlite"
)

const (
	DefaultYNABBaseURL = "https://api.ynab.com/v1"
	DefaultDBName      = "fbar.db"
	AppDirName         = "fbar"
)
