package constants

const (
	// Date Layout
	DateFormat = "2006-01-02"

	// Placeholder for report cells of accounts without activity in the year
	NoActivityCell = "-"
)
