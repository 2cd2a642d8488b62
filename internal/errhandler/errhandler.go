package errhandler

import (
	"errors"
	"os"
	"unicode"

	"github.com/charmbracelet/huh"
	"github.com/hance08/fbar/internal/config"
	"github.com/hance08/fbar/internal/source"
	"github.com/pterm/pterm"
)

// ExitCode maps an error returned by a command onto the process exit code.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, huh.ErrUserAborted) {
		return 0
	}
	return 1
}

// HandleError prints err the way the CLI reports failures and exits.
func HandleError(err error) {
	if errors.Is(err, huh.ErrUserAborted) {
		pterm.Warning.Println("Operation Cancelled")
		os.Exit(0)
	}

	pterm.Error.Println(Message(err))

	var verr *config.ValidationError
	if errors.As(err, &verr) {
		for _, p := range verr.Problems {
			pterm.Println("  - " + p.Field + ": " + p.Problem)
		}
	}
	if errors.Is(err, source.ErrUnauthorized) {
		pterm.Info.Println("Check the token in your config file or FBAR_TOKEN")
	}

	os.Exit(ExitCode(err))
}

// Message returns err's text with its first letter capitalized.
func Message(err error) string {
	var verr *config.ValidationError
	if errors.As(err, &verr) {
		return capitalize(config.ErrInvalid.Error())
	}
	return capitalize(err.Error())
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
