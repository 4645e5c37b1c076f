package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// password returns the -pass value when given, otherwise prompts on the
// terminal without echo.
func (app *App) password(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}

	fmt.Fprint(app.out, "Enter password: ")
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(app.out)
	if err != nil {
		return "", err
	}

	return string(pw), nil
}
