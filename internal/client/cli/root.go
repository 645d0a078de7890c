package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus() string {
	if a.userName != "" {
		return fmt.Sprintf("(%s)", a.userName)
	}
	return ""
}

// Root drives the interactive session: resume a stored session if one is
// valid, otherwise land on the login step, then hand over to the REPL.
func (a *App) Root(ctx context.Context) {

	printlnFn("Welcome to Ecom CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if a.auth.IsLoggedIn(ctx) {
		a.loggedIn = true
		if user, err := a.auth.ResumeUser(ctx); err == nil {
			a.userName = user.Username
		}
		printlnFn("Restored previous session")
	} else {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, a.getStatus, scanner)
}
