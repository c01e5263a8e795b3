package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/eventclient/internal/client/store"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) Status(ctx context.Context) error {
	fmt.Fprintf(a.out, "state: %s\n", a.stores.Nav())
	return nil
}

// Register prompts for a username, e-mail and password and creates an
// account. Signing up also signs the new user in.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if err := a.stores.Auth.SignUp(ctx, username, email, password); err != nil {
		return err
	}
	a.greet(ctx)
	return nil
}

// Login prompts for credentials and signs in. Loading the user's data right
// after is done by the session; if it fails the user is signed out again and
// the failure has already been reported.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}

	if err := a.stores.Auth.SignIn(ctx, username, password); err != nil {
		return err
	}
	a.greet(ctx)
	return nil
}

func (a *App) greet(ctx context.Context) {
	if a.stores.Nav() != store.NavMain {
		return
	}
	if u, ok := a.stores.Users.CurrentUser(); ok {
		a.reporter.Success(ctx, fmt.Sprintf("Signed in as %s", u.DisplayName))
	}
}

func (a *App) Logout(ctx context.Context) error {
	a.stores.Auth.SignOut()
	fmt.Fprintln(a.out, "Signed out")
	return nil
}

// Reset requests a password reset e-mail and signs out.
func (a *App) Reset(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.stores.Auth.ResetPassword(ctx, email); err != nil {
		return err
	}
	a.reporter.Success(ctx, "Password reset e-mail sent")
	return nil
}
