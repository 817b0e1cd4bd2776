package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/liftlog/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for username, email and password and creates the
// account. The user still has to log in afterwards.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, userName, email, password); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Registered. You can login now.")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, password); err != nil {
		return err
	}

	a.userName = userName
	fmt.Fprintf(a.out, "Welcome, %s!\n", userName)
	return nil
}

// Logout forgets the session locally even when the server cannot be
// reached; the server error, if any, is still reported.
func (a *App) Logout(ctx context.Context) error {
	err := a.authService.Logout(ctx)
	a.userName = ""
	fmt.Fprintln(a.out, "Logged out")
	return err
}
