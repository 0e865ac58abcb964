package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/feedkeeper/internal/common"
)

// Register prompts for account details and creates the account. Per the
// directory contract a successful registration immediately establishes a
// session for the new account.
func (a *App) Register(ctx context.Context) error {
	username, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	session, err := a.directory.Register(opCtx, username, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateAccount) {
			fmt.Println("This email is already registered.")
		} else {
			a.log.Error(ctx, "registration failed", "error", err)
		}
		return err
	}

	a.session = session
	fmt.Printf("Welcome, %s! You are now logged in.\n", session.Username)
	return nil
}
