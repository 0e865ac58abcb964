package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/feedkeeper/internal/common"
)

// Login prompts for credentials and replaces the current session on success.
func (a *App) Login(ctx context.Context) error {
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

	session, err := a.directory.Login(opCtx, email, string(password))
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			fmt.Println("Invalid credentials.")
		} else {
			a.log.Error(ctx, "login failed", "error", err)
		}
		return err
	}

	a.session = session
	fmt.Printf("Logged in as %s.\n", session.Username)
	return nil
}
