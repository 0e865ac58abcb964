package cli

import (
	"context"
	"fmt"
)

// Logout drops the session. Calling it while logged out is a no-op.
func (a *App) Logout(ctx context.Context) error {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	if err := a.directory.Logout(opCtx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}

	a.session = nil
	fmt.Println("Logged out.")
	return nil
}
