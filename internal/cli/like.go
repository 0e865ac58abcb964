package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/feedkeeper/internal/common"
)

// Like prompts for a post id and increments its like counter.
func (a *App) Like(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}

	postID, err := GetSimpleText(a.reader, "Enter post id", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	if err := a.ledger.LikePost(opCtx, postID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Println("No such post.")
		} else {
			a.log.Error(ctx, "like failed", "error", err)
		}
		return err
	}

	fmt.Println("Liked.")
	return nil
}
