package cli

import (
	"context"
	"fmt"
)

// Profile prints the logged-in user's posts together with their post count
// and total likes received.
func (a *App) Profile(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	stats, err := a.ledger.AuthorStats(opCtx, a.session.Username)
	if err != nil {
		a.log.Error(ctx, "failed to load profile stats", "error", err)
		return err
	}

	fmt.Printf("%s — %d post(s), %d like(s) received\n", a.session.Username, stats.PostCount, stats.TotalLikes)
	fmt.Printf("avatar: %s\n\n", a.session.AvatarURL)

	posts, err := a.ledger.GetPostsByAuthor(opCtx, a.session.Username)
	if err != nil {
		a.log.Error(ctx, "failed to load own posts", "error", err)
		return err
	}

	for _, p := range posts {
		printPost(p)
	}
	return nil
}
