package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/feedkeeper/internal/models"
)

// Feed prints the whole feed, newest-first.
func (a *App) Feed(ctx context.Context) error {
	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	posts, err := a.ledger.GetAllPosts(opCtx)
	if err != nil {
		a.log.Error(ctx, "failed to load feed", "error", err)
		return err
	}

	if len(posts) == 0 {
		fmt.Println("The feed is empty.")
		return nil
	}

	for _, p := range posts {
		printPost(p)
	}
	return nil
}

func printPost(p models.Post) {
	created := time.UnixMilli(p.CreatedAt).Format("2006-01-02 15:04:05")
	fmt.Printf("[%s] %s at %s — %d like(s)\n", p.ID, p.Author, created, p.Likes)
	if p.Content != "" {
		fmt.Println(p.Content)
	}
	for _, m := range p.Media {
		fmt.Printf("  <%s, %d bytes encoded>\n", m.Kind, len(m.Data))
	}
	fmt.Println()
}
