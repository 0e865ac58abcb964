// Command seed populates a FeedKeeper database with demo accounts and posts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/dmitrijs2005/feedkeeper/internal/accounts"
	"github.com/dmitrijs2005/feedkeeper/internal/models"
	"github.com/dmitrijs2005/feedkeeper/internal/posts"
	"github.com/dmitrijs2005/feedkeeper/internal/store"

	_ "modernc.org/sqlite"
)

// default password for every seeded account
const seedPassword = "123456"

func main() {
	dsn := flag.String("d", "feedkeeper.db", "path to the local database")
	userCount := flag.Int("users", 5, "number of accounts to create")
	postCount := flag.Int("posts", 20, "number of posts to create")
	reset := flag.Bool("reset", false, "wipe the store before seeding")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	ctx := context.Background()

	st, db, err := store.InitDatabase(ctx, *dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if *reset {
		if err := st.Clear(ctx); err != nil {
			log.Fatalf("failed to reset store: %v", err)
		}
	}

	directory := accounts.NewDirectory(db, "")
	ledger := posts.NewLedger(st)

	seeded := make([]*models.Account, 0, *userCount)
	for i := 0; i < *userCount; i++ {
		username := gofakeit.Username()
		email := gofakeit.Email()

		account, err := directory.Register(ctx, username, email, seedPassword)
		if err != nil {
			log.Printf("skipping %s: %v", email, err)
			continue
		}
		seeded = append(seeded, account)
		fmt.Printf("account %s <%s> (password %s)\n", username, email, seedPassword)
	}

	if len(seeded) == 0 {
		log.Fatal("no accounts could be created, aborting")
	}

	ids := make([]string, 0, *postCount)
	for i := 0; i < *postCount; i++ {
		author := seeded[gofakeit.Number(0, len(seeded)-1)]
		post, err := ledger.CreatePost(ctx, gofakeit.Sentence(gofakeit.Number(3, 12)), nil, author)
		if err != nil {
			log.Fatalf("failed to create post: %v", err)
		}
		ids = append(ids, post.ID)

		// ids are timestamp-derived; keep consecutive posts on distinct ticks
		time.Sleep(2 * time.Millisecond)
	}

	likes := 0
	for _, id := range ids {
		for n := gofakeit.Number(0, 5); n > 0; n-- {
			if err := ledger.LikePost(ctx, id); err != nil {
				log.Fatalf("failed to like post %s: %v", id, err)
			}
			likes++
		}
	}

	// registration leaves the last account logged in; start demos logged out
	if err := directory.Logout(ctx); err != nil {
		log.Fatalf("failed to log out: %v", err)
	}

	fmt.Printf("seeded %d account(s), %d post(s), %d like(s)\n", len(seeded), len(ids), likes)
}
