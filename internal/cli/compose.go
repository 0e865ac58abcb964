package cli

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/feedkeeper/internal/common"
	"github.com/dmitrijs2005/feedkeeper/internal/media"
)

// Compose prompts for post content and attachment paths and submits the
// post. While a submission is in flight the command refuses to start a
// second one, so two rapid submits cannot interleave.
func (a *App) Compose(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first.")
		return nil
	}

	if a.composing {
		fmt.Println("A post is already being submitted, please wait.")
		return nil
	}
	a.composing = true
	defer func() { a.composing = false }()

	content, err := GetMultiline(a.reader, "What's on your mind?", os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	paths, err := GetPaths(a.reader, os.Stdout)
	if err != nil {
		a.log.Error(ctx, "input error", "error", err)
		return err
	}

	sources := make([]media.Source, 0, len(paths))
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			fmt.Printf("Cannot open %s: %v\n", path, err)
			return err
		}
		defer f.Close()

		sources = append(sources, media.Source{
			Name:        filepath.Base(path),
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
			Reader:      f,
		})
	}

	opCtx, cancel := a.opContext(ctx)
	defer cancel()

	post, err := a.ledger.CreatePost(opCtx, content, sources, a.session)
	if err != nil {
		if errors.Is(err, common.ErrorAttachmentRead) {
			fmt.Println("An attachment could not be read; the post was not created.")
		} else {
			a.log.Error(ctx, "post creation failed", "error", err)
		}
		return err
	}

	fmt.Printf("Posted (id %s, %d attachment(s)).\n", post.ID, len(post.Media))
	return nil
}
