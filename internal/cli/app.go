// Package cli is the terminal presentation layer: it translates user
// commands into calls against the account directory and the post ledger and
// renders their results.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/dmitrijs2005/feedkeeper/internal/accounts"
	"github.com/dmitrijs2005/feedkeeper/internal/config"
	"github.com/dmitrijs2005/feedkeeper/internal/logging"
	"github.com/dmitrijs2005/feedkeeper/internal/models"
	"github.com/dmitrijs2005/feedkeeper/internal/posts"
	"github.com/dmitrijs2005/feedkeeper/internal/store"

	_ "modernc.org/sqlite"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	directory accounts.Directory
	ledger    posts.Ledger
	db        *sql.DB
	reader    *bufio.Reader

	// session is the in-memory copy of the persisted session snapshot.
	session *models.Account

	// composing guards against a second submit while one is in flight.
	composing bool
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	st, db, err := store.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	a := &App{
		config:    c,
		log:       log,
		directory: accounts.NewDirectory(db, c.AvatarURLTemplate),
		ledger:    posts.NewLedger(st),
		db:        db,
		reader:    bufio.NewReader(os.Stdin),
	}

	// a session persisted by a previous run keeps the user logged in
	session, err := a.directory.CurrentSession(ctx)
	if err != nil {
		log.Warn(ctx, "could not restore session", "error", err)
	} else {
		a.session = session
	}

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session != nil
}

func (a *App) status() string {
	if a.session == nil {
		return "logged out"
	}
	return a.session.Username
}

// opContext bounds a single core call with the configured timeout.
func (a *App) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.OpTimeout)
}
