// Package accounts implements the account directory: registration,
// credential verification and the session lifecycle.
package accounts

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/feedkeeper/internal/common"
	"github.com/dmitrijs2005/feedkeeper/internal/dbx"
	"github.com/dmitrijs2005/feedkeeper/internal/models"
	"github.com/dmitrijs2005/feedkeeper/internal/store"
)

// Directory defines account and session operations for the presentation layer.
//
// Contract:
//   - Register: create an account and immediately establish a session for it.
//   - Login: verify credentials and replace the current session.
//   - Logout: drop the session; calling it with no session is a no-op.
//   - IsLoggedIn / CurrentSession: pure queries, no side effects.
//
// The session is a detached snapshot of the account taken at login time.
// Mutations of the stored account afterwards are not reflected in it until
// the next login.
type Directory interface {
	Register(ctx context.Context, username, email, password string) (*models.Account, error)
	Login(ctx context.Context, email, password string) (*models.Account, error)
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) (bool, error)
	CurrentSession(ctx context.Context) (*models.Account, error)
}

// DefaultAvatarURLTemplate derives an avatar from the username via an
// external placeholder service. Unreachability is not an application error;
// the image simply fails to load.
const DefaultAvatarURLTemplate = "https://source.unsplash.com/100x100/?avatar&%s"

type directory struct {
	db             *sql.DB
	avatarTemplate string

	// serializes the read-modify-write cycle on the users map
	mu sync.Mutex
}

// NewDirectory constructs a Directory over the given database handle. An
// empty avatarURLTemplate selects DefaultAvatarURLTemplate.
func NewDirectory(db *sql.DB, avatarURLTemplate string) Directory {
	if avatarURLTemplate == "" {
		avatarURLTemplate = DefaultAvatarURLTemplate
	}
	return &directory{db: db, avatarTemplate: avatarURLTemplate}
}

func (d *directory) getStore() store.Store {
	return store.NewSQLiteStore(d.db)
}

func (d *directory) loadUsers(ctx context.Context, st store.Store) (map[string]*models.Account, error) {
	raw, err := st.Get(ctx, common.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if raw == nil {
		return map[string]*models.Account{}, nil
	}

	var users map[string]*models.Account
	if err := json.Unmarshal(raw, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

func (d *directory) saveUsers(ctx context.Context, st store.Store, users map[string]*models.Account) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}
	if err := st.Set(ctx, common.KeyUsers, raw); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}

func (d *directory) saveSession(ctx context.Context, st store.Store, account *models.Account) error {
	raw, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := st.Set(ctx, common.KeyCurrentUser, raw); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Register creates a new account keyed by email and logs it in. Registration
// with an already known email fails with common.ErrorDuplicateAccount and
// leaves the directory unchanged. The directory update and the session
// snapshot are written in one transaction, so a failure cannot leave the
// account registered but not logged in.
func (d *directory) Register(ctx context.Context, username, email, password string) (*models.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var session *models.Account

	err := dbx.WithTx(ctx, d.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		st := store.NewSQLiteStore(tx)

		users, err := d.loadUsers(ctx, st)
		if err != nil {
			return err
		}

		if _, ok := users[email]; ok {
			return common.ErrorDuplicateAccount
		}

		account := &models.Account{
			Username:  username,
			Email:     email,
			Password:  password,
			AvatarURL: fmt.Sprintf(d.avatarTemplate, username),
			PostIDs:   []string{},
		}

		users[email] = account
		if err := d.saveUsers(ctx, st, users); err != nil {
			return err
		}

		session, err = d.login(ctx, st, users, email, password)
		return err
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// Login verifies credentials with ordinary string equality and persists a
// detached copy of the account as the current session.
func (d *directory) Login(ctx context.Context, email, password string) (*models.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := d.getStore()

	users, err := d.loadUsers(ctx, st)
	if err != nil {
		return nil, err
	}
	return d.login(ctx, st, users, email, password)
}

func (d *directory) login(ctx context.Context, st store.Store, users map[string]*models.Account, email, password string) (*models.Account, error) {
	account, ok := users[email]
	if !ok || account.Password != password {
		return nil, common.ErrorInvalidCredentials
	}

	session := account.Clone()
	if err := d.saveSession(ctx, st, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Logout removes the persisted session. Idempotent.
func (d *directory) Logout(ctx context.Context) error {
	if err := d.getStore().Delete(ctx, common.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// IsLoggedIn reports whether a session is currently established.
func (d *directory) IsLoggedIn(ctx context.Context) (bool, error) {
	raw, err := d.getStore().Get(ctx, common.KeyCurrentUser)
	if err != nil {
		return false, fmt.Errorf("failed to read session: %w", err)
	}
	return raw != nil, nil
}

// CurrentSession returns the persisted session snapshot, or nil when logged
// out.
func (d *directory) CurrentSession(ctx context.Context) (*models.Account, error) {
	raw, err := d.getStore().Get(ctx, common.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	var account models.Account
	if err := json.Unmarshal(raw, &account); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &account, nil
}
