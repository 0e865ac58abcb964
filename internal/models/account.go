// Package models defines the persisted data records of FeedKeeper.
// JSON tags match the original persisted layout, so an existing store
// written by the reference application loads unchanged.
package models

// Account is a registered user record. The email is the primary key inside
// the account directory; usernames are display strings and are not unique.
//
// Password is stored and compared verbatim. That mirrors the reference
// behavior and is unsuitable for any real deployment.
type Account struct {
	// Username is the display name shown on posts.
	Username string `json:"username"`

	// Email uniquely identifies the account (case-sensitive).
	Email string `json:"email"`

	// Password is an opaque string, compared with ordinary equality.
	Password string `json:"password"`

	// AvatarURL is derived deterministically from the username at creation.
	AvatarURL string `json:"avatar"`

	// PostIDs is a placeholder kept for layout compatibility; authorship is
	// tracked via the post ledger, not this field.
	PostIDs []string `json:"posts"`

	// LikesGiven is a counter kept as part of the record but unused elsewhere.
	LikesGiven int `json:"likes"`
}

// Clone returns a deep copy of the account. The session holds such a copy:
// mutations of the stored account after login are not reflected in it.
func (a *Account) Clone() *Account {
	if a == nil {
		return nil
	}
	c := *a
	if a.PostIDs != nil {
		c.PostIDs = make([]string, len(a.PostIDs))
		copy(c.PostIDs, a.PostIDs)
	}
	return &c
}
