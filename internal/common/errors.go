// Package common defines shared constants and sentinel errors used across
// FeedKeeper components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository/ledger-level errors.
	ErrorNotFound = errors.New("not found")

	// Account directory errors.
	ErrorDuplicateAccount   = errors.New("email already registered")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Attachment materialization errors. A failed read aborts the whole
	// post creation; there is no partial-attachment path.
	ErrorAttachmentRead = errors.New("attachment read failed")
)
