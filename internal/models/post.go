package models

// MediaKind classifies an attachment. Anything whose declared MIME type does
// not start with "image/" is treated as video.
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// Attachment is a media item embedded in a post. Data is a self-describing
// data URI (base64 payload with the MIME type inline), so the whole binary
// payload lives inside the post record.
type Attachment struct {
	Kind MediaKind `json:"type"`
	Data string    `json:"data"`
}

// Post is a single feed entry. Posts are never edited or deleted; only the
// like counter mutates after creation.
type Post struct {
	// ID is the decimal string of the creation epoch-milliseconds. Two posts
	// created in the same clock tick share an id; the ledger tolerates that.
	ID string `json:"id"`

	Content string       `json:"content"`
	Media   []Attachment `json:"media"`

	// Author is the username at creation time, deliberately denormalized:
	// posts keep the name the author had when posting.
	Author string `json:"author"`

	// AuthorAvatar is a copy of the avatar URL at creation time.
	AuthorAvatar string `json:"authorAvatar"`

	// CreatedAt is epoch milliseconds.
	CreatedAt int64 `json:"timestamp"`

	// Likes never decreases and has no per-viewer dedup.
	Likes int `json:"likes"`
}
