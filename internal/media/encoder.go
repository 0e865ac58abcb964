// Package media converts raw attachment payloads into the self-contained
// data URIs embedded in post records.
package media

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/feedkeeper/internal/common"
	"github.com/dmitrijs2005/feedkeeper/internal/models"
	"golang.org/x/sync/errgroup"
)

// Source is a raw binary payload handed in by the presentation layer,
// together with its declared MIME type. Name is informational only.
type Source struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

const fallbackContentType = "application/octet-stream"

// Kind classifies a declared MIME type: "image/*" is an image, everything
// else is a video.
func Kind(contentType string) models.MediaKind {
	if strings.HasPrefix(contentType, "image/") {
		return models.MediaKindImage
	}
	return models.MediaKindVideo
}

// Encode reads the whole source and returns it as an attachment whose Data
// is a data URI embedding the MIME type and the base64 payload. A failed
// read is reported as common.ErrorAttachmentRead.
func Encode(src Source) (models.Attachment, error) {
	b, err := io.ReadAll(src.Reader)
	if err != nil {
		return models.Attachment{}, fmt.Errorf("%w: %s: %v", common.ErrorAttachmentRead, src.Name, err)
	}

	ct := src.ContentType
	if ct == "" {
		ct = fallbackContentType
	}

	var sb strings.Builder
	sb.WriteString("data:")
	sb.WriteString(ct)
	sb.WriteString(";base64,")
	sb.WriteString(base64.StdEncoding.EncodeToString(b))

	return models.Attachment{Kind: Kind(ct), Data: sb.String()}, nil
}

// EncodeAll materializes all sources concurrently, preserving input order.
// The join is all-or-nothing: if any source fails, the whole batch fails and
// no partial result is returned.
func EncodeAll(ctx context.Context, sources []Source) ([]models.Attachment, error) {
	if len(sources) == 0 {
		return []models.Attachment{}, nil
	}

	attachments := make([]models.Attachment, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			a, err := Encode(src)
			if err != nil {
				return err
			}
			attachments[i] = a
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return attachments, nil
}
