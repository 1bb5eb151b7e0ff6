package cli

import (
	"context"

	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
)

// GalleryFromContextCredentials returns a gallery client from the credentials
// stored in the current context.
func GalleryFromContextCredentials(
	ctx context.Context,
) (*gallery.Client, error) {
	c := GetCredentials(ctx)
	if c == nil {
		return nil, errors.Trace(
			errors.Newf("Not logged in (see `curator login`)"))
	}
	return &gallery.Client{
		Host:     c.Host,
		Username: c.Username,
		Password: c.Password,
	}, nil
}
