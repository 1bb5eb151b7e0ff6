package command

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/Sirdoh/NFTArtGallery/cli"
	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/out"
)

const (
	// CmdNmShow is the command name.
	CmdNmShow cli.CmdName = "show"
)

func init() {
	cli.Registrar[CmdNmShow] = NewShow
}

// Show one or more artworks by id.
type Show struct {
	IDs []int64
}

// NewShow constructs and initializes the command.
func NewShow() cli.Command {
	return &Show{}
}

// Name returns the command name.
func (c *Show) Name() cli.CmdName {
	return CmdNmShow
}

// Help prints out the help message for the command.
func (c *Show) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("curator show <id> [<id> ...]\n")
	out.Normf("\n")
	out.Normf("  Shows one or more artworks. Artworks are retrieved in parallel when more\n")
	out.Normf("  than one id is passed.\n")
	out.Normf("\n")
	out.Normf("Arguments:\n")
	out.Boldf("  id\n")
	out.Normf("    The id of an artwork to show.\n")
	out.Valuf("    7\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("   curator show 7\n")
	out.Valuf("   curator show 7 8 9\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *Show) Parse(
	ctx context.Context,
	args []string,
) error {
	creds := cli.GetCredentials(ctx)
	if creds == nil {
		return errors.Trace(
			errors.Newf("You need to be logged in (try `curator help login`)."))
	}

	if len(args) == 0 {
		return errors.Trace(
			errors.Newf("Artwork id required."))
	}

	for _, id := range args {
		i, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return errors.Trace(
				errors.Newf("Invalid artwork id: %s.", id))
		}
		c.IDs = append(c.IDs, i)
	}

	return nil
}

// Execute the command or return a human-friendly error.
func (c *Show) Execute(
	ctx context.Context,
) error {
	g, ctx := errgroup.WithContext(ctx)

	artworks := make([]*gallery.ArtworkResource, len(c.IDs))
	for i, id := range c.IDs {
		i, id := i, id
		g.Go(func() error {
			a, err := RetrieveArtwork(ctx, id)
			if err != nil {
				return errors.Trace(err)
			}
			artworks[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Trace(err)
	}

	out.Boldf("Artworks:\n")
	for i, a := range artworks {
		if a == nil {
			out.Normf("  No artwork with id ")
			out.Valuf("%d", c.IDs[i])
			out.Normf(".\n")
		} else {
			OutArtwork(ctx, *a)
		}
	}

	return nil
}
