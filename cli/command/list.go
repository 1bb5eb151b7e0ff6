package command

import (
	"context"
	"strconv"

	"github.com/Sirdoh/NFTArtGallery/cli"
	"github.com/Sirdoh/NFTArtGallery/gallery"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/out"
)

// ObjType reperesents a list object type.
type ObjType string

const (
	// CmdNmList is the command name.
	CmdNmList cli.CmdName = "list"

	// ObjTpArtwork artwork object type.
	ObjTpArtwork ObjType = "artwork"
	// ObjTpTransferred transferred artwork object type.
	ObjTpTransferred ObjType = "transferred"
	// ObjTpPage page object type.
	ObjTpPage ObjType = "page"
)

func init() {
	cli.Registrar[CmdNmList] = NewList
}

// List artworks, transferred artworks or pages of artworks.
type List struct {
	Type  ObjType
	Start int64
	Count int64
}

// NewList constructs and initializes the command.
func NewList() cli.Command {
	return &List{}
}

// Name returns the command name.
func (c *List) Name() cli.CmdName {
	return CmdNmList
}

// Help prints out the help message for the command.
func (c *List) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("curator list <type> [<start> [<count>]]\n")
	out.Normf("\n")
	out.Normf("  Lists artworks by id range, ids of transferred artworks, or pages of\n")
	out.Normf("  artworks. Ids that fall in the range but were never minted are listed with\n")
	out.Normf("  an empty owner.\n")
	out.Normf("\n")
	out.Normf("Arguments:\n")
	out.Boldf("  type\n")
	out.Normf("    The type of object to retrieve and list.\n")
	out.Valuf("    artworks transferred pages\n")
	out.Normf("\n")
	out.Boldf("  start\n")
	out.Normf("    The artwork id the listed range starts at (defaults to 1). For pages, the\n")
	out.Normf("    page number (starting at 1).\n")
	out.Valuf("    1\n")
	out.Normf("\n")
	out.Boldf("  count\n")
	out.Normf("    The number of ids covered by the range, at most 50 (defaults to 50).\n")
	out.Valuf("    10\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("   curator list artworks\n")
	out.Valuf("   curator list artworks 10 5\n")
	out.Valuf("   curator list transferred\n")
	out.Valuf("   curator list pages 1 10\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *List) Parse(
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
			errors.Newf("Object required (artworks, transferred, or pages)."))
	}
	typ, args := args[0], args[1:]

	switch typ {
	case "artworks", "artwork":
		c.Type = ObjTpArtwork
	case "transferred", "transfers", "transfer":
		c.Type = ObjTpTransferred
	case "pages", "page":
		c.Type = ObjTpPage
	default:
		return errors.Trace(
			errors.Newf("Invalid object type: %s expected artworks, "+
				"transferred, or pages.", typ))
	}

	c.Start = int64(1)
	c.Count = gallery.MaxBatchSize

	if len(args) > 0 {
		start, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Trace(
				errors.Newf("Invalid start: %s.", args[0]))
		}
		c.Start = start
		args = args[1:]
	}

	if len(args) > 0 {
		count, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return errors.Trace(
				errors.Newf("Invalid count: %s.", args[0]))
		}
		c.Count = count
	}

	return nil
}

// Execute the command or return a human-friendly error.
func (c *List) Execute(
	ctx context.Context,
) error {
	switch c.Type {
	case ObjTpArtwork:
		return c.ExecuteArtworks(ctx)
	case ObjTpTransferred:
		return c.ExecuteTransferred(ctx)
	case ObjTpPage:
		return c.ExecutePages(ctx)
	}
	return nil
}

// ExecuteArtworks the list command for artworks.
func (c *List) ExecuteArtworks(
	ctx context.Context,
) error {
	artworks, err := ListArtworks(ctx, c.Start, c.Count)
	if err != nil {
		return errors.Trace(err)
	}

	out.Boldf("Artworks:\n")
	if len(artworks) == 0 {
		out.Normf("No artwork.\n")
	} else {
		for _, a := range artworks {
			OutArtwork(ctx, a)
		}
	}

	return nil
}

// ExecuteTransferred the list command for transferred artworks.
func (c *List) ExecuteTransferred(
	ctx context.Context,
) error {
	ids, err := ListTransferredArtworkIDs(ctx, c.Start, c.Count)
	if err != nil {
		return errors.Trace(err)
	}

	out.Boldf("Transferred artworks:\n")
	if len(ids) == 0 {
		out.Normf("No transferred artwork.\n")
	} else {
		for _, id := range ids {
			out.Normf("  ID: ")
			out.Valuf("%d", id)
			out.Normf("\n")
		}
	}

	return nil
}

// ExecutePages the list command for pages.
func (c *List) ExecutePages(
	ctx context.Context,
) error {
	// For pages the start argument is the page number.
	start := (c.Start-1)*c.Count + 1

	page, err := RetrievePageInfo(ctx, start, c.Count)
	if err != nil {
		return errors.Trace(err)
	}

	out.Boldf("Page:\n")
	out.Normf("  Total: ")
	out.Valuf("%d", page.Total)
	out.Normf(" Start: ")
	out.Valuf("%d", page.Start)
	out.Normf(" Count: ")
	out.Valuf("%d", page.Count)
	out.Normf(" HasMore: ")
	out.Valuf("%t", page.HasMore)
	out.Normf("\n")

	return nil
}
