package command

import (
	"context"

	"github.com/Sirdoh/NFTArtGallery/cli"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/out"
)

const (
	// CmdNmMint is the command name.
	CmdNmMint cli.CmdName = "mint"
)

func init() {
	cli.Registrar[CmdNmMint] = NewMint
}

// Mint one artwork or a batch of artworks. Minting requires to be logged in
// as the gallery administrator.
type Mint struct {
	DetailsList []string
}

// NewMint constructs and initializes the command.
func NewMint() cli.Command {
	return &Mint{}
}

// Name returns the command name.
func (c *Mint) Name() cli.CmdName {
	return CmdNmMint
}

// Help prints out the help message for the command.
func (c *Mint) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("curator mint <details> [<details> ...]\n")
	out.Normf("\n")
	out.Normf("  Minting creates new artworks with sequential ids, owned by the user that\n")
	out.Normf("  minted them. Only the gallery administrator can mint.\n")
	out.Normf("\n")
	out.Normf("  Passing more than one details mints a batch in a single request (at most 50\n")
	out.Normf("  per batch). Invalid details are skipped and the rest of the batch is minted.\n")
	out.Normf("\n")
	out.Normf("Arguments:\n")
	out.Boldf("  details\n")
	out.Normf("    The details of the artwork to mint (1 to 512 characters).\n")
	out.Valuf("    \"Sunset over sand dunes, 2016\"\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("   curator mint \"Sunset over sand dunes, 2016\"\n")
	out.Valuf("   curator mint \"Azure window\" \"Blue lagoon\" \"Salt pans\"\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *Mint) Parse(
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
			errors.Newf("Details required."))
	}
	c.DetailsList = args

	return nil
}

// Execute the command or return a human-friendly error.
func (c *Mint) Execute(
	ctx context.Context,
) error {
	if len(c.DetailsList) == 1 {
		artwork, err := MintArtwork(ctx, c.DetailsList[0])
		if err != nil {
			return errors.Trace(err)
		}

		out.Boldf("Artwork minted:\n")
		OutArtwork(ctx, *artwork)

		return nil
	}

	artworks, err := MintArtworkBatch(ctx, c.DetailsList)
	if err != nil {
		return errors.Trace(err)
	}

	out.Boldf("Artworks minted:\n")
	if len(artworks) == 0 {
		out.Normf("No artwork minted.\n")
	} else {
		for _, a := range artworks {
			OutArtwork(ctx, a)
		}
	}

	return nil
}
