package command

import (
	"context"
	"strconv"

	"github.com/Sirdoh/NFTArtGallery/cli"
	"github.com/Sirdoh/NFTArtGallery/lib/errors"
	"github.com/Sirdoh/NFTArtGallery/lib/out"
)

const (
	// CmdNmTransfer is the command name.
	CmdNmTransfer cli.CmdName = "transfer"
)

func init() {
	cli.Registrar[CmdNmTransfer] = NewTransfer
}

// Transfer an artwork from its current owner to the currently logged in
// user. Transfers are submitted by their recipient.
type Transfer struct {
	ID   int64
	From string
	To   string
}

// NewTransfer constructs and initializes the command.
func NewTransfer() cli.Command {
	return &Transfer{}
}

// Name returns the command name.
func (c *Transfer) Name() cli.CmdName {
	return CmdNmTransfer
}

// Help prints out the help message for the command.
func (c *Transfer) Help(
	ctx context.Context,
) {
	out.Normf("\nUsage: ")
	out.Boldf("curator transfer <id> from <user>\n")
	out.Normf("\n")
	out.Normf("  Transfers an artwork from its current owner to you. Transfers are submitted\n")
	out.Normf("  by their recipient and an artwork can only be transferred once.\n")
	out.Normf("\n")
	out.Normf("Arguments:\n")
	out.Boldf("  id\n")
	out.Normf("    The id of the artwork to transfer.\n")
	out.Valuf("    7\n")
	out.Normf("\n")
	out.Boldf("  user\n")
	out.Normf("    The username of the current owner of the artwork.\n")
	out.Valuf("    von.neumann\n")
	out.Normf("\n")
	out.Normf("Examples:\n")
	out.Valuf("   curator transfer 7 from von.neumann\n")
	out.Normf("\n")
}

// Parse parses the arguments passed to the command.
func (c *Transfer) Parse(
	ctx context.Context,
	args []string,
) error {
	creds := cli.GetCredentials(ctx)
	if creds == nil {
		return errors.Trace(
			errors.Newf("You need to be logged in (try `curator help login`)."))
	}
	c.To = creds.Username

	if len(args) == 0 {
		return errors.Trace(
			errors.Newf("Artwork id required."))
	}
	id, args := args[0], args[1:]

	i, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		return errors.Trace(
			errors.Newf("Invalid artwork id: %s.", id))
	}
	c.ID = i

	if len(args) == 0 || args[0] != "from" {
		return errors.Trace(
			errors.Newf("Expected `from <user>`."))
	}
	args = args[1:]

	if len(args) == 0 {
		return errors.Trace(
			errors.Newf("Current owner required."))
	}
	c.From = args[0]

	return nil
}

// Execute the command or return a human-friendly error.
func (c *Transfer) Execute(
	ctx context.Context,
) error {
	artwork, err := TransferArtwork(ctx, c.ID, c.From, c.To)
	if err != nil {
		return errors.Trace(err)
	}

	out.Boldf("Artwork transferred:\n")
	OutArtwork(ctx, *artwork)

	return nil
}
